// Package registry provides the central "glue" between the generated
// implementor page packages and the viewer runtime that consumes them.
//
// The Registry stores the mapping between the page names used in manifests
// (e.g. "space") and the compiled Go providers that build each page's
// implementor table. During application startup the registry is populated
// and then validated, so a manifest naming a page with no compiled provider
// fails before any hand-off happens.
//
// The Hub implements the hand-off itself: a table is either delivered
// synchronously to an attached viewer capability, or buffered in the
// page-global pending slot until the viewer attaches and drains it.
package registry
