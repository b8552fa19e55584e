package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/crossdexgo/internal/config"
	"github.com/vk/crossdexgo/internal/model"
)

func newSpaceProvider() *Provider {
	return &Provider{
		Trait: "Space",
		NewTable: func() *model.Table {
			t := model.NewTable("Space")
			t.Add("rsrl", "impl Space for NullSpace")
			return t
		},
	}
}

func TestRegisterProviderDuplicatePanics(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.RegisterProvider("space", newSpaceProvider())

	require.Panics(t, func() {
		reg.RegisterProvider("space", newSpaceProvider())
	})
}

func TestRegisterProviderWithoutNewTablePanics(t *testing.T) {
	t.Parallel()

	reg := New()
	require.Panics(t, func() {
		reg.RegisterProvider("space", &Provider{Trait: "Space"})
	})
}

func TestProviderLookup(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.RegisterProvider("space", newSpaceProvider())

	provider, ok := reg.Provider("space")
	require.True(t, ok)
	assert.Equal(t, "Space", provider.Trait)

	_, ok = reg.Provider("policy")
	assert.False(t, ok)
}

func TestValidateRegistryPasses(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.RegisterProvider("space", newSpaceProvider())

	cfgModel := config.NewModel()
	cfgModel.Pages = []*config.Page{
		{Name: "space", Enabled: true},
	}

	require.NoError(t, reg.ValidateRegistry(context.Background(), cfgModel))
}

func TestValidateRegistryUnknownPage(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.RegisterProvider("space", newSpaceProvider())

	cfgModel := config.NewModel()
	cfgModel.Pages = []*config.Page{
		{Name: "space", Enabled: true},
		{Name: "lattice", Enabled: true},
	}

	err := reg.ValidateRegistry(context.Background(), cfgModel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 'lattice'")
	assert.Contains(t, err.Error(), "no implementor table provider")
}

// Disabled pages still require a compiled provider so a typo in a disabled
// block is caught at startup.
func TestValidateRegistryChecksDisabledPages(t *testing.T) {
	t.Parallel()

	reg := New()
	cfgModel := config.NewModel()
	cfgModel.Pages = []*config.Page{
		{Name: "ghost", Enabled: false},
	}

	err := reg.ValidateRegistry(context.Background(), cfgModel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 'ghost'")
}
