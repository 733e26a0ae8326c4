package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-libro/internal/application/prefs"
	"github.com/jhoicas/pos-libro/internal/infrastructure/localstore"
)

func TestPrefs_DefaultsYPersistencia(t *testing.T) {
	kv := localstore.NewMemoryKV()
	uc := prefs.NewUseCase(kv)

	assert.Equal(t, prefs.DefaultTab, uc.ActiveTab())
	assert.False(t, uc.PrivateMode())
	assert.Equal(t, prefs.DefaultTheme, uc.Theme())

	require.NoError(t, uc.SetActiveTab("Reports"))
	require.NoError(t, uc.SetPrivateMode(true))
	require.NoError(t, uc.SetTheme("light"))

	// Una instancia nueva sobre el mismo KV lee lo persistido.
	again := prefs.NewUseCase(kv)
	assert.Equal(t, "Reports", again.ActiveTab())
	assert.True(t, again.PrivateMode())
	assert.Equal(t, "light", again.Theme())
}
