package preferences

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/dailydeck/internal/common"
	"github.com/ternarybob/dailydeck/internal/storage/memory"
)

func newService(t *testing.T) (*Service, *memory.KVStorage) {
	t.Helper()
	store := memory.NewKVStorage()
	return NewService(store, common.GetLogger()), store
}

func TestService_Defaults(t *testing.T) {
	svc, _ := newService(t)

	prefs := svc.Get()
	assert.False(t, prefs.OnboardingComplete)
	assert.Empty(t, prefs.Selections)
	assert.Equal(t, 50, prefs.Scalar)
}

func TestService_OnboardingPersistsAcrossInstances(t *testing.T) {
	svc, store := newService(t)

	svc.SetOnboardingComplete(true)
	svc.SetSelections([]string{"Science", "History"})
	svc.SetScalar(72)

	reloaded := NewService(store, common.GetLogger())
	prefs := reloaded.Get()
	assert.True(t, prefs.OnboardingComplete)
	assert.Equal(t, []string{"Science", "History"}, prefs.Selections)
	assert.Equal(t, 72, prefs.Scalar)
}

func TestService_ToggleSelection(t *testing.T) {
	svc, _ := newService(t)

	svc.ToggleSelection("Tech")
	assert.Equal(t, []string{"Tech"}, svc.Get().Selections)

	svc.ToggleSelection("Energy")
	assert.Equal(t, []string{"Tech", "Energy"}, svc.Get().Selections)

	svc.ToggleSelection("Tech")
	assert.Equal(t, []string{"Energy"}, svc.Get().Selections)
}

func TestService_ScalarClamped(t *testing.T) {
	svc, _ := newService(t)

	svc.SetScalar(-10)
	assert.Equal(t, 0, svc.Get().Scalar)

	svc.SetScalar(250)
	assert.Equal(t, 100, svc.Get().Scalar)

	svc.SetScalar(33)
	assert.Equal(t, 33, svc.Get().Scalar)
}

func TestService_Reset(t *testing.T) {
	svc, _ := newService(t)
	svc.SetOnboardingComplete(true)
	svc.SetSelections([]string{"Tech"})
	svc.SetScalar(90)

	svc.Reset()

	prefs := svc.Get()
	assert.False(t, prefs.OnboardingComplete)
	assert.Empty(t, prefs.Selections)
	assert.Equal(t, 50, prefs.Scalar)
}

func TestService_PersistedLayout(t *testing.T) {
	svc, store := newService(t)
	svc.SetOnboardingComplete(true)

	raw, err := store.Get(context.Background(), "preferences-storage")
	require.NoError(t, err)

	var blob map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &blob))
	assert.Contains(t, blob, "onboardingComplete")
	assert.Contains(t, blob, "selections")
	assert.Contains(t, blob, "scalar")
}

func TestService_CorruptStateUsesDefaults(t *testing.T) {
	store := memory.NewKVStorage()
	require.NoError(t, store.Set(context.Background(), "preferences-storage", "!!"))

	svc := NewService(store, common.GetLogger())
	assert.Equal(t, 50, svc.Get().Scalar)
}

func TestService_GetReturnsCopy(t *testing.T) {
	svc, _ := newService(t)
	svc.SetSelections([]string{"Tech"})

	prefs := svc.Get()
	prefs.Selections[0] = "mutated"
	assert.Equal(t, []string{"Tech"}, svc.Get().Selections)
}
