package preferences

import (
	"context"
	"testing"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newService(t *testing.T) (*ServiceImpl, *storage.StubBackend) {
	t.Helper()
	backend := storage.NewStubBackend()
	repo, err := NewStoreRepository(storage.NewRegistry(backend))
	require.NoError(t, err)
	return NewService(repo), backend
}

func TestServiceImpl_Get(t *testing.T) {
	t.Run("should return the defaults before any change", func(t *testing.T) {
		// given
		service, _ := newService(t)

		// when
		prefs, err := service.Get(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, DefaultPreferences(), prefs)
		assert.Equal(t, "USD", prefs.Currency)
		assert.True(t, prefs.BudgetAlertsOn)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should only change the set fields", func(t *testing.T) {
		// given
		service, _ := newService(t)
		currency := "EUR"

		// when
		updated, err := service.Update(ctx, Update{Currency: &currency})

		// then
		require.NoError(t, err)
		assert.Equal(t, "EUR", updated.Currency)
		assert.Equal(t, "system", updated.Theme)
		assert.True(t, updated.NotificationsOn)
	})

	t.Run("should persist the change durably", func(t *testing.T) {
		// given
		service, backend := newService(t)
		theme := "dark"
		_, err := service.Update(ctx, Update{Theme: &theme})
		require.NoError(t, err)

		// when
		reloaded, err := NewStoreRepository(storage.NewRegistry(backend))
		require.NoError(t, err)
		prefs, err := reloaded.Get(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, "dark", prefs.Theme)
	})
}

func TestServiceImpl_Reset(t *testing.T) {
	t.Run("should restore the defaults", func(t *testing.T) {
		// given
		service, _ := newService(t)
		currency := "EUR"
		_, err := service.Update(ctx, Update{Currency: &currency})
		require.NoError(t, err)

		// when
		prefs, err := service.Reset(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, DefaultPreferences(), prefs)
	})
}

func TestServiceImpl_Onboarding(t *testing.T) {
	t.Run("should start incomplete", func(t *testing.T) {
		// given
		service, _ := newService(t)

		// when
		done, err := service.OnboardingCompleted(ctx)

		// then
		require.NoError(t, err)
		assert.False(t, done)
	})

	t.Run("should stay completed once marked", func(t *testing.T) {
		// given
		service, backend := newService(t)
		require.NoError(t, service.CompleteOnboarding(ctx))

		// when
		reloaded, err := NewStoreRepository(storage.NewRegistry(backend))
		require.NoError(t, err)
		done, err := reloaded.OnboardingCompleted(ctx)

		// then
		require.NoError(t, err)
		assert.True(t, done)
	})
}
