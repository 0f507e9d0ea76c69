package savings

import (
	"context"
	"testing"
	"time"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/event_bus"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var repoStub = NewStubRepository()

var service *ServiceImpl

var clock = &utils.MockClock{FixedNow: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}

func setup(t *testing.T) func() {
	service = NewService(repoStub, event_bus.NewEventBus())
	service.clock = clock
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_Add(t *testing.T) {
	t.Run("should add a goal with a generated id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		g, err := service.Add(ctx, Draft{
			Name:         "Vacation",
			TargetAmount: decimal.NewFromInt(2000),
			TargetDate:   clock.FixedNow.AddDate(0, 6, 0),
		})

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, g.ID)
		assert.True(t, g.CurrentAmount.IsZero())
	})

	t.Run("should default the priority to medium", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		g, err := service.Add(ctx, Draft{Name: "Vacation", TargetAmount: decimal.NewFromInt(2000)})

		// then
		require.NoError(t, err)
		assert.Equal(t, PriorityMedium, g.Priority)
	})

	t.Run("should reject a missing name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Add(ctx, Draft{TargetAmount: decimal.NewFromInt(2000)})

		// then
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("should reject a non-positive target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Add(ctx, Draft{Name: "Vacation", TargetAmount: decimal.Zero})

		// then
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("should reject an unknown priority", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Add(ctx, Draft{Name: "Vacation", TargetAmount: decimal.NewFromInt(2000), Priority: "urgent"})

		// then
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})
}

func TestServiceImpl_Contribute(t *testing.T) {
	t.Run("should add the contribution to the current amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		g, err := service.Add(ctx, Draft{Name: "Vacation", TargetAmount: decimal.NewFromInt(2000)})
		require.NoError(t, err)

		// when
		updated, err := service.Contribute(ctx, g.ID, decimal.NewFromInt(300))

		// then
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(300).Equal(updated.CurrentAmount))
	})

	t.Run("should reject a contribution to an unknown goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Contribute(ctx, "missing", decimal.NewFromInt(300))

		// then
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("should reject a non-positive contribution", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Contribute(ctx, "any", decimal.Zero)

		// then
		assert.ErrorIs(t, err, ErrInvalidContribution)
	})

	t.Run("should publish an event when the contribution completes the goal", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		var completed []event_bus.SavingsGoalCompleted
		event_bus.SubscribeTyped(service.bus, event_bus.EventSavingsGoalCompleted,
			func(e event_bus.EventT[event_bus.SavingsGoalCompleted]) error {
				completed = append(completed, e.Data)
				return nil
			})
		g, err := service.Add(ctx, Draft{Name: "Vacation", TargetAmount: decimal.NewFromInt(500)})
		require.NoError(t, err)
		_, err = service.Contribute(ctx, g.ID, decimal.NewFromInt(400))
		require.NoError(t, err)
		require.Empty(t, completed)

		// when
		_, err = service.Contribute(ctx, g.ID, decimal.NewFromInt(100))

		// then
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, g.ID, completed[0].Id)
		assert.Equal(t, "Vacation", completed[0].Name)
	})

	t.Run("should not publish again for contributions past the target", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		var events int
		event_bus.SubscribeTyped(service.bus, event_bus.EventSavingsGoalCompleted,
			func(e event_bus.EventT[event_bus.SavingsGoalCompleted]) error {
				events++
				return nil
			})
		g, err := service.Add(ctx, Draft{Name: "Vacation", TargetAmount: decimal.NewFromInt(500)})
		require.NoError(t, err)
		_, err = service.Contribute(ctx, g.ID, decimal.NewFromInt(500))
		require.NoError(t, err)

		// when
		_, err = service.Contribute(ctx, g.ID, decimal.NewFromInt(50))

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, events)
	})
}

func TestServiceImpl_Active(t *testing.T) {
	t.Run("should exclude funded and past-date goals", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		active, err := service.Add(ctx, Draft{
			Name:         "Vacation",
			TargetAmount: decimal.NewFromInt(2000),
			TargetDate:   clock.FixedNow.AddDate(0, 6, 0),
		})
		require.NoError(t, err)
		funded, err := service.Add(ctx, Draft{
			Name:          "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(500),
			CurrentAmount: decimal.NewFromInt(500),
			TargetDate:    clock.FixedNow.AddDate(0, 6, 0),
		})
		require.NoError(t, err)
		_, err = service.Add(ctx, Draft{
			Name:         "Old Car",
			TargetAmount: decimal.NewFromInt(8000),
			TargetDate:   clock.FixedNow.AddDate(0, -1, 0),
		})
		require.NoError(t, err)

		// when
		result, err := service.Active(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, active.ID, result[0].ID)
		assert.NotEqual(t, funded.ID, result[0].ID)
	})
}

func TestServiceImpl_TotalSavings(t *testing.T) {
	t.Run("should sum current amounts across all goals", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		first, err := service.Add(ctx, Draft{Name: "Vacation", TargetAmount: decimal.NewFromInt(2000)})
		require.NoError(t, err)
		_, err = service.Contribute(ctx, first.ID, decimal.NewFromInt(300))
		require.NoError(t, err)
		_, err = service.Add(ctx, Draft{
			Name:          "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(150),
		})
		require.NoError(t, err)

		// when
		total, err := service.TotalSavings(ctx)

		// then
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(450).Equal(total))
	})
}
