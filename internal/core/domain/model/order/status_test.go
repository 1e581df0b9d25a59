package order_test

import (
	"fmt"
	"testing"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Strings(t *testing.T) {
	cases := map[order.Status]string{
		order.StatusUnknown:        "UNKNOWN",
		order.StatusPending:        "PENDING",
		order.StatusInKitchen:      "IN_KITCHEN",
		order.StatusOutForDelivery: "OUT_FOR_DELIVERY",
		order.StatusDispatched:     "DISPATCHED",
		order.StatusCompleted:      "COMPLETED",
		order.StatusCancelled:      "CANCELLED",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid wire value", func(t *testing.T) {
		for _, s := range []string{
			"PENDING", "IN_KITCHEN", "OUT_FOR_DELIVERY", "DISPATCHED", "COMPLETED", "CANCELLED",
		} {
			status, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, s := range []string{"BOGUS", "", "pending", "UNKNOWN"} {
			_, err := order.StatusFromString(s)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusPending,
			order.StatusInKitchen,
			order.StatusOutForDelivery,
			order.StatusDispatched,
			order.StatusCompleted,
			order.StatusCancelled,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_TransitionPolicy(t *testing.T) {
	type transition struct {
		from    order.Status
		to      order.Status
		allowed bool
	}

	cases := []transition{
		{order.StatusPending, order.StatusInKitchen, true},
		{order.StatusPending, order.StatusOutForDelivery, true},
		{order.StatusPending, order.StatusDispatched, true},
		{order.StatusPending, order.StatusCompleted, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusInKitchen, order.StatusOutForDelivery, true},
		{order.StatusInKitchen, order.StatusCompleted, true},
		{order.StatusInKitchen, order.StatusCancelled, true},
		{order.StatusInKitchen, order.StatusPending, false},
		{order.StatusInKitchen, order.StatusDispatched, false},
		{order.StatusOutForDelivery, order.StatusCompleted, true},
		{order.StatusOutForDelivery, order.StatusCancelled, true},
		{order.StatusOutForDelivery, order.StatusInKitchen, false},
		{order.StatusDispatched, order.StatusCompleted, true},
		{order.StatusDispatched, order.StatusCancelled, true},
		{order.StatusDispatched, order.StatusPending, false},
		{order.StatusCompleted, order.StatusPending, false},
		{order.StatusCompleted, order.StatusCancelled, false},
		{order.StatusCancelled, order.StatusPending, false},
		{order.StatusCancelled, order.StatusDispatched, false},
		{order.StatusCancelled, order.StatusCompleted, false},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("%s->%s", tc.from.String(), tc.to.String())
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))

			newStatus, err := tc.from.TransitionTo(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, newStatus)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusCompleted.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusInKitchen.IsTerminal())
	assert.False(t, order.StatusOutForDelivery.IsTerminal())
	assert.False(t, order.StatusDispatched.IsTerminal())
}

func TestStatus_AllowedTransitions(t *testing.T) {
	t.Run("terminal statuses have no exits", func(t *testing.T) {
		assert.Empty(t, order.StatusCompleted.AllowedTransitions())
		assert.Empty(t, order.StatusCancelled.AllowedTransitions())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := order.StatusPending.AllowedTransitions()
		require.NotEmpty(t, first)
		first[0] = order.StatusUnknown

		second := order.StatusPending.AllowedTransitions()
		assert.NotEqual(t, order.StatusUnknown, second[0])
	})
}
