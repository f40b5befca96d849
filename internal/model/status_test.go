package model_test

import (
	"testing"

	"go-inventory-orders/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{model.StatusPending, model.StatusCompleted, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPending, model.StatusPending, false},
		{model.StatusCompleted, model.StatusPending, false},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusCompleted, model.StatusCompleted, false},
		{model.StatusCancelled, model.StatusPending, false},
		{model.StatusCancelled, model.StatusCompleted, false},
		{model.StatusCancelled, model.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := model.ParseOrderStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, status)

	_, err = model.ParseOrderStatus("SHIPPED")
	assert.Error(t, err)
}
