package model

import (
	"fmt"
	"strings"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus maps a raw query/body value onto a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(strings.ToUpper(s)); status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// CanTransitionTo reports whether an order may move from s to next.
// COMPLETED and CANCELLED are terminal. Re-entering the current status is
// rejected rather than treated as a no-op success.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == StatusCompleted || s == StatusCancelled {
		return false
	}
	return s != next
}
