package ordercontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

func TestMapOrderStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected models.OrderStatus
		valid    bool
	}{
		{"pending", models.OrderStatusPending, true},
		{"CONFIRMED", models.OrderStatusConfirmed, true},
		{"Processing", models.OrderStatusProcessing, true},
		{"shipped", models.OrderStatusShipped, true},
		{"delivered", models.OrderStatusDelivered, true},
		{"cancelled", models.OrderStatusCancelled, true},
		{"ready_to_ship", "", false},
		{"", "", false},
		{"unknown", "", false},
	}
	for _, c := range cases {
		got, err := mapOrderStatus(c.input)
		if c.valid {
			assert.NoError(t, err, "input %q", c.input)
			assert.Equal(t, c.expected, got)
		} else {
			assert.Error(t, err, "input %q", c.input)
		}
	}
}

func TestMapPaymentStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "failed", "refunded", "PAID"} {
		_, err := mapPaymentStatus(valid)
		assert.NoError(t, err, "input %q", valid)
	}
	for _, invalid := range []string{"", "done", "cancelled"} {
		_, err := mapPaymentStatus(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestShippingFee(t *testing.T) {
	cases := []struct {
		subtotal float64
		fee      float64
	}{
		{0, flatShippingFee},
		{100000, flatShippingFee},
		{499999, flatShippingFee},
		{500000, 0},
		{1250000, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.fee, shippingFee(c.subtotal), "subtotal %v", c.subtotal)
	}
}

func TestGenerateOrderRefUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := generateOrderRef()
		assert.False(t, seen[ref], "duplicate ref %s", ref)
		seen[ref] = true
	}
}

func TestCanCancelOrder(t *testing.T) {
	owner := "user-1"
	cases := []struct {
		name     string
		order    models.Order
		userID   string
		expected error
	}{
		{
			name:   "owner cancels pending order",
			order:  models.Order{UserID: owner, Status: models.OrderStatusPending},
			userID: owner,
		},
		{
			name:     "someone else's order is denied",
			order:    models.Order{UserID: owner, Status: models.OrderStatusPending},
			userID:   "user-2",
			expected: ErrNotOrderOwner,
		},
		{
			name:     "confirmed order can no longer be cancelled",
			order:    models.Order{UserID: owner, Status: models.OrderStatusConfirmed},
			userID:   owner,
			expected: ErrOrderNotCancelable,
		},
		{
			name:     "second cancel fails",
			order:    models.Order{UserID: owner, Status: models.OrderStatusCancelled},
			userID:   owner,
			expected: ErrOrderNotCancelable,
		},
		{
			name:     "delivered order is terminal",
			order:    models.Order{UserID: owner, Status: models.OrderStatusDelivered},
			userID:   owner,
			expected: ErrOrderNotCancelable,
		},
		{
			name:     "ownership is checked before status",
			order:    models.Order{UserID: owner, Status: models.OrderStatusCancelled},
			userID:   "user-2",
			expected: ErrNotOrderOwner,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := canCancel(c.order, c.userID)
			if c.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.expected)
			}
		})
	}
}

func TestRestockQuantities(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 3},
	}
	assert.Equal(t, map[uint]int{1: 5, 2: 1}, restockQuantities(items))
	assert.Empty(t, restockQuantities(nil))
}
