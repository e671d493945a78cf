package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusShipped, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allowed, CanTransitionOrder(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestCanTransitionConsultation(t *testing.T) {
	cases := []struct {
		from    ConsultationStatus
		to      ConsultationStatus
		allowed bool
	}{
		{ConsultationStatusPending, ConsultationStatusConfirmed, true},
		{ConsultationStatusPending, ConsultationStatusCancelled, true},
		{ConsultationStatusPending, ConsultationStatusCompleted, false},
		{ConsultationStatusConfirmed, ConsultationStatusCompleted, true},
		{ConsultationStatusConfirmed, ConsultationStatusCancelled, true},
		{ConsultationStatusCompleted, ConsultationStatusCancelled, false},
		{ConsultationStatusCancelled, ConsultationStatusPending, false},
		{ConsultationStatusCancelled, ConsultationStatusCancelled, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.allowed, CanTransitionConsultation(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, to := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		assert.False(t, CanTransitionOrder(OrderStatusDelivered, to))
		assert.False(t, CanTransitionOrder(OrderStatusCancelled, to))
	}
}

func TestArticleTagRoundTrip(t *testing.T) {
	var a HealthArticle
	a.SetTags([]string{" dinh dưỡng ", "tim mạch", "", "vitamin"})
	assert.Equal(t, []string{"dinh dưỡng", "tim mạch", "vitamin"}, a.TagList())

	a.Tags = ""
	assert.Nil(t, a.TagList())
}
