package consultationcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

func TestMapConsultationStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected models.ConsultationStatus
		valid    bool
	}{
		{"pending", models.ConsultationStatusPending, true},
		{"Confirmed", models.ConsultationStatusConfirmed, true},
		{"COMPLETED", models.ConsultationStatusCompleted, true},
		{"cancelled", models.ConsultationStatusCancelled, true},
		{"done", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := mapConsultationStatus(c.input)
		if c.valid {
			assert.NoError(t, err, "input %q", c.input)
			assert.Equal(t, c.expected, got)
		} else {
			assert.Error(t, err, "input %q", c.input)
		}
	}
}

func TestCanCancelConsultation(t *testing.T) {
	owner := "user-1"
	cases := []struct {
		name         string
		consultation models.Consultation
		userID       string
		expected     error
	}{
		{
			name:         "owner cancels pending booking",
			consultation: models.Consultation{UserID: owner, Status: models.ConsultationStatusPending},
			userID:       owner,
		},
		{
			name:         "someone else's booking is denied",
			consultation: models.Consultation{UserID: owner, Status: models.ConsultationStatusPending},
			userID:       "user-2",
			expected:     ErrNotConsultationOwner,
		},
		{
			name:         "confirmed booking can no longer be cancelled",
			consultation: models.Consultation{UserID: owner, Status: models.ConsultationStatusConfirmed},
			userID:       owner,
			expected:     ErrConsultationNotCancelable,
		},
		{
			name:         "second cancel fails",
			consultation: models.Consultation{UserID: owner, Status: models.ConsultationStatusCancelled},
			userID:       owner,
			expected:     ErrConsultationNotCancelable,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := canCancel(c.consultation, c.userID)
			if c.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.expected)
			}
		})
	}
}
