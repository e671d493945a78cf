package models

import "time"

type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"   // Booked, awaiting doctor confirmation
	ConsultationStatusConfirmed ConsultationStatus = "confirmed" // Doctor accepted the slot
	ConsultationStatusCompleted ConsultationStatus = "completed" // Session finished, notes written
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

var consultationTransitions = map[ConsultationStatus][]ConsultationStatus{
	ConsultationStatusPending:   {ConsultationStatusConfirmed, ConsultationStatusCancelled},
	ConsultationStatusConfirmed: {ConsultationStatusCompleted, ConsultationStatusCancelled},
	ConsultationStatusCompleted: {},
	ConsultationStatusCancelled: {},
}

// CanTransitionConsultation reports whether a consultation may move between statuses.
func CanTransitionConsultation(from, to ConsultationStatus) bool {
	for _, next := range consultationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Consultation keeps a snapshot of the doctor at booking time so the
// booking record survives later doctor profile edits.
type Consultation struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	UserID          string             `gorm:"not null;index" json:"user_id"`
	User            User               `gorm:"foreignKey:UserID" json:"user"`
	DoctorID        uint               `gorm:"index" json:"doctor_id"`
	DoctorName      string             `json:"doctor_name"`
	DoctorSpecialty string             `json:"doctor_specialty"`
	DoctorImage     string             `json:"doctor_image"`
	Date            string             `gorm:"type:VARCHAR(10)" json:"date"` // YYYY-MM-DD
	Time            string             `gorm:"type:VARCHAR(5)" json:"time"`  // HH:MM
	Duration        int                `json:"duration"`                     // minutes
	Status          ConsultationStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Symptoms        string             `json:"symptoms"`
	Notes           string             `json:"notes"`
	Price           float64            `json:"price"`
	PaymentStatus   PaymentStatus      `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod   string             `json:"payment_method"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
