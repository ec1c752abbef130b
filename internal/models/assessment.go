package models

import "time"

// AssessmentLifetime is how long a patient has to answer an assessment,
// fixed at creation and never recomputed.
const AssessmentLifetime = 7 * 24 * time.Hour

const (
	AssessmentStatusPending   = "pending"
	AssessmentStatusSent      = "sent"
	AssessmentStatusCompleted = "completed"
)

const (
	SubmittedByPatient   = "patient"
	SubmittedByTherapist = "therapist"
)

type Assessment struct {
	ID        string `gorm:"primaryKey" json:"id"`
	PatientID string `gorm:"not null;index" json:"patientId"`
	// PatientName is copied from the patient at creation time as a read
	// optimization; it is not updated if the patient is later renamed.
	PatientName     string     `gorm:"not null" json:"patientName"`
	ShareToken      string     `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt       time.Time  `gorm:"not null" json:"createdAt"`
	ExpiresAt       time.Time  `gorm:"not null" json:"expiresAt"`
	IsCompleted     bool       `gorm:"not null;default:false" json:"isCompleted"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	IsSentToPatient bool       `gorm:"not null;default:false" json:"isSentToPatient"`
	SentAt          *time.Time `json:"sentAt,omitempty"`
}

// Status folds the two lifecycle flags into the three buckets shown to the
// therapist. A completed assessment counts as completed whether or not it was
// ever sent.
func (assessment Assessment) Status() string {
	switch {
	case assessment.IsCompleted:
		return AssessmentStatusCompleted
	case assessment.IsSentToPatient:
		return AssessmentStatusSent
	default:
		return AssessmentStatusPending
	}
}

func (assessment Assessment) Expired(now time.Time) bool {
	return now.After(assessment.ExpiresAt)
}

type AssessmentResponse struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	AssessmentID string    `gorm:"uniqueIndex;not null" json:"assessmentId"`
	PatientID    string    `gorm:"not null;index" json:"patientId"`
	PainLevel    int       `gorm:"not null" json:"painLevel"`
	Notes        string    `json:"notes,omitempty"`
	SubmittedAt  time.Time `gorm:"not null" json:"submittedAt"`
	SubmittedBy  string    `gorm:"not null" json:"submittedBy"`
}
