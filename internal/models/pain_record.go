package models

import "time"

const (
	MinPainLevel = 0
	MaxPainLevel = 10
)

type PainRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PatientID string    `gorm:"not null;index" json:"patientId"`
	Date      time.Time `gorm:"not null" json:"date"`
	PainLevel int       `gorm:"not null" json:"painLevel"`
	Notes     string    `json:"notes,omitempty"`
}
