package models

import "time"

const RoleTherapist = "therapist"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:therapist" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}
