package models

import "time"

type Patient struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
