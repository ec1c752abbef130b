package models

// AppState is a small key-value table for one-off application flags, such as
// the legacy-import completion marker.
type AppState struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}
