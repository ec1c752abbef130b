package services

import (
	"errors"

	"github.com/fisiotrack/fisiotrack/internal/models"
)

var ErrInvalidPainLevel = errors.New("pain level must be between 0 and 10")

// ValidatePainLevel guards every path that accepts a self-reported or
// therapist-entered pain level. The input widgets constrain the range too,
// but the repositories must never see an out-of-range value.
func ValidatePainLevel(level int) error {
	if level < models.MinPainLevel || level > models.MaxPainLevel {
		return ErrInvalidPainLevel
	}
	return nil
}
