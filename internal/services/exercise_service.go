package services

import (
	"errors"
	"fmt"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/google/uuid"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseRepository interface {
	List() ([]models.Exercise, error)
	SaveResponses(assessmentID string, responses []models.ExerciseResponse) error
	ListResponses(assessmentID string) ([]models.ExerciseResponse, error)
}

type ExerciseService struct {
	exercises ExerciseRepository
}

func NewExerciseService(exercises ExerciseRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

func (service *ExerciseService) ListCatalog() ([]models.Exercise, error) {
	return service.exercises.List()
}

type ExerciseCheck struct {
	ExerciseID string `json:"exerciseId"`
	Completed  bool   `json:"completed"`
}

// SaveChecklist replaces the checklist stored for an assessment. Every
// submitted id must exist in the catalog; the exercise name is copied onto
// the stored row.
func (service *ExerciseService) SaveChecklist(assessmentID string, checks []ExerciseCheck) ([]models.ExerciseResponse, error) {
	catalog, err := service.exercises.List()
	if err != nil {
		return nil, err
	}
	namesByID := make(map[string]string, len(catalog))
	for _, exercise := range catalog {
		namesByID[exercise.ID] = exercise.Name
	}

	responses := make([]models.ExerciseResponse, 0, len(checks))
	for _, check := range checks {
		name, known := namesByID[check.ExerciseID]
		if !known {
			return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, check.ExerciseID)
		}
		responses = append(responses, models.ExerciseResponse{
			ID:           uuid.NewString(),
			AssessmentID: assessmentID,
			ExerciseID:   check.ExerciseID,
			ExerciseName: name,
			Completed:    check.Completed,
		})
	}

	if err := service.exercises.SaveResponses(assessmentID, responses); err != nil {
		return nil, fmt.Errorf("save exercise checklist: %w", err)
	}
	return responses, nil
}

// Checklist returns the stored checklist, or an unchecked one built from the
// catalog when the patient has not answered yet. The default is not persisted.
func (service *ExerciseService) Checklist(assessmentID string) ([]models.ExerciseResponse, error) {
	stored, err := service.exercises.ListResponses(assessmentID)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}

	catalog, err := service.exercises.List()
	if err != nil {
		return nil, err
	}
	checklist := make([]models.ExerciseResponse, 0, len(catalog))
	for _, exercise := range catalog {
		checklist = append(checklist, models.ExerciseResponse{
			AssessmentID: assessmentID,
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
		})
	}
	return checklist, nil
}
