package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrTherapistPasswordRequired = errors.New("therapist password required")

type SetupUserRepository interface {
	CountUsers() (int64, error)
	Create(user *models.User) error
}

type SetupExerciseRepository interface {
	Count() (int64, error)
	CreateBatch(exercises []models.Exercise) error
}

// SetupService seeds the single therapist account and the built-in exercise
// catalog on first start.
type SetupService struct {
	users     SetupUserRepository
	exercises SetupExerciseRepository
}

func NewSetupService(users SetupUserRepository, exercises SetupExerciseRepository) *SetupService {
	return &SetupService{users: users, exercises: exercises}
}

func (service *SetupService) RequiresInitialSetup() (bool, error) {
	usersCount, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return usersCount == 0, nil
}

func (service *SetupService) EnsureTherapist(name string, email string, password string) (bool, error) {
	required, err := service.RequiresInitialSetup()
	if err != nil {
		return false, err
	}
	if !required {
		return false, nil
	}

	if strings.TrimSpace(password) == "" {
		return false, ErrTherapistPasswordRequired
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash therapist password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		Role:         models.RoleTherapist,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return false, fmt.Errorf("create therapist account: %w", err)
	}
	return true, nil
}

func (service *SetupService) EnsureExerciseCatalog() error {
	count, err := service.exercises.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return service.exercises.CreateBatch(builtinExerciseRecords())
}

func builtinExerciseRecords() []models.Exercise {
	builtins := models.DefaultBuiltinExercises()
	exercises := make([]models.Exercise, 0, len(builtins))
	for _, builtin := range builtins {
		exercises = append(exercises, models.Exercise{
			ID:          uuid.NewString(),
			Name:        builtin.Name,
			Description: builtin.Description,
		})
	}
	return exercises
}
