package models

type Exercise struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
}

// ExerciseResponse is the per-assessment checklist the patient fills in while
// answering. It is kept apart from the main assessment response and carries a
// copy of the exercise name so old checklists survive catalog edits.
type ExerciseResponse struct {
	ID           string `gorm:"primaryKey" json:"id"`
	AssessmentID string `gorm:"not null;uniqueIndex:uidx_assessment_exercise" json:"assessmentId"`
	ExerciseID   string `gorm:"not null;uniqueIndex:uidx_assessment_exercise" json:"exerciseId"`
	ExerciseName string `gorm:"not null" json:"exerciseName"`
	Completed    bool   `gorm:"not null;default:false" json:"completed"`
}

type BuiltinExercise struct {
	Name        string
	Description string
}

func DefaultBuiltinExercises() []BuiltinExercise {
	return []BuiltinExercise{
		{Name: "Shoulder pendulum", Description: "Lean forward and let the arm swing in small circles"},
		{Name: "Wall slides", Description: "Slide both arms up a wall, keeping the back flat"},
		{Name: "Cat-cow stretch", Description: "Alternate arching and rounding the spine on all fours"},
		{Name: "Glute bridge", Description: "Lift the hips off the floor with knees bent"},
		{Name: "Hamstring stretch", Description: "Seated, reach toward the toes and hold 30 seconds"},
		{Name: "Calf raises", Description: "Rise onto the toes slowly, lower with control"},
		{Name: "Neck rotations", Description: "Turn the head slowly to each side, hold briefly"},
		{Name: "Quadriceps sets", Description: "Tighten the thigh with the knee straight, hold 5 seconds"},
	}
}
