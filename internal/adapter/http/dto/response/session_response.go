package response

import (
	"time"

	"rockstar_services/internal/domain/catalog"
	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/domain/schema"
)

// StepIndicator is one entry of the progress bar: a pure projection of
// orchestrator state. Locked means not completed, not current, and ahead of
// the current step.
type StepIndicator struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
	Locked    bool   `json:"locked"`
}

type SessionResponse struct {
	ID          string                 `json:"id"`
	State       string                 `json:"state"`
	CurrentStep int                    `json:"currentStep"`
	Submitting  bool                   `json:"submitting"`
	Progress    []StepIndicator        `json:"progress"`
	Draft       entities.EstimateDraft `json:"draft"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func FromSession(s entities.WizardSession) SessionResponse {
	progress := make([]StepIndicator, 0, catalog.StepCount)
	for i, step := range catalog.FormSteps {
		completed := s.Completed[i]
		active := i == s.CurrentStep
		progress = append(progress, StepIndicator{
			Index:     i,
			ID:        step.ID,
			Label:     step.Label,
			Completed: completed,
			Active:    active,
			Locked:    !completed && !active && i > s.CurrentStep,
		})
	}
	return SessionResponse{
		ID:          s.ID,
		State:       string(s.State),
		CurrentStep: s.CurrentStep,
		Submitting:  s.Submitting,
		Progress:    progress,
		Draft:       s.Draft,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ValidationFailureResponse reports a blocked navigation or submission: one
// aggregate message plus the per-field detail for inline display.
type ValidationFailureResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []schema.FieldError `json:"fields"`
}

func NewValidationFailure(message string, fields []schema.FieldError) ValidationFailureResponse {
	return ValidationFailureResponse{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Fields:  fields,
	}
}
