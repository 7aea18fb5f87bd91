package entities

import "time"

// WizardState is the wizard-level state machine.
//
// Transitions:
//   - Editing(i)  -> Editing(i+1)  valid Next for i < last
//   - Editing(8)  -> Submitting    Next (or Submit) on the last step
//   - Submitting  -> Completed     submission collaborator succeeds
//   - Submitting  -> Editing(8)    submission collaborator fails
//   - Completed   -> Editing(0)    Reset
//
// Initial state is Editing(0). Completed is only left via an explicit Reset.

type WizardState string

const (
	WizardStateEditing    WizardState = "editing"
	WizardStateSubmitting WizardState = "submitting"
	WizardStateCompleted  WizardState = "completed"
)

// WizardSession is one in-progress estimate form: the shared draft plus the
// orchestrator state that governs navigation through it.
type WizardSession struct {
	ID          string        `json:"id"`
	State       WizardState   `json:"state"`
	CurrentStep int           `json:"currentStep"`
	Completed   map[int]bool  `json:"completedSteps"`
	Submitting  bool          `json:"submitting"`
	Draft       EstimateDraft `json:"draft"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
