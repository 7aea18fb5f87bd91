package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"rockstar_services/internal/domain/catalog"
	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/domain/schema"
	"rockstar_services/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound      = errors.New("wizard session not found")
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrInvalidStep          = errors.New("invalid step index")
	ErrStepValuesMismatch   = errors.New("step values do not match step index")
	ErrSessionLocked        = errors.New("session is not editable")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrNotAtFinalStep       = errors.New("submit only allowed from the final step")
	ErrSubmissionFailed     = errors.New("invoice submission failed")
)

// Notification copy shown for the three orchestration outcomes.
const (
	validationErrorTitle = "Validation Error"
	stepValidationMsg    = "Please fix the errors before proceeding."
	submitValidationMsg  = "Please fix the errors before submitting the form."

	submitSuccessTitle = "Invoice Generated Successfully"
	submitSuccessMsg   = "Your invoice has been created and can now be shared with the customer."

	submitFailureTitle = "Submission Failed"
	submitFailureMsg   = "There was an error generating your invoice. Please try again."
)

// StepValues carries one step's sub-record into UpdateStep. Exactly the
// pointer matching the target step must be set.
type StepValues struct {
	Customer       *entities.CustomerDetails
	Interior       *entities.InteriorPainting
	Exterior       *entities.ExteriorPainting
	Handyman       *entities.HandymanWork
	PaintSelection *entities.PaintSelection
	Payment        *entities.PaymentDetails
	Warranty       *entities.Warranty
	Images         *entities.Images
	Signature      *entities.Signature
}

// IWizardUseCase exposes the wizard orchestrator operations.
//
// Next and Submit return schema field errors alongside the session: a failed
// validation is an answered question, not a transport error, and leaves the
// session state untouched.

type IWizardUseCase interface {
	StartSession(ctx context.Context) (entities.WizardSession, error)
	GetSession(ctx context.Context, id string) (entities.WizardSession, error)
	UpdateStep(ctx context.Context, id string, step int, values StepValues) (entities.WizardSession, error)
	Next(ctx context.Context, id string) (entities.WizardSession, []schema.FieldError, error)
	Prev(ctx context.Context, id string) (entities.WizardSession, error)
	JumpTo(ctx context.Context, id string, step int) (entities.WizardSession, error)
	Submit(ctx context.Context, id string) (entities.WizardSession, []schema.FieldError, error)
	Reset(ctx context.Context, id string) (entities.WizardSession, error)
	Review(ctx context.Context, id string) (ReviewSummary, error)
}

type WizardUseCase struct {
	store    interfaces.ISessionStore
	invoices interfaces.IInvoiceRepository
	notifier interfaces.INotifier
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(store interfaces.ISessionStore, invoices interfaces.IInvoiceRepository, notifier interfaces.INotifier) *WizardUseCase {
	return &WizardUseCase{store: store, invoices: invoices, notifier: notifier}
}

func (u *WizardUseCase) StartSession(ctx context.Context) (entities.WizardSession, error) {
	now := time.Now().UTC()
	s := entities.WizardSession{
		ID:          uuid.NewString(),
		State:       entities.WizardStateEditing,
		CurrentStep: 0,
		Completed:   map[int]bool{},
		Draft:       entities.NewEstimateDraft(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, err
	}
	return s, nil
}

func (u *WizardUseCase) GetSession(ctx context.Context, id string) (entities.WizardSession, error) {
	return u.load(ctx, id)
}

// UpdateStep replaces one step's sub-record with the given values. Payment
// derivation runs synchronously whenever the payment step is written, before
// the session is stored: derived fields are never observable out of sync with
// their inputs.
func (u *WizardUseCase) UpdateStep(ctx context.Context, id string, step int, values StepValues) (entities.WizardSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	if s.State != entities.WizardStateEditing {
		return entities.WizardSession{}, ErrSessionLocked
	}
	if step < 0 || step >= catalog.StepCount {
		return entities.WizardSession{}, ErrInvalidStep
	}

	switch step {
	case catalog.StepCustomerDetails:
		if values.Customer == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		s.Draft.Customer = *values.Customer
	case catalog.StepInteriorPainting:
		if values.Interior == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		s.Draft.Interior = *values.Interior
	case catalog.StepExteriorPainting:
		if values.Exterior == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		s.Draft.Exterior = *values.Exterior
	case catalog.StepHandymanServices:
		if values.Handyman == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		s.Draft.Handyman = *values.Handyman
	case catalog.StepPaintSelection:
		if values.PaintSelection == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		s.Draft.PaintSelection = *values.PaintSelection
	case catalog.StepPaymentDetails:
		if values.Payment == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		next := *values.Payment
		derivePayments(s.Draft.Payment, &next)
		s.Draft.Payment = next
	case catalog.StepWarranty:
		if values.Warranty == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		s.Draft.Warranty = *values.Warranty
	case catalog.StepImages:
		if values.Images == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		s.Draft.Images = *values.Images
	case catalog.StepReview:
		if values.Signature == nil {
			return entities.WizardSession{}, ErrStepValuesMismatch
		}
		sig := *values.Signature
		if sig.ContractorSignature == "" {
			sig.ContractorSignature = entities.DefaultContractorSignature
		}
		if sig.Date.IsZero() {
			sig.Date = s.Draft.Signature.Date
		}
		s.Draft.Signature = sig
	}

	s.UpdatedAt = time.Now().UTC()
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, err
	}
	return s, nil
}

// Next validates only the current step's rule group. On the final step it
// submits instead of navigating.
func (u *WizardUseCase) Next(ctx context.Context, id string) (entities.WizardSession, []schema.FieldError, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, nil, err
	}
	if s.State == entities.WizardStateSubmitting {
		return entities.WizardSession{}, nil, ErrSubmissionInProgress
	}
	if s.State != entities.WizardStateEditing {
		return entities.WizardSession{}, nil, ErrSessionLocked
	}

	if s.CurrentStep == catalog.StepCount-1 {
		return u.submit(ctx, s)
	}

	if fieldErrs := schema.ValidateStep(s.Draft, s.CurrentStep); len(fieldErrs) > 0 {
		u.notifier.Notify(entities.SeverityError, validationErrorTitle, stepValidationMsg)
		return s, fieldErrs, nil
	}

	s.Completed[s.CurrentStep] = true
	s.CurrentStep = min(s.CurrentStep+1, catalog.StepCount-1)
	s.UpdatedAt = time.Now().UTC()
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, nil, err
	}
	return s, nil, nil
}

// Prev always succeeds and never touches completion flags.
func (u *WizardUseCase) Prev(ctx context.Context, id string) (entities.WizardSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	if s.State != entities.WizardStateEditing {
		return entities.WizardSession{}, ErrSessionLocked
	}

	s.CurrentStep = max(s.CurrentStep-1, 0)
	s.UpdatedAt = time.Now().UTC()
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, err
	}
	return s, nil
}

// JumpTo moves to a step that is completed, current, or behind the current
// step. Jumping ahead past the highest completed step is a silent no-op.
func (u *WizardUseCase) JumpTo(ctx context.Context, id string, step int) (entities.WizardSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	if s.State != entities.WizardStateEditing {
		return entities.WizardSession{}, ErrSessionLocked
	}
	if step < 0 || step >= catalog.StepCount {
		return entities.WizardSession{}, ErrInvalidStep
	}

	if !s.Completed[step] && step != s.CurrentStep && step > s.CurrentStep {
		return s, nil
	}

	s.CurrentStep = step
	s.UpdatedAt = time.Now().UTC()
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, err
	}
	return s, nil
}

// Submit validates the entire draft and hands it to the invoice repository.
// Only reachable from the final step.
func (u *WizardUseCase) Submit(ctx context.Context, id string) (entities.WizardSession, []schema.FieldError, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, nil, err
	}
	if s.State == entities.WizardStateSubmitting {
		return entities.WizardSession{}, nil, ErrSubmissionInProgress
	}
	if s.State != entities.WizardStateEditing {
		return entities.WizardSession{}, nil, ErrSessionLocked
	}
	if s.CurrentStep != catalog.StepCount-1 {
		return entities.WizardSession{}, nil, ErrNotAtFinalStep
	}
	return u.submit(ctx, s)
}

func (u *WizardUseCase) submit(ctx context.Context, s entities.WizardSession) (entities.WizardSession, []schema.FieldError, error) {
	if fieldErrs := schema.Validate(s.Draft); len(fieldErrs) > 0 {
		u.notifier.Notify(entities.SeverityError, validationErrorTitle, submitValidationMsg)
		return s, fieldErrs, nil
	}

	now := time.Now().UTC()
	s.State = entities.WizardStateSubmitting
	s.Submitting = true
	s.UpdatedAt = now
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, nil, err
	}

	inv := entities.Invoice{
		CustomerName: s.Draft.Customer.CustomerName,
		Date:         now,
		Amount:       s.Draft.Payment.GrandTotal,
		Status:       entities.InvoiceStatusPending,
	}
	if _, err := u.invoices.Create(ctx, inv); err != nil {
		// Draft kept intact for a manual retry; no automatic retry.
		s.State = entities.WizardStateEditing
		s.Submitting = false
		s.UpdatedAt = time.Now().UTC()
		if perr := u.store.Put(ctx, s); perr != nil {
			return entities.WizardSession{}, nil, perr
		}
		u.notifier.Notify(entities.SeverityError, submitFailureTitle, submitFailureMsg)
		return entities.WizardSession{}, nil, errors.Join(ErrSubmissionFailed, err)
	}

	s.State = entities.WizardStateCompleted
	s.Submitting = false
	s.UpdatedAt = time.Now().UTC()
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, nil, err
	}
	u.notifier.Notify(entities.SeveritySuccess, submitSuccessTitle, submitSuccessMsg)
	return s, nil, nil
}

// Reset restores the documented defaults and returns to the first step.
func (u *WizardUseCase) Reset(ctx context.Context, id string) (entities.WizardSession, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	if s.State == entities.WizardStateSubmitting {
		return entities.WizardSession{}, ErrSubmissionInProgress
	}

	now := time.Now().UTC()
	s.State = entities.WizardStateEditing
	s.CurrentStep = 0
	s.Completed = map[int]bool{}
	s.Submitting = false
	s.Draft = entities.NewEstimateDraft(now)
	s.UpdatedAt = now
	if err := u.store.Put(ctx, s); err != nil {
		return entities.WizardSession{}, err
	}
	return s, nil
}

func (u *WizardUseCase) load(ctx context.Context, id string) (entities.WizardSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WizardSession{}, ErrInvalidSessionID
	}
	s, err := u.store.Get(ctx, id)
	if err != nil {
		return entities.WizardSession{}, err
	}
	if s.ID == "" {
		return entities.WizardSession{}, ErrSessionNotFound
	}
	if s.Completed == nil {
		s.Completed = map[int]bool{}
	}
	return s, nil
}
