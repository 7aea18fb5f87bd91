package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "rockstar_services/internal/adapter/http/dto/request"
	response "rockstar_services/internal/adapter/http/dto/response"
	"rockstar_services/internal/domain/catalog"
	"rockstar_services/internal/usecase"
	"rockstar_services/pkg"
)

var (
	errInvalidStepPayload = pkg.NewDomainErrorSimple("INVALID_STEP_INPUT", "Invalid step payload", http.StatusBadRequest)
	errInvalidJumpPayload = pkg.NewDomainErrorSimple("INVALID_JUMP_INPUT", "Invalid jump payload", http.StatusBadRequest)
	errUnknownStep        = pkg.NewDomainErrorSimple("UNKNOWN_STEP", "Unknown wizard step", http.StatusBadRequest)
)

// SessionHandler handles HTTP requests for estimate wizard sessions.

type SessionHandler struct {
	usecase usecase.IWizardUseCase
}

func NewSessionHandler(uc usecase.IWizardUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// CreateSession opens a fresh wizard session seeded with the form defaults.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// UpdateStep replaces one step's values in the session draft. The step path
// segment accepts the step id ("customerDetails") or its numeric index.
func (h *SessionHandler) UpdateStep(c *gin.Context) {
	step, ok := resolveStep(c.Param("step"))
	if !ok {
		c.JSON(errUnknownStep.HTTPStatus, errUnknownStep.ToHTTPError())
		return
	}

	var payload request.StepUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStepPayload.HTTPStatus, errInvalidStepPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.UpdateStep(c.Request.Context(), c.Param("id"), step, payload.ToStepValues())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// Next validates the current step and advances. A failed validation is
// reported as 422 with the per-field detail; the session is returned either
// way so the client can re-render.
func (h *SessionHandler) Next(c *gin.Context) {
	session, fieldErrs, err := h.usecase.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(fieldErrs) > 0 {
		message := stepBlockedMessage
		if session.CurrentStep == catalog.StepReview {
			message = submitBlockedMessage
		}
		c.JSON(http.StatusUnprocessableEntity, response.NewValidationFailure(message, fieldErrs))
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) Prev(c *gin.Context) {
	session, err := h.usecase.Prev(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) Jump(c *gin.Context) {
	var payload request.JumpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJumpPayload.HTTPStatus, errInvalidJumpPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.JumpTo(c.Request.Context(), c.Param("id"), *payload.Step)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) Submit(c *gin.Context) {
	session, fieldErrs, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.NewValidationFailure(submitBlockedMessage, fieldErrs))
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) Reset(c *gin.Context) {
	session, err := h.usecase.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) Review(c *gin.Context) {
	summary, err := h.usecase.Review(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Validation failure messages mirror the notification copy the usecase emits
// for the same outcomes.
const (
	stepBlockedMessage   = "Please fix the errors before proceeding."
	submitBlockedMessage = "Please fix the errors before submitting the form."
)

func resolveStep(raw string) (int, bool) {
	if idx := catalog.StepIndex(raw); idx >= 0 {
		return idx, true
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= catalog.StepCount {
		return 0, false
	}
	return idx, true
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidStep), errors.Is(err, usecase.ErrStepValuesMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionLocked):
		return pkg.NewDomainErrorSimple("SESSION_LOCKED", "Session is no longer editable", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "A submission is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAtFinalStep):
		return pkg.NewDomainErrorSimple("NOT_AT_FINAL_STEP", "Submit is only available from the review step", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainError("SUBMISSION_FAILED", "There was an error generating your invoice. Please try again.", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
