package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rockstar_services/internal/adapter/http/handlers/mocks"
	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/domain/schema"
	"rockstar_services/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleSession() entities.WizardSession {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return entities.WizardSession{
		ID:          "11111111-2222-3333-4444-555555555555",
		State:       entities.WizardStateEditing,
		CurrentStep: 0,
		Completed:   map[int]bool{},
		Draft:       entities.NewEstimateDraft(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSessionHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().StartSession(gomock.Any()).Return(sampleSession(), nil)

		r := gin.New()
		r.POST("/v1/sessions", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["state"] != "editing" {
			t.Fatalf("expected editing state, got %v", body["state"])
		}
		progress, ok := body["progress"].([]any)
		if !ok || len(progress) != 9 {
			t.Fatalf("expected 9 progress entries, got %v", body["progress"])
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().StartSession(gomock.Any()).Return(entities.WizardSession{}, errors.New("boom"))

		r := gin.New()
		r.POST("/v1/sessions", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestSessionHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().GetSession(gomock.Any(), "missing").Return(entities.WizardSession{}, usecase.ErrSessionNotFound)

		r := gin.New()
		r.GET("/v1/sessions/:id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		uc.EXPECT().GetSession(gomock.Any(), s.ID).Return(s, nil)

		r := gin.New()
		r.GET("/v1/sessions/:id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+s.ID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_UpdateStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.PUT("/v1/sessions/:id/steps/:step", h.UpdateStep)

		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/steps/nope", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.PUT("/v1/sessions/:id/steps/:step", h.UpdateStep)

		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/steps/customerDetails", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("step id resolves to index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		uc.EXPECT().
			UpdateStep(gomock.Any(), s.ID, 5, gomock.Any()).
			Return(s, nil)

		r := gin.New()
		r.PUT("/v1/sessions/:id/steps/:step", h.UpdateStep)

		payload := `{"paymentDetails":{"paintingPayment":{"totalCost":"400.00","downPayment":"150.00"}}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/"+s.ID+"/steps/paymentDetails", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mismatched values map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().
			UpdateStep(gomock.Any(), "s1", 0, gomock.Any()).
			Return(entities.WizardSession{}, usecase.ErrStepValuesMismatch)

		r := gin.New()
		r.PUT("/v1/sessions/:id/steps/:step", h.UpdateStep)

		payload := `{"signature":{"customerSignature":"JD"}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/steps/0", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("locked session maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().
			UpdateStep(gomock.Any(), "s1", 0, gomock.Any()).
			Return(entities.WizardSession{}, usecase.ErrSessionLocked)

		r := gin.New()
		r.PUT("/v1/sessions/:id/steps/:step", h.UpdateStep)

		payload := `{"customerDetails":{"customerName":"Jane Doe"}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s1/steps/customerDetails", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSessionHandler_Next(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked step returns 422 with field detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		fieldErrs := []schema.FieldError{
			{Field: "customerDetails.customerName", Message: "Name is required"},
		}
		uc.EXPECT().Next(gomock.Any(), s.ID).Return(s, fieldErrs, nil)

		r := gin.New()
		r.POST("/v1/sessions/:id/next", h.Next)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+s.ID+"/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var body struct {
			Code    string              `json:"code"`
			Message string              `json:"message"`
			Fields  []schema.FieldError `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", body.Code)
		}
		if body.Message != "Please fix the errors before proceeding." {
			t.Fatalf("unexpected message %q", body.Message)
		}
		if len(body.Fields) != 1 || body.Fields[0].Message != "Name is required" {
			t.Fatalf("unexpected fields %+v", body.Fields)
		}
	})

	t.Run("blocked submission on review step uses submit copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		s.CurrentStep = 8
		fieldErrs := []schema.FieldError{
			{Field: "signature.customerSignature", Message: "Signature required"},
		}
		uc.EXPECT().Next(gomock.Any(), s.ID).Return(s, fieldErrs, nil)

		r := gin.New()
		r.POST("/v1/sessions/:id/next", h.Next)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+s.ID+"/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["message"] != "Please fix the errors before submitting the form." {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		s.CurrentStep = 1
		s.Completed = map[int]bool{0: true}
		uc.EXPECT().Next(gomock.Any(), s.ID).Return(s, nil, nil)

		r := gin.New()
		r.POST("/v1/sessions/:id/next", h.Next)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+s.ID+"/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["currentStep"] != float64(1) {
			t.Fatalf("expected currentStep 1, got %v", body["currentStep"])
		}
	})
}

func TestSessionHandler_Jump(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/sessions/:id/jump", h.Jump)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/jump", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		s.CurrentStep = 2
		uc.EXPECT().JumpTo(gomock.Any(), s.ID, 2).Return(s, nil)

		r := gin.New()
		r.POST("/v1/sessions/:id/jump", h.Jump)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+s.ID+"/jump", bytes.NewBufferString(`{"step":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("out of range maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().JumpTo(gomock.Any(), "s1", 42).Return(entities.WizardSession{}, usecase.ErrInvalidStep)

		r := gin.New()
		r.POST("/v1/sessions/:id/jump", h.Jump)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/jump", bytes.NewBufferString(`{"step":42}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSessionHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not at final step maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), "s1").Return(entities.WizardSession{}, nil, usecase.ErrNotAtFinalStep)

		r := gin.New()
		r.POST("/v1/sessions/:id/submit", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("collaborator failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		err := errors.Join(usecase.ErrSubmissionFailed, errors.New("table offline"))
		uc.EXPECT().Submit(gomock.Any(), "s1").Return(entities.WizardSession{}, nil, err)

		r := gin.New()
		r.POST("/v1/sessions/:id/submit", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		s.State = entities.WizardStateCompleted
		s.CurrentStep = 8
		uc.EXPECT().Submit(gomock.Any(), s.ID).Return(s, nil, nil)

		r := gin.New()
		r.POST("/v1/sessions/:id/submit", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+s.ID+"/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["state"] != "completed" {
			t.Fatalf("expected completed state, got %v", body["state"])
		}
	})
}

func TestSessionHandler_Reset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		s := sampleSession()
		uc.EXPECT().Reset(gomock.Any(), s.ID).Return(s, nil)

		r := gin.New()
		r.POST("/v1/sessions/:id/reset", h.Reset)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+s.ID+"/reset", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		h := NewSessionHandler(uc)

		summary := usecase.ReviewSummary{GrandTotal: "700.00", BalanceDue: "550.00"}
		uc.EXPECT().Review(gomock.Any(), "s1").Return(summary, nil)

		r := gin.New()
		r.GET("/v1/sessions/:id/review", h.Review)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s1/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["balanceDue"] != "550.00" {
			t.Fatalf("expected balanceDue 550.00, got %v", body["balanceDue"])
		}
	})
}
