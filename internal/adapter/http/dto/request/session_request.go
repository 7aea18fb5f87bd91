package request

import (
	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase"
)

// StepUpdateRequest carries one step's sub-record keyed by the step id, the
// same shape the wizard client holds in its form state. Exactly one key is
// expected; the handler matches it against the step named in the path.
type StepUpdateRequest struct {
	CustomerDetails  *entities.CustomerDetails  `json:"customerDetails"`
	InteriorPainting *entities.InteriorPainting `json:"interiorPainting"`
	ExteriorPainting *entities.ExteriorPainting `json:"exteriorPainting"`
	HandymanServices *entities.HandymanWork     `json:"handymanServices"`
	PaintSelection   *entities.PaintSelection   `json:"paintSelection"`
	PaymentDetails   *entities.PaymentDetails   `json:"paymentDetails"`
	Warranty         *entities.Warranty         `json:"warranty"`
	Images           *entities.Images           `json:"images"`
	Signature        *entities.Signature        `json:"signature"`
}

func (r StepUpdateRequest) ToStepValues() usecase.StepValues {
	return usecase.StepValues{
		Customer:       r.CustomerDetails,
		Interior:       r.InteriorPainting,
		Exterior:       r.ExteriorPainting,
		Handyman:       r.HandymanServices,
		PaintSelection: r.PaintSelection,
		Payment:        r.PaymentDetails,
		Warranty:       r.Warranty,
		Images:         r.Images,
		Signature:      r.Signature,
	}
}

// JumpRequest targets a step indicator click.
type JumpRequest struct {
	Step *int `json:"step" binding:"required"`
}
