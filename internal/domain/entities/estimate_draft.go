package entities

import "time"

// EstimateDraft is the single aggregate the wizard mutates step by step.
//
// Domain notes:
//   - Each wizard step owns exactly one top-level sub-record, keyed by the
//     step id from the catalog (customerDetails, interiorPainting, ...).
//     The review step owns the signature sub-record.
//   - Currency values are decimal strings with 0-2 fraction digits; they are
//     only interpreted numerically during payment derivation.
//   - The draft is never persisted as such; a submitted draft produces an
//     Invoice and the draft is discarded on reset.

type EstimateDraft struct {
	Customer       CustomerDetails  `json:"customerDetails"`
	Interior       InteriorPainting `json:"interiorPainting"`
	Exterior       ExteriorPainting `json:"exteriorPainting"`
	Handyman       HandymanWork     `json:"handymanServices"`
	PaintSelection PaintSelection   `json:"paintSelection"`
	Payment        PaymentDetails   `json:"paymentDetails"`
	Warranty       Warranty         `json:"warranty"`
	Images         Images           `json:"images"`
	Signature      Signature        `json:"signature"`
}

type CustomerDetails struct {
	CustomerName string `json:"customerName" validate:"min=2"`
	Email        string `json:"email" validate:"email"`
	Phone        string `json:"phone" validate:"min=10"`
	Address      string `json:"address" validate:"min=5"`
	City         string `json:"city" validate:"min=2"`
	State        string `json:"state" validate:"min=2"`
	Zip          string `json:"zip" validate:"min=5"`
}

// Flag maps only carry keys from the matching static catalog; an empty map is
// a valid (skipped) section.

type InteriorPainting struct {
	Rooms         map[string]bool `json:"rooms" validate:"interior_rooms"`
	Options       map[string]bool `json:"options" validate:"interior_options"`
	InteriorNotes string          `json:"interiorCommercialNotes"`
}

type ExteriorPainting struct {
	Elements      map[string]bool `json:"exteriorElements" validate:"exterior_elements"`
	ExteriorNotes string          `json:"exteriorCommercialNotes"`
}

type HandymanWork struct {
	Services      map[string]bool `json:"services" validate:"handyman_services"`
	HandymanNotes string          `json:"handymanNotes"`
}

type PaintSelection struct {
	PaintBrand   string `json:"paintBrand" validate:"oneof=sherwinWilliams benjaminMoore other"`
	PaintFinish  string `json:"paintFinish" validate:"oneof=flat eggshell satin semiGloss highGloss"`
	CustomColors bool   `json:"customColors"`
	PaintNotes   string `json:"paintNotes"`
}

// PaintingPayment is the required payment group; BalanceDue is derived and
// never user-edited.
type PaintingPayment struct {
	TotalCost   string `json:"totalCost" validate:"currency"`
	DownPayment string `json:"downPayment" validate:"currency"`
	BalanceDue  string `json:"balanceDue" validate:"currency"`
}

// HandymanPayment mirrors PaintingPayment but every field is optional.
type HandymanPayment struct {
	TotalCost   string `json:"totalCost" validate:"omitempty,currency"`
	DownPayment string `json:"downPayment" validate:"omitempty,currency"`
	BalanceDue  string `json:"balanceDue" validate:"omitempty,currency"`
}

type PaymentDetails struct {
	PaintingPayment  PaintingPayment `json:"paintingPayment"`
	HandymanPayment  HandymanPayment `json:"handymanPayment"`
	GrandTotal       string          `json:"grandTotal" validate:"currency"`
	TotalDownPayment string          `json:"totalDownPayment" validate:"currency"`
	PaymentLink      string          `json:"paymentLink" validate:"omitempty,url"`
}

type Warranty struct {
	InteriorWarrantyMonths string `json:"interiorWarrantyMonths" validate:"months"`
	InteriorWarrantyNotes  string `json:"interiorWarrantyNotes"`
	ExteriorWarrantyMonths string `json:"exteriorWarrantyMonths" validate:"omitempty,months"`
	ExteriorWarrantyNotes  string `json:"exteriorWarrantyNotes"`
}

type Images struct {
	Images        []string `json:"images"`
	ImageComments string   `json:"imageComments"`
}

type Signature struct {
	CustomerSignature   string    `json:"customerSignature" validate:"min=2"`
	ContractorSignature string    `json:"contractorSignature"`
	Date                time.Time `json:"date"`
}

// DefaultContractorSignature prefills the contractor side of the signature.
const DefaultContractorSignature = "Angel Verde"

// NewEstimateDraft returns a draft with the documented default values.
func NewEstimateDraft(now time.Time) EstimateDraft {
	return EstimateDraft{
		Customer: CustomerDetails{},
		Interior: InteriorPainting{
			Rooms:   map[string]bool{},
			Options: map[string]bool{},
		},
		Exterior: ExteriorPainting{
			Elements: map[string]bool{},
		},
		Handyman: HandymanWork{
			Services: map[string]bool{},
		},
		PaintSelection: PaintSelection{
			PaintBrand:   "sherwinWilliams",
			PaintFinish:  "eggshell",
			CustomColors: false,
		},
		Payment: PaymentDetails{
			PaintingPayment: PaintingPayment{
				TotalCost:   "0.00",
				DownPayment: "0.00",
				BalanceDue:  "0.00",
			},
			HandymanPayment: HandymanPayment{
				TotalCost:   "0.00",
				DownPayment: "0.00",
				BalanceDue:  "0.00",
			},
			GrandTotal:       "0.00",
			TotalDownPayment: "0.00",
		},
		Warranty: Warranty{
			InteriorWarrantyMonths: "24",
			ExteriorWarrantyMonths: "24",
		},
		Images: Images{
			Images: []string{},
		},
		Signature: Signature{
			ContractorSignature: DefaultContractorSignature,
			Date:                now,
		},
	}
}
