package usecase

import (
	"context"

	"rockstar_services/internal/domain/catalog"
	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/domain/money"
)

// ReviewSection is one editable block of the summary. StepIndex is the step a
// client jumps back to for edits.
type ReviewSection struct {
	StepIndex int      `json:"stepIndex"`
	Title     string   `json:"title"`
	Items     []string `json:"items"`
	Notes     string   `json:"notes,omitempty"`
}

// ReviewSummary is the read-only projection shown on the final step. Flag
// sections with nothing selected are suppressed entirely, and the displayed
// balance due is grand total minus total down payment, not any per-group
// balance.
type ReviewSummary struct {
	Customer         entities.CustomerDetails `json:"customer"`
	Sections         []ReviewSection          `json:"sections"`
	Paint            entities.PaintSelection  `json:"paintSelection"`
	GrandTotal       string                   `json:"grandTotal"`
	TotalDownPayment string                   `json:"totalDownPayment"`
	BalanceDue       string                   `json:"balanceDue"`
	PaymentLink      string                   `json:"paymentLink,omitempty"`
	Warranty         entities.Warranty        `json:"warranty"`
	Images           entities.Images          `json:"images"`
	Signature        entities.Signature       `json:"signature"`
}

func (u *WizardUseCase) Review(ctx context.Context, id string) (ReviewSummary, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return ReviewSummary{}, err
	}
	return buildReview(s.Draft), nil
}

func buildReview(d entities.EstimateDraft) ReviewSummary {
	summary := ReviewSummary{
		Customer:         d.Customer,
		Paint:            d.PaintSelection,
		GrandTotal:       d.Payment.GrandTotal,
		TotalDownPayment: d.Payment.TotalDownPayment,
		BalanceDue:       money.DifferenceLenient(d.Payment.GrandTotal, d.Payment.TotalDownPayment),
		PaymentLink:      d.Payment.PaymentLink,
		Warranty:         d.Warranty,
		Images:           d.Images,
		Signature:        d.Signature,
	}

	interior := append(
		selectedLabels(catalog.InteriorRooms, d.Interior.Rooms),
		selectedLabels(catalog.InteriorOptions, d.Interior.Options)...,
	)
	if len(interior) > 0 {
		summary.Sections = append(summary.Sections, ReviewSection{
			StepIndex: catalog.StepInteriorPainting,
			Title:     "Interior Painting",
			Items:     interior,
			Notes:     d.Interior.InteriorNotes,
		})
	}

	if exterior := selectedLabels(catalog.ExteriorElements, d.Exterior.Elements); len(exterior) > 0 {
		summary.Sections = append(summary.Sections, ReviewSection{
			StepIndex: catalog.StepExteriorPainting,
			Title:     "Exterior Painting",
			Items:     exterior,
			Notes:     d.Exterior.ExteriorNotes,
		})
	}

	if services := selectedLabels(catalog.HandymanServices, d.Handyman.Services); len(services) > 0 {
		summary.Sections = append(summary.Sections, ReviewSection{
			StepIndex: catalog.StepHandymanServices,
			Title:     "Handyman Services",
			Items:     services,
			Notes:     d.Handyman.HandymanNotes,
		})
	}

	return summary
}

// selectedLabels keeps catalog order, not map iteration order.
func selectedLabels(opts []catalog.Option, flags map[string]bool) []string {
	var labels []string
	for _, o := range opts {
		if flags[o.ID] {
			labels = append(labels, o.Label)
		}
	}
	return labels
}
