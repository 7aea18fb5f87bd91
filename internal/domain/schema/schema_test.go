package schema

import (
	"strings"
	"testing"
	"time"

	"rockstar_services/internal/domain/catalog"
	"rockstar_services/internal/domain/entities"
)

func validDraft() entities.EstimateDraft {
	d := entities.NewEstimateDraft(time.Now())
	d.Customer = entities.CustomerDetails{
		CustomerName: "Jane Doe",
		Email:        "jane@x.com",
		Phone:        "5551234567",
		Address:      "1 Main St",
		City:         "Metropolis",
		State:        "NY",
		Zip:          "10001",
	}
	d.Signature.CustomerSignature = "Jane Doe"
	return d
}

func hasField(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateStep_CustomerDetails(t *testing.T) {
	t.Run("defaults fail with per-field messages", func(t *testing.T) {
		d := entities.NewEstimateDraft(time.Now())
		errs := ValidateStep(d, catalog.StepCustomerDetails)
		if len(errs) != 7 {
			t.Fatalf("expected 7 field errors, got %d: %+v", len(errs), errs)
		}
		if !hasField(errs, "customerDetails.customerName") {
			t.Fatalf("expected customerName error, got %+v", errs)
		}
		for _, e := range errs {
			if e.Field == "customerDetails.customerName" && e.Message != "Name is required" {
				t.Fatalf("expected message 'Name is required', got %q", e.Message)
			}
		}
	})

	t.Run("filled customer passes", func(t *testing.T) {
		if errs := ValidateStep(validDraft(), catalog.StepCustomerDetails); len(errs) != 0 {
			t.Fatalf("expected no errors, got %+v", errs)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		d := validDraft()
		d.Customer.Email = "not-an-email"
		errs := ValidateStep(d, catalog.StepCustomerDetails)
		if !hasField(errs, "customerDetails.email") {
			t.Fatalf("expected email error, got %+v", errs)
		}
	})

	t.Run("short phone", func(t *testing.T) {
		d := validDraft()
		d.Customer.Phone = "555123"
		errs := ValidateStep(d, catalog.StepCustomerDetails)
		if !hasField(errs, "customerDetails.phone") {
			t.Fatalf("expected phone error, got %+v", errs)
		}
	})
}

func TestValidateStep_FlagMaps(t *testing.T) {
	t.Run("empty maps are valid sections", func(t *testing.T) {
		d := validDraft()
		for _, step := range []int{catalog.StepInteriorPainting, catalog.StepExteriorPainting, catalog.StepHandymanServices} {
			if errs := ValidateStep(d, step); len(errs) != 0 {
				t.Fatalf("step %d: expected no errors, got %+v", step, errs)
			}
		}
	})

	t.Run("catalog keys accepted", func(t *testing.T) {
		d := validDraft()
		d.Interior.Rooms["kitchen"] = true
		d.Interior.Options["walls"] = false
		d.Exterior.Elements["fence"] = true
		d.Handyman.Services["plumbing"] = true
		for _, step := range []int{catalog.StepInteriorPainting, catalog.StepExteriorPainting, catalog.StepHandymanServices} {
			if errs := ValidateStep(d, step); len(errs) != 0 {
				t.Fatalf("step %d: expected no errors, got %+v", step, errs)
			}
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		d := validDraft()
		d.Interior.Rooms["ballroom"] = true
		errs := ValidateStep(d, catalog.StepInteriorPainting)
		if !hasField(errs, "interiorPainting.rooms") {
			t.Fatalf("expected rooms error, got %+v", errs)
		}
	})
}

func TestValidateStep_PaintSelection(t *testing.T) {
	d := validDraft()
	if errs := ValidateStep(d, catalog.StepPaintSelection); len(errs) != 0 {
		t.Fatalf("defaults should pass, got %+v", errs)
	}

	d.PaintSelection.PaintBrand = "duluxe"
	errs := ValidateStep(d, catalog.StepPaintSelection)
	if !hasField(errs, "paintSelection.paintBrand") {
		t.Fatalf("expected paintBrand error, got %+v", errs)
	}
}

func TestValidateStep_Payment(t *testing.T) {
	t.Run("currency pattern", func(t *testing.T) {
		cases := []struct {
			value string
			ok    bool
		}{
			{"0.00", true},
			{"1000", true},
			{"749.5", true},
			{"749.50", true},
			{"749.505", false},
			{"-5.00", false},
			{".50", false},
			{"1,000.00", false},
			{"abc", false},
			{"", false},
		}
		for _, tc := range cases {
			d := validDraft()
			d.Payment.PaintingPayment.TotalCost = tc.value
			errs := ValidateStep(d, catalog.StepPaymentDetails)
			got := !hasField(errs, "paymentDetails.paintingPayment.totalCost")
			if got != tc.ok {
				t.Fatalf("value %q: expected ok=%v, got errors %+v", tc.value, tc.ok, errs)
			}
		}
	})

	t.Run("handyman group optional", func(t *testing.T) {
		d := validDraft()
		d.Payment.HandymanPayment = entities.HandymanPayment{}
		if errs := ValidateStep(d, catalog.StepPaymentDetails); len(errs) != 0 {
			t.Fatalf("empty handyman payment should pass, got %+v", errs)
		}
	})

	t.Run("payment link must be a url when present", func(t *testing.T) {
		d := validDraft()
		d.Payment.PaymentLink = "not a url"
		errs := ValidateStep(d, catalog.StepPaymentDetails)
		if !hasField(errs, "paymentDetails.paymentLink") {
			t.Fatalf("expected paymentLink error, got %+v", errs)
		}

		d.Payment.PaymentLink = "https://pay.example.com/inv/1"
		if errs := ValidateStep(d, catalog.StepPaymentDetails); len(errs) != 0 {
			t.Fatalf("valid link should pass, got %+v", errs)
		}
	})
}

func TestValidateStep_Warranty(t *testing.T) {
	d := validDraft()
	if errs := ValidateStep(d, catalog.StepWarranty); len(errs) != 0 {
		t.Fatalf("defaults should pass, got %+v", errs)
	}

	d.Warranty.InteriorWarrantyMonths = "two years"
	errs := ValidateStep(d, catalog.StepWarranty)
	if !hasField(errs, "warranty.interiorWarrantyMonths") {
		t.Fatalf("expected interiorWarrantyMonths error, got %+v", errs)
	}
	for _, e := range errs {
		if e.Field == "warranty.interiorWarrantyMonths" && e.Message != "Enter a valid number" {
			t.Fatalf("expected months message, got %q", e.Message)
		}
	}

	// Exterior months are optional but validated when present.
	d = validDraft()
	d.Warranty.ExteriorWarrantyMonths = ""
	if errs := ValidateStep(d, catalog.StepWarranty); len(errs) != 0 {
		t.Fatalf("empty exterior months should pass, got %+v", errs)
	}
}

func TestValidateStep_Signature(t *testing.T) {
	d := validDraft()
	d.Signature.CustomerSignature = ""
	errs := ValidateStep(d, catalog.StepReview)
	if !hasField(errs, "signature.customerSignature") {
		t.Fatalf("expected customerSignature error, got %+v", errs)
	}
}

func TestValidate_WholeDraft(t *testing.T) {
	t.Run("valid draft has no errors", func(t *testing.T) {
		if errs := Validate(validDraft()); len(errs) != 0 {
			t.Fatalf("expected no errors, got %+v", errs)
		}
	})

	t.Run("aggregates all step groups", func(t *testing.T) {
		d := entities.NewEstimateDraft(time.Now())
		errs := Validate(d)
		if len(errs) == 0 {
			t.Fatalf("expected errors for default draft")
		}
		var sawCustomer, sawSignature bool
		for _, e := range errs {
			if strings.HasPrefix(e.Field, "customerDetails.") {
				sawCustomer = true
			}
			if strings.HasPrefix(e.Field, "signature.") {
				sawSignature = true
			}
		}
		if !sawCustomer || !sawSignature {
			t.Fatalf("expected errors from first and last groups, got %+v", errs)
		}
	})
}
