// Package schema is the declarative validation layer for the estimate form.
//
// Every field rule lives here once, grouped by wizard step: validating a
// single step and validating the whole draft run the same definitions. Rules
// come from the printed estimate form: minimum lengths on the customer block,
// enum membership for paint brand/finish, the currency and warranty-month
// patterns, and catalog membership for the boolean flag maps.
package schema

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"rockstar_services/internal/domain/catalog"
	"rockstar_services/internal/domain/entities"
)

// FieldError is a single field failing its rule, addressed by the field's
// JSON path inside the draft (e.g. "paymentDetails.paintingPayment.totalCost").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	currencyPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	monthsPattern   = regexp.MustCompile(`^\d+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Error paths use the JSON field names the clients see.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "currency", patternValidation(currencyPattern))
	mustRegister(v, "months", patternValidation(monthsPattern))
	mustRegister(v, "interior_rooms", catalogKeysValidation(catalog.InteriorRooms))
	mustRegister(v, "interior_options", catalogKeysValidation(catalog.InteriorOptions))
	mustRegister(v, "exterior_elements", catalogKeysValidation(catalog.ExteriorElements))
	mustRegister(v, "handyman_services", catalogKeysValidation(catalog.HandymanServices))
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func patternValidation(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// catalogKeysValidation accepts boolean flag maps whose keys all belong to the
// given catalog. An empty or nil map is a valid, skipped section.
func catalogKeysValidation(opts []catalog.Option) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.Map {
			return false
		}
		for _, key := range field.MapKeys() {
			if !catalog.HasOption(opts, key.String()) {
				return false
			}
		}
		return true
	}
}

// ValidateStep runs only the rule group for the given step index. The review
// step validates the signature sub-record.
func ValidateStep(d entities.EstimateDraft, step int) []FieldError {
	var (
		err    error
		prefix string
	)
	switch step {
	case catalog.StepCustomerDetails:
		err = validate.Struct(d.Customer)
	case catalog.StepInteriorPainting:
		err = validate.Struct(d.Interior)
	case catalog.StepExteriorPainting:
		err = validate.Struct(d.Exterior)
	case catalog.StepHandymanServices:
		err = validate.Struct(d.Handyman)
	case catalog.StepPaintSelection:
		err = validate.Struct(d.PaintSelection)
	case catalog.StepPaymentDetails:
		err = validate.Struct(d.Payment)
	case catalog.StepWarranty:
		err = validate.Struct(d.Warranty)
	case catalog.StepImages:
		err = validate.Struct(d.Images)
	case catalog.StepReview:
		err = validate.Struct(d.Signature)
		prefix = "signature"
	default:
		return nil
	}
	if prefix == "" {
		prefix = catalog.FormSteps[step].ID
	}
	return toFieldErrors(prefix, err)
}

// Validate runs every step's rule group over the full draft.
func Validate(d entities.EstimateDraft) []FieldError {
	var errs []FieldError
	for i := range catalog.FormSteps {
		errs = append(errs, ValidateStep(d, i)...)
	}
	return errs
}

func toFieldErrors(prefix string, err error) []FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: prefix, Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace starts with the sub-record's type name; swap it for
		// the step's JSON key.
		path := fe.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = prefix + path[i:]
		} else {
			path = prefix
		}
		out = append(out, FieldError{Field: path, Message: messageFor(fe)})
	}
	return out
}

var fieldMessages = map[string]string{
	"customerName":      "Name is required",
	"email":             "Invalid email address",
	"phone":             "Valid phone number required",
	"address":           "Address is required",
	"city":              "City is required",
	"state":             "State is required",
	"zip":               "Valid ZIP code required",
	"customerSignature": "Signature required",
	"paymentLink":       "Invalid URL",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "currency":
		return "Invalid amount"
	case "months":
		return "Enter a valid number"
	case "oneof":
		return "Invalid selection"
	case "interior_rooms", "interior_options", "exterior_elements", "handyman_services":
		return "Unknown option"
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid URL"
	default:
		return "Invalid value"
	}
}
