package catalog

// Step is one screen of the estimate wizard.
type Step struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Step indices. Order matters: the wizard walks these top to bottom and
// the index is what completion maps and jump requests refer to.
const (
	StepCustomerDetails = iota
	StepInteriorPainting
	StepExteriorPainting
	StepHandymanServices
	StepPaintSelection
	StepPaymentDetails
	StepWarranty
	StepImages
	StepReview
)

var FormSteps = []Step{
	{ID: "customerDetails", Label: "Customer Details"},
	{ID: "interiorPainting", Label: "Interior Painting"},
	{ID: "exteriorPainting", Label: "Exterior Painting"},
	{ID: "handymanServices", Label: "Handyman Services"},
	{ID: "paintSelection", Label: "Paint Selection"},
	{ID: "paymentDetails", Label: "Payment Details"},
	{ID: "warranty", Label: "Warranty Information"},
	{ID: "images", Label: "Images"},
	{ID: "review", Label: "Review & Sign"},
}

// StepCount is the number of wizard steps (N). The last index is StepCount-1.
var StepCount = len(FormSteps)

// StepIndex resolves a step id to its index, returning -1 when unknown.
func StepIndex(id string) int {
	for i, s := range FormSteps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
