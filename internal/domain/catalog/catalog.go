package catalog

// Option is a selectable entry in one of the static form catalogs.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Interior room types offered on the interior painting step.
var InteriorRooms = []Option{
	{ID: "livingRoom", Label: "Living Room"},
	{ID: "bedrooms", Label: "Bedrooms"},
	{ID: "bathroom", Label: "Bathroom"},
	{ID: "kitchen", Label: "Kitchen"},
	{ID: "diningRoom", Label: "Dining Room"},
	{ID: "hallway", Label: "Hallway"},
	{ID: "closet", Label: "Closet"},
	{ID: "laundryRoom", Label: "Laundry Room"},
	{ID: "office", Label: "Office"},
	{ID: "basement", Label: "Basement"},
	{ID: "garage", Label: "Garage"},
	{ID: "other", Label: "Other"},
}

// Interior painting options (surfaces and treatments).
var InteriorOptions = []Option{
	{ID: "walls", Label: "Walls"},
	{ID: "ceilings", Label: "Ceilings"},
	{ID: "trim", Label: "Trim"},
	{ID: "doors", Label: "Doors"},
	{ID: "windows", Label: "Windows"},
	{ID: "cabinets", Label: "Cabinets"},
	{ID: "crownMolding", Label: "Crown Molding"},
	{ID: "baseboards", Label: "Baseboards"},
	{ID: "wallpaper", Label: "Wallpaper Removal"},
	{ID: "stucco", Label: "Stucco"},
	{ID: "popcornCeiling", Label: "Popcorn Ceiling Removal"},
}

// Exterior elements offered on the exterior painting step.
var ExteriorElements = []Option{
	{ID: "walls", Label: "Walls"},
	{ID: "trim", Label: "Trim"},
	{ID: "doors", Label: "Doors"},
	{ID: "windows", Label: "Windows"},
	{ID: "garage", Label: "Garage Door"},
	{ID: "deck", Label: "Deck/Patio"},
	{ID: "fence", Label: "Fence"},
	{ID: "porch", Label: "Porch"},
	{ID: "railings", Label: "Railings"},
	{ID: "shutters", Label: "Shutters"},
	{ID: "gutters", Label: "Gutters"},
	{ID: "other", Label: "Other"},
}

// Handyman services offered on the handyman step.
var HandymanServices = []Option{
	{ID: "drywall", Label: "Drywall Repair"},
	{ID: "flooring", Label: "Flooring"},
	{ID: "tile", Label: "Tile Work"},
	{ID: "carpentry", Label: "Carpentry"},
	{ID: "plumbing", Label: "Plumbing"},
	{ID: "electrical", Label: "Electrical"},
	{ID: "other", Label: "Other"},
}

var PaintBrands = []Option{
	{ID: "sherwinWilliams", Label: "Sherwin Williams"},
	{ID: "benjaminMoore", Label: "Benjamin Moore"},
	{ID: "other", Label: "Other"},
}

var PaintFinishes = []Option{
	{ID: "flat", Label: "Flat"},
	{ID: "eggshell", Label: "Eggshell"},
	{ID: "satin", Label: "Satin"},
	{ID: "semiGloss", Label: "Semi-Gloss"},
	{ID: "highGloss", Label: "High Gloss"},
}

// HasOption reports whether id is a member of the given catalog.
func HasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Label returns the display label for id, or id itself when unknown.
func Label(opts []Option, id string) string {
	for _, o := range opts {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}
