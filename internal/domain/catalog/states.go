package catalog

// US states for the customer address dropdown.
var USStates = []Option{
	{ID: "AL", Label: "Alabama"},
	{ID: "AK", Label: "Alaska"},
	{ID: "AZ", Label: "Arizona"},
	{ID: "AR", Label: "Arkansas"},
	{ID: "CA", Label: "California"},
	{ID: "CO", Label: "Colorado"},
	{ID: "CT", Label: "Connecticut"},
	{ID: "DE", Label: "Delaware"},
	{ID: "FL", Label: "Florida"},
	{ID: "GA", Label: "Georgia"},
	{ID: "HI", Label: "Hawaii"},
	{ID: "ID", Label: "Idaho"},
	{ID: "IL", Label: "Illinois"},
	{ID: "IN", Label: "Indiana"},
	{ID: "IA", Label: "Iowa"},
	{ID: "KS", Label: "Kansas"},
	{ID: "KY", Label: "Kentucky"},
	{ID: "LA", Label: "Louisiana"},
	{ID: "ME", Label: "Maine"},
	{ID: "MD", Label: "Maryland"},
	{ID: "MA", Label: "Massachusetts"},
	{ID: "MI", Label: "Michigan"},
	{ID: "MN", Label: "Minnesota"},
	{ID: "MS", Label: "Mississippi"},
	{ID: "MO", Label: "Missouri"},
	{ID: "MT", Label: "Montana"},
	{ID: "NE", Label: "Nebraska"},
	{ID: "NV", Label: "Nevada"},
	{ID: "NH", Label: "New Hampshire"},
	{ID: "NJ", Label: "New Jersey"},
	{ID: "NM", Label: "New Mexico"},
	{ID: "NY", Label: "New York"},
	{ID: "NC", Label: "North Carolina"},
	{ID: "ND", Label: "North Dakota"},
	{ID: "OH", Label: "Ohio"},
	{ID: "OK", Label: "Oklahoma"},
	{ID: "OR", Label: "Oregon"},
	{ID: "PA", Label: "Pennsylvania"},
	{ID: "RI", Label: "Rhode Island"},
	{ID: "SC", Label: "South Carolina"},
	{ID: "SD", Label: "South Dakota"},
	{ID: "TN", Label: "Tennessee"},
	{ID: "TX", Label: "Texas"},
	{ID: "UT", Label: "Utah"},
	{ID: "VT", Label: "Vermont"},
	{ID: "VA", Label: "Virginia"},
	{ID: "WA", Label: "Washington"},
	{ID: "WV", Label: "West Virginia"},
	{ID: "WI", Label: "Wisconsin"},
	{ID: "WY", Label: "Wyoming"},
	{ID: "DC", Label: "District of Columbia"},
}
