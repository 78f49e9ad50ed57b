package ai

// IntentResult captures the structured output from the assistant model.
type IntentResult struct {
	// Intent describes the visitor's primary goal: "quote", "availability",
	// or "chat".
	Intent string `json:"intent"`

	// RouteID is the catalog route the visitor is asking about, when the
	// model could map their wording onto one. Nullable for plain chat.
	RouteID *string `json:"route_id,omitempty"`

	// Date (YYYY-MM-DD) and Time (HH:MM) are the requested travel date and
	// pickup time, resolved against the current time in the context map.
	Date *string `json:"date,omitempty"`
	Time *string `json:"time,omitempty"`

	// ServiceType is one of "private", "shared", "premium" when stated.
	ServiceType *string `json:"service_type,omitempty"`

	// Passengers is the stated party size; zero when not mentioned.
	Passengers int `json:"passengers"`

	// Reply is a short, warm response to the visitor, written as the
	// Tima Green Tours concierge.
	Reply string `json:"reply"`
}
