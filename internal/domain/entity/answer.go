package entity

// Answer is the outcome of a "show menu" request.
type Answer struct {
	// Menu is nil when nothing is stored for the requested criterion.
	Menu *Menu
	// Criterion describes what was asked for, e.g. "tomorrow (09.01.2024)".
	Criterion string
	// Delivered is set when the request produced new data and the menu was
	// already pushed to the requesting room as a subscriber.
	Delivered bool
}
