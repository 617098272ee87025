package client

// MapView is the map-rendering collaborator: a black box exposing view and
// marker operations.
type MapView interface {
	SetView(lat, lon float64, zoom int)
	PlaceMarker(lat, lon float64, popupHTML string)
	RemoveMarker()
}

// RosterEntry is one line of the notified-contacts roster in the
// confirmation view.
type RosterEntry struct {
	Name  string
	Phone string
}

// Confirmation is the populated SOS confirmation view.
type Confirmation struct {
	// Localized trigger timestamp.
	Timestamp string
	// Coordinate at 6-decimal precision.
	Latitude  string
	Longitude string
	Roster    []RosterEntry
}

// Display receives every user-visible update from the controller. Keeping
// rendering behind an interface makes the emergency flow testable without a
// live UI.
type Display interface {
	SetLocationText(text string)
	SetAccuracyBadge(text string)
	Notice(text string)
	ShowConfirmation(view Confirmation)
	HideConfirmation()
	RenderRoster(lines []string)
}
