package client

// Event is a user action handled by the controller's dispatcher. Events are
// decoupled from rendering: handling one produces state transitions and
// Display calls, never direct UI access.
type Event interface {
	isEvent()
}

// TriggerSOS is the panic action.
type TriggerSOS struct{}

// RefreshLocation requests a non-emergency position update.
type RefreshLocation struct{}

// AddContact appends a roster contact.
type AddContact struct {
	Name  string
	Phone string
}

// DeleteContact removes the roster contact at Index. Confirmed carries the
// user's interactive confirmation; without it the event is a no-op.
type DeleteContact struct {
	Index     int
	Confirmed bool
}

// DismissConfirmation hides the confirmation view.
type DismissConfirmation struct{}

// SimulateCall surfaces the simulated emergency call notice.
type SimulateCall struct{}

func (TriggerSOS) isEvent()          {}
func (RefreshLocation) isEvent()     {}
func (AddContact) isEvent()          {}
func (DeleteContact) isEvent()       {}
func (DismissConfirmation) isEvent() {}
func (SimulateCall) isEvent()        {}
