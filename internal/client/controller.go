// Package client implements the alert controller: it owns current-location
// state, orchestrates geolocation acquisition, drives the map view, manages
// the local contact roster, and runs the SOS confirmation flow.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"safesignal/internal/client/geo"
	"safesignal/internal/client/roster"
	"safesignal/internal/domain"
)

// Map zoom levels: the initial overview and the close-in level used after a
// successful fix.
const (
	initialZoom = 14
	closeZoom   = 17
)

const liveMarkerPopup = "<b>YOU ARE HERE</b><br>Live GPS"

// Config carries the controller's tunables.
type Config struct {
	// Fallback is the coordinate used when no real fix is available.
	Fallback domain.Coordinate
	// FixTimeout bounds a single acquisition.
	FixTimeout time.Duration
	// DeviceInfo is reported with alerts posted to the alert service.
	DeviceInfo string
}

// Controller holds all client state explicitly; there are no ambient
// globals. It is single-threaded: callers dispatch one event at a time.
type Controller struct {
	cfg     Config
	logger  *slog.Logger
	geo     geo.Geolocator
	mapView MapView
	display Display
	roster  *roster.Manager
	alerts  AlertAPI // optional; nil when the service is not wired

	current          domain.Coordinate
	confirmationOpen bool
}

// New constructs a controller positioned at the fallback coordinate. The
// alerts client may be nil when the alert service is not reachable.
func New(cfg Config, g geo.Geolocator, mapView MapView, display Display, r *roster.Manager, alerts AlertAPI, logger *slog.Logger) *Controller {
	return &Controller{
		cfg:     cfg,
		logger:  logger,
		geo:     g,
		mapView: mapView,
		display: display,
		roster:  r,
		alerts:  alerts,
		current: cfg.Fallback,
	}
}

// Start loads the roster and renders the initial map view at the fallback
// coordinate.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.roster.Load(ctx); err != nil {
		return fmt.Errorf("start controller: %w", err)
	}
	c.mapView.SetView(c.current.Latitude, c.current.Longitude, initialZoom)
	c.mapView.PlaceMarker(c.current.Latitude, c.current.Longitude, "<b>Demo Location</b>")
	c.display.RenderRoster(c.roster.Render())
	return nil
}

// Handle dispatches a single user event. Validation failures surface as a
// Display notice and return the underlying error; they never mutate state.
func (c *Controller) Handle(ctx context.Context, event Event) error {
	switch e := event.(type) {
	case TriggerSOS:
		c.TriggerEmergency(ctx)
	case RefreshLocation:
		c.AcquireLocation(ctx, false)
	case AddContact:
		if err := c.roster.Add(ctx, e.Name, e.Phone); err != nil {
			c.display.Notice("Please enter both name and phone.")
			return err
		}
		c.display.RenderRoster(c.roster.Render())
	case DeleteContact:
		if err := c.roster.DeleteAt(ctx, e.Index, e.Confirmed); err != nil {
			return err
		}
		c.display.RenderRoster(c.roster.Render())
	case DismissConfirmation:
		c.DismissConfirmation()
	case SimulateCall:
		c.SimulateEmergencyCall()
	}
	return nil
}

// Current returns the coordinate the controller would report right now.
func (c *Controller) Current() domain.Coordinate {
	return c.current
}

// TriggerEmergency gives brief press feedback then acquires a fresh fix for
// the emergency flow.
func (c *Controller) TriggerEmergency(ctx context.Context) {
	c.display.Notice("SOS pressed")
	c.AcquireLocation(ctx, true)
}

// AcquireLocation requests a single high-accuracy fix with a bounded wait
// and no cached position. Acquisition failure never blocks the emergency
// flow: when isEmergency is set the confirmation view is shown with the last
// known coordinate. Only a platform without geolocation stops the flow.
func (c *Controller) AcquireLocation(ctx context.Context, isEmergency bool) {
	if c.geo == nil {
		c.display.Notice(geo.Describe(geo.ErrUnsupported))
		return
	}

	fix, err := c.geo.RequestFix(ctx, geo.Options{
		HighAccuracy: true,
		Timeout:      c.cfg.FixTimeout,
		MaximumAge:   0,
	})
	if err != nil {
		if errors.Is(err, geo.ErrUnsupported) {
			c.display.Notice(geo.Describe(err))
			return
		}
		c.logger.WarnContext(ctx, "location acquisition failed", "error", err.Error())
		c.display.Notice(geo.Describe(err) + " Using fallback coordinates.")
		if isEmergency {
			c.ShowConfirmation(ctx)
		}
		return
	}

	c.current = fix.Coordinate
	c.display.SetLocationText(fix.Coordinate.Format(5))
	c.display.SetAccuracyBadge(fmt.Sprintf("±%dm accurate", int(math.Round(fix.Accuracy))))
	c.mapView.SetView(fix.Coordinate.Latitude, fix.Coordinate.Longitude, closeZoom)
	c.mapView.RemoveMarker()
	c.mapView.PlaceMarker(fix.Coordinate.Latitude, fix.Coordinate.Longitude, liveMarkerPopup)

	if isEmergency {
		c.ShowConfirmation(ctx)
	}
}

// ShowConfirmation populates and shows the confirmation view from current
// state, then reports the alert to the alert service when one is wired. A
// reporting failure is a notice, never a block: the view is already visible.
func (c *Controller) ShowConfirmation(ctx context.Context) {
	now := time.Now()
	view := Confirmation{
		Timestamp: now.Format("15:04:05 • 02 Jan 2006"),
		Latitude:  fmt.Sprintf("%.6f", c.current.Latitude),
		Longitude: fmt.Sprintf("%.6f", c.current.Longitude),
	}
	for _, contact := range c.roster.Contacts() {
		view.Roster = append(view.Roster, RosterEntry{Name: contact.Name, Phone: contact.Phone})
	}

	c.confirmationOpen = true
	c.display.ShowConfirmation(view)

	if c.alerts == nil {
		return
	}
	ack, err := c.alerts.Send(ctx, c.current, c.cfg.DeviceInfo)
	if err != nil {
		c.logger.WarnContext(ctx, "alert report failed", "error", err.Error())
		c.display.Notice("Could not reach alert service; alert recorded locally only.")
		return
	}
	c.display.Notice(ack.Message)
}

// DismissConfirmation hides the view. Idempotent.
func (c *Controller) DismissConfirmation() {
	if !c.confirmationOpen {
		return
	}
	c.confirmationOpen = false
	c.display.HideConfirmation()
}

// SimulateEmergencyCall surfaces the simulated-call notice then dismisses
// the confirmation view.
func (c *Controller) SimulateEmergencyCall() {
	c.display.Notice("SIMULATED CALL TO 999. In a real deployment this would connect to emergency services with GPS already sent.")
	c.DismissConfirmation()
}
