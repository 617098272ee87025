package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"safesignal/internal/client"
	"safesignal/internal/client/geo"
	"safesignal/internal/client/roster"
	"safesignal/internal/domain"
	"safesignal/internal/platform/config"
	"safesignal/internal/platform/logger"
	platformredis "safesignal/internal/platform/redis"
)

// main runs the client alert controller against a terminal display, a
// simulated geolocator, and an optional alert service. Commands:
//
//	sos            trigger the emergency flow
//	loc            refresh the current location
//	add NAME PHONE add an emergency contact
//	del INDEX      delete the contact at INDEX (zero-based)
//	ok             dismiss the confirmation view
//	call           simulate the emergency call
//	quit           exit
func main() {
	cfg := config.ClientFromEnv()
	log := logger.New()
	ctx := context.Background()

	var kv roster.KV = roster.NewInMemoryKV()
	if cfg.RedisURL != "" {
		rc, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			log.Error("redis unavailable", "error", err.Error())
			os.Exit(1)
		}
		defer rc.Close()
		kv = roster.NewRedisKV(rc.Client)
	}

	var alerts client.AlertAPI
	if cfg.AlertAPIBase != "" {
		alerts = client.NewHTTPAlertClient(cfg.AlertAPIBase)
	}

	fallback := domain.Coordinate{Latitude: cfg.FallbackLat, Longitude: cfg.FallbackLon}
	ctrl := client.New(client.Config{
		Fallback:   fallback,
		FixTimeout: cfg.FixTimeout,
		DeviceInfo: "safesignal-cli",
	}, &simulatedGeolocator{origin: fallback}, &terminalMap{}, &terminalDisplay{}, roster.NewManager(kv, log), alerts, log)

	if err := ctrl.Start(ctx); err != nil {
		log.Error("client start failed", "error", err.Error())
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("safesignal client ready (sos, loc, add, del, ok, call, quit)")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		event, quit := parseCommand(scanner.Text())
		if quit {
			return
		}
		if event == nil {
			fmt.Println("unknown command")
			continue
		}
		if err := ctrl.Handle(ctx, event); err != nil {
			log.Warn("event rejected", "error", err.Error())
		}
	}
}

func parseCommand(line string) (client.Event, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	switch fields[0] {
	case "sos":
		return client.TriggerSOS{}, false
	case "loc":
		return client.RefreshLocation{}, false
	case "add":
		if len(fields) < 3 {
			return client.AddContact{}, false
		}
		return client.AddContact{Name: fields[1], Phone: strings.Join(fields[2:], " ")}, false
	case "del":
		index, err := strconv.Atoi(strings.Join(fields[1:], ""))
		if err != nil {
			return nil, false
		}
		return client.DeleteContact{Index: index, Confirmed: true}, false
	case "ok":
		return client.DismissConfirmation{}, false
	case "call":
		return client.SimulateCall{}, false
	case "quit", "exit":
		return nil, true
	}
	return nil, false
}

// simulatedGeolocator produces fixes jittered around an origin, standing in
// for a real positioning source.
type simulatedGeolocator struct {
	origin domain.Coordinate
}

func (g *simulatedGeolocator) RequestFix(ctx context.Context, _ geo.Options) (geo.Fix, error) {
	select {
	case <-ctx.Done():
		return geo.Fix{}, geo.ErrTimeout
	case <-time.After(300 * time.Millisecond):
	}
	return geo.Fix{
		Coordinate: domain.Coordinate{
			Latitude:  g.origin.Latitude + (rand.Float64()-0.5)/1000,
			Longitude: g.origin.Longitude + (rand.Float64()-0.5)/1000,
		},
		Accuracy: 5 + rand.Float64()*20,
	}, nil
}

// terminalMap narrates map operations instead of drawing tiles.
type terminalMap struct{}

func (terminalMap) SetView(lat, lon float64, zoom int) {
	fmt.Printf("[map] centered on %.5f, %.5f (zoom %d)\n", lat, lon, zoom)
}

func (terminalMap) PlaceMarker(lat, lon float64, _ string) {
	fmt.Printf("[map] marker at %.5f, %.5f\n", lat, lon)
}

func (terminalMap) RemoveMarker() {}

// terminalDisplay renders controller output as plain lines.
type terminalDisplay struct{}

func (terminalDisplay) SetLocationText(text string)  { fmt.Println("location:", text) }
func (terminalDisplay) SetAccuracyBadge(text string) { fmt.Println("accuracy:", text) }
func (terminalDisplay) Notice(text string)           { fmt.Println(text) }

func (terminalDisplay) ShowConfirmation(v client.Confirmation) {
	fmt.Println("=== EMERGENCY ALERT SENT ===")
	fmt.Println("time:", v.Timestamp)
	fmt.Printf("position: %s, %s\n", v.Latitude, v.Longitude)
	for _, entry := range v.Roster {
		fmt.Printf("notified: %s (%s)\n", entry.Name, entry.Phone)
	}
}

func (terminalDisplay) HideConfirmation() { fmt.Println("confirmation dismissed") }

func (terminalDisplay) RenderRoster(lines []string) {
	fmt.Println("contacts:")
	for _, line := range lines {
		fmt.Println("  " + line)
	}
}
