package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"safesignal/internal/domain"
)

// AlertAck is the alert service's acknowledgement of an ingested alert.
type AlertAck struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	AlertID  int64    `json:"alertId"`
	Notified []string `json:"notified"`
}

// AlertAPI reports a triggered alert to the alert service.
type AlertAPI interface {
	Send(ctx context.Context, coord domain.Coordinate, deviceInfo string) (AlertAck, error)
}

// HTTPAlertClient posts alerts to the alert service's /alert endpoint.
type HTTPAlertClient struct {
	base string
	http *http.Client
}

func NewHTTPAlertClient(base string) *HTTPAlertClient {
	return &HTTPAlertClient{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPAlertClient) Send(ctx context.Context, coord domain.Coordinate, deviceInfo string) (AlertAck, error) {
	payload, err := json.Marshal(map[string]any{
		"latitude":   coord.Latitude,
		"longitude":  coord.Longitude,
		"deviceInfo": deviceInfo,
	})
	if err != nil {
		return AlertAck{}, fmt.Errorf("encode alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/alert", bytes.NewReader(payload))
	if err != nil {
		return AlertAck{}, fmt.Errorf("build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return AlertAck{}, fmt.Errorf("send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AlertAck{}, fmt.Errorf("send alert: unexpected status %d", resp.StatusCode)
	}

	var ack AlertAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return AlertAck{}, fmt.Errorf("decode alert ack: %w", err)
	}
	return ack, nil
}
