package alertlog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesignal/internal/domain"
)

type phoneSource struct {
	phones []string
	err    error
}

func (s *phoneSource) Phones(context.Context) ([]string, error) {
	return append([]string{}, s.phones...), s.err
}

type failingNotifier struct{ calls int }

func (n *failingNotifier) Notify(context.Context, domain.AlertRecord) error {
	n.calls++
	return errors.New("transport down")
}

func newTestService(source ContactsSource) (*Service, *InMemoryStore) {
	store := NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, source, nil, logger, nil), store
}

func TestTriggerSnapshotsAllCurrentContacts(t *testing.T) {
	ctx := context.Background()
	source := &phoneSource{phones: []string{"+1-555-0101", "+1-555-0102", "999"}}
	svc, _ := newTestService(source)

	record, err := svc.Trigger(ctx, TriggerInput{})
	require.NoError(t, err)
	assert.Len(t, record.Notified, 3)
	assert.Equal(t, domain.AlertStatusSent, record.Status)
}

func TestSnapshotSurvivesLaterContactEdits(t *testing.T) {
	ctx := context.Background()
	source := &phoneSource{phones: []string{"+1-555-0101", "+1-555-0102"}}
	svc, _ := newTestService(source)

	record, err := svc.Trigger(ctx, TriggerInput{})
	require.NoError(t, err)
	require.Len(t, record.Notified, 2)

	// A contact deleted after ingestion must not alter the past record.
	source.phones = source.phones[:1]

	log, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, []string{"+1-555-0101", "+1-555-0102"}, log[0].Notified)
}

func TestTriggerWithNoContacts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&phoneSource{})

	record, err := svc.Trigger(ctx, TriggerInput{})
	require.NoError(t, err)
	assert.NotNil(t, record.Notified)
	assert.Empty(t, record.Notified)
}

func TestIDsAreStrictlyIncreasingWithinProcess(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&phoneSource{})

	// Freeze the clock so consecutive triggers collide on the millisecond.
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	first, err := svc.Trigger(ctx, TriggerInput{})
	require.NoError(t, err)
	second, err := svc.Trigger(ctx, TriggerInput{})
	require.NoError(t, err)

	assert.Equal(t, frozen.UnixMilli(), first.ID)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestDeviceInfoDefaulted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&phoneSource{})

	record, err := svc.Trigger(ctx, TriggerInput{})
	require.NoError(t, err)
	assert.Equal(t, "Unknown device", record.DeviceInfo)

	record, err = svc.Trigger(ctx, TriggerInput{DeviceInfo: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"})
	require.NoError(t, err)
	assert.Contains(t, record.DeviceInfo, "Mozilla/5.0")
}

func TestNotifierFailureDoesNotFailTrigger(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := &failingNotifier{}
	svc := NewService(store, &phoneSource{phones: []string{"999"}}, notifier, logger, nil)

	record, err := svc.Trigger(ctx, TriggerInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)

	// The record landed in the log despite the transport failure.
	log, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, record.ID, log[0].ID)
}

func TestContactsSourceFailureFailsTrigger(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(&phoneSource{err: errors.New("store offline")})

	_, err := svc.Trigger(ctx, TriggerInput{})
	require.Error(t, err)

	log, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, log, "no record may be appended without a snapshot")
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&phoneSource{})

	var ids []int64
	for range 3 {
		record, err := svc.Trigger(ctx, TriggerInput{})
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	log, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, log, 3)
	for i, r := range log {
		assert.Equal(t, ids[i], r.ID)
	}
}
