package alertlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesignal/internal/domain"
)

func TestAppendCopiesNotifiedSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	notified := []string{"+1-555-0101", "999"}
	record := domain.AlertRecord{
		ID:          1,
		TriggeredAt: time.Now().UTC(),
		Status:      domain.AlertStatusSent,
		Notified:    notified,
	}
	require.NoError(t, store.Append(ctx, record))

	// Mutating the caller's slice after append must not reach the log.
	notified[0] = "tampered"

	log, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "+1-555-0101", log[0].Notified[0])

	// Same on the way out.
	log[0].Notified[1] = "tampered"
	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "999", again[0].Notified[1])
}
