package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesignal/pkg/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))

	testutil.AssertStatusOK(t, rr)
	resp := testutil.UnmarshalResponse[map[string]string](t, rr)
	assert.Equal(t, "ok", (*resp)["status"])

	_, err := time.Parse(time.RFC3339, (*resp)["time"])
	require.NoError(t, err)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))

	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestUnknownRouteIs404(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nope"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
