package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safesignal/internal/contacts/handler/mocks"
	"safesignal/internal/domain"
	dErrors "safesignal/pkg/domain-errors"
	"safesignal/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/contacts_mocks.go -package=mocks Service

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(mockService, logger).Register(r)
	return r, mockService
}

func TestHandleList(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().List(gomock.Any()).Return([]domain.Contact{
		{ID: 1, Name: "Mom", Phone: "+1-555-0101", Relation: "Mother"},
		{ID: 2, Name: "Dad", Phone: "+1-555-0102", Relation: "Father"},
	}, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/contacts"))

	testutil.AssertStatusOK(t, rr)
	resp := testutil.UnmarshalResponse[map[string][]domain.Contact](t, rr)
	contacts := (*resp)["contacts"]
	require.Len(t, contacts, 2)
	assert.Equal(t, "Mom", contacts[0].Name)
	assert.Equal(t, int64(2), contacts[1].ID)
}

func TestHandleListEmptyCollection(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/contacts"))

	testutil.AssertStatusOK(t, rr)
	assert.JSONEq(t, `{"contacts":[]}`, rr.Body.String())
}

func TestHandleCreate(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().
		Add(gomock.Any(), domain.Contact{Name: "Aunt Jane", Phone: "+254700000000"}).
		Return(domain.Contact{ID: 3, Name: "Aunt Jane", Phone: "+254700000000"}, nil)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/contacts",
		map[string]string{"name": "Aunt Jane", "phone": "+254700000000"})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusCreated)
	resp := testutil.UnmarshalResponse[struct {
		Success bool           `json:"success"`
		Contact domain.Contact `json:"contact"`
	}](t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Contact.ID)
}

func TestHandleCreateMissingFields(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(domain.Contact{}, dErrors.New(dErrors.CodeBadRequest, "name and phone are required"))

	req := testutil.NewJSONRequest(t, http.MethodPost, "/contacts",
		map[string]string{"name": "Aunt Jane"})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
}

func TestHandleCreateMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/contacts", "{not json")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
}

func TestHandleDelete(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().Remove(gomock.Any(), int64(2)).Return(nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/contacts/2"))

	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "success", true)
}

func TestHandleDeleteUnknownID(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().
		Remove(gomock.Any(), int64(99)).
		Return(dErrors.Newf(dErrors.CodeNotFound, "contact %d not found", 99))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/contacts/99"))

	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestHandleDeleteUnparsableID(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodDelete, "/contacts/abc"))

	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}
