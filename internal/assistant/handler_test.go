package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeway-ai/store-assistant/internal/catalog"
)

type stubService struct {
	reply   *Reply
	err     error
	syncErr error
}

func (s *stubService) ProcessMessage(ctx context.Context, sessionID, message string) (*Reply, error) {
	return s.reply, s.err
}

func (s *stubService) SyncProducts(ctx context.Context) error { return s.syncErr }

func newTestRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(svc))
	return r
}

func TestHandleChat(t *testing.T) {
	svc := &stubService{reply: &Reply{
		Response: "Yeh rahi humari rings!",
		Products: []catalog.Product{{ID: "p1", Name: "Gold Ring"}},
		Action:   ActionDisplayProducts,
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/chat",
		strings.NewReader(`{"session_id":"s1","message":"ring"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got Reply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Yeh rahi humari rings!", got.Response)
	assert.Equal(t, ActionDisplayProducts, got.Action)
	require.Len(t, got.Products, 1)
}

func TestHandleChatBadRequests(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"ring"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChatProcessingError(t *testing.T) {
	router := newTestRouter(&stubService{err: errors.New("provider down")})

	req := httptest.NewRequest(http.MethodPost, "/chat",
		strings.NewReader(`{"session_id":"s1","message":"ring"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleSyncProducts(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/sync-products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)

	router = newTestRouter(&stubService{syncErr: errors.New("db down")})
	req = httptest.NewRequest(http.MethodPost, "/sync-products", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
