package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fundmyfuture/internal/core/domain"
	"fundmyfuture/internal/core/port"
)

// stubLedger satisfies port.Ledger through the embedded interface and
// overrides only what a test exercises.
type stubLedger struct {
	port.Ledger
	getCalls int
}

func (s *stubLedger) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	s.getCalls++
	return &domain.Campaign{
		ID:      id,
		Goal:    domain.NewMoney(1000, "ZAR"),
		Current: domain.NewMoney(0, "ZAR"),
		State:   domain.CampaignActive,
	}, nil
}

func TestCampaignIDValidation(t *testing.T) {
	svc := &stubLedger{}
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), "")

	t.Run("non-uuid id is a 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/not-a-uuid", nil)
		h.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		// never reaches the service, so never reaches Postgres either
		assert.Zero(t, svc.getCalls)
	})

	t.Run("uuid id resolves", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/5a2b6c8e-1f5d-4e5b-9d7a-0c1e2f3a4b5c", nil)
		h.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, svc.getCalls)
	})
}

func TestUpdateCampaignRequiresIdentity(t *testing.T) {
	h := NewHandler(&stubLedger{}, slog.New(slog.NewTextHandler(io.Discard, nil)), "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		"/api/v1/campaigns/5a2b6c8e-1f5d-4e5b-9d7a-0c1e2f3a4b5c",
		strings.NewReader(`{"title":"new title"}`))
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
