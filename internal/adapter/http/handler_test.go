package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockTraffickingUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockTraffickingUseCase(t)
	return svc, NewHandler(svc, slog.New(slog.DiscardHandler)).Router()
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestBatchSingleSheet(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		RunSheet(mock.Anything, "campaigns").
		Return(domain.BatchSummary{Sheet: domain.SheetCampaigns, RunID: "r1", Submitted: 3, Skipped: 1}, nil).
		Once()

	rec := serve(h, http.MethodPost, "/api/v1/batches/campaigns")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp batchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Batches, 1)
	assert.Equal(t, 3, resp.Batches[0].Submitted)
	assert.Empty(t, resp.Error)
}

func TestBatchAll(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		RunAll(mock.Anything).
		Return([]domain.BatchSummary{{Sheet: domain.SheetLandingPages}, {Sheet: domain.SheetCampaigns}}, nil).
		Once()

	rec := serve(h, http.MethodPost, "/api/v1/batches/ALL")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBatchRowErrorIsUnprocessable(t *testing.T) {
	svc, h := newTestHandler(t)
	rowErr := &domain.RowError{Sheet: domain.SheetAds, Row: 4, Err: errors.New("quota exceeded")}
	svc.EXPECT().
		RunSheet(mock.Anything, "ads").
		Return(domain.BatchSummary{Sheet: domain.SheetAds, Submitted: 2}, rowErr).
		Once()

	rec := serve(h, http.MethodPost, "/api/v1/batches/ads")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp batchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Batches[0].Submitted)
	assert.Contains(t, resp.Error, "Ads row 4")
}

func TestBatchUnknownSheet(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		RunSheet(mock.Anything, "budgets").
		Return(domain.BatchSummary{}, domain.ErrUnknownSheet).
		Once()

	rec := serve(h, http.MethodPost, "/api/v1/batches/budgets")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().List(mock.Anything, "sites").Return(12, nil).Once()

	rec := serve(h, http.MethodPost, "/api/v1/lists/sites")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, listResponse{Kind: "sites", Count: 12}, resp)
}

func TestRunsLimit(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Runs(mock.Anything, 5).Return(nil, nil).Once()
	svc.EXPECT().Runs(mock.Anything, maxRunsLimit).Return([]domain.Run{{ID: "r1"}}, nil).Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/runs?limit=100000")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/runs?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
