package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorley-dev/sales-insights-api/pkg/ai"
	"github.com/jmorley-dev/sales-insights-api/pkg/global"
	"github.com/jmorley-dev/sales-insights-api/pkg/models"
)

type stubInsightService struct {
	insight *ai.Insight
	err     error

	question string
	days     int
}

func (s *stubInsightService) Analyze(ctx context.Context, question string, days int) (*ai.Insight, error) {
	s.question = question
	s.days = days
	return s.insight, s.err
}

type stubRanker struct {
	report []models.TopProduct
	err    error

	days  int
	limit int
}

func (s *stubRanker) TopProducts(ctx context.Context, days, limit int) ([]models.TopProduct, error) {
	s.days = days
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.report) {
		return s.report[:limit], nil
	}
	return s.report, nil
}

func setupRouter(t *testing.T, svc InsightService, store ProductRanker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Point the report cache at a closed port so every lookup is a miss, even
	// when a local Redis happens to be running.
	t.Setenv("REDIS_ADDRESS", "localhost:1")
	InitEngine()
	InitializeRoutes(svc, store)
	return Router
}

func doRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) global.APIResponse {
	t.Helper()
	var resp global.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSalesInsightsRejectsMissingQuestion(t *testing.T) {
	svc := &stubInsightService{}
	r := setupRouter(t, svc, &stubRanker{})

	w := doRequest(r, "/api/insights/sales")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "question", resp.Errors[0].Field)
	assert.Empty(t, svc.question)
}

func TestSalesInsightsRejectsShortAndLongQuestions(t *testing.T) {
	r := setupRouter(t, &stubInsightService{}, &stubRanker{})

	w := doRequest(r, "/api/insights/sales?question=ab")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	w = doRequest(r, "/api/insights/sales?question="+string(long))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesInsightsRejectsOutOfRangeDays(t *testing.T) {
	r := setupRouter(t, &stubInsightService{}, &stubRanker{})

	for _, days := range []string{"0", "-3", "366", "abc"} {
		w := doRequest(r, "/api/insights/sales?question=What+sold+best%3F&days="+days)
		assert.Equal(t, http.StatusBadRequest, w.Code, "days=%s should be rejected", days)
	}
}

func TestSalesInsightsReturnsAnswerAndContext(t *testing.T) {
	svc := &stubInsightService{insight: &ai.Insight{
		Answer:      "Widget sold best.",
		ContextUsed: "- Widget: 3 units ($30.00) at 15/01/2024 10:30",
	}}
	r := setupRouter(t, svc, &stubRanker{})

	w := doRequest(r, "/api/insights/sales?question=What+sold+best%3F&days=7")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "What sold best?", svc.question)
	assert.Equal(t, 7, svc.days)
	assert.Contains(t, w.Body.String(), "Widget sold best.")
	assert.Contains(t, w.Body.String(), "context_used")
}

func TestSalesInsightsDefaultsToSevenDays(t *testing.T) {
	svc := &stubInsightService{insight: &ai.Insight{Answer: "ok"}}
	r := setupRouter(t, svc, &stubRanker{})

	w := doRequest(r, "/api/insights/sales?question=What+sold+best%3F")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, svc.days)
}

func TestSalesInsightsMapsFailureToGenericError(t *testing.T) {
	svc := &stubInsightService{err: &global.OperationalError{
		Message: "failed to generate sales insight",
		Cause:   errors.New("connection refused"),
	}}
	r := setupRouter(t, svc, &stubRanker{})

	w := doRequest(r, "/api/insights/sales?question=What+sold+best%3F")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	// The cause never reaches the caller
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestTopProductsHonorsLimit(t *testing.T) {
	ranker := &stubRanker{report: []models.TopProduct{
		{Product: "A", TotalSold: 10, Revenue: 100.00},
		{Product: "B", TotalSold: 5, Revenue: 50.00},
	}}
	r := setupRouter(t, &stubInsightService{}, ranker)

	w := doRequest(r, "/api/analytics/top-products?days=30&limit=1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, ranker.days)
	assert.Equal(t, 1, ranker.limit)

	resp := decodeEnvelope(t, w)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var report []models.TopProduct
	require.NoError(t, json.Unmarshal(raw, &report))
	require.Len(t, report, 1)
	assert.Equal(t, "A", report[0].Product)
	assert.Equal(t, 10, report[0].TotalSold)
	assert.Equal(t, 100.00, report[0].Revenue)
}

func TestTopProductsUsesDefaults(t *testing.T) {
	ranker := &stubRanker{}
	r := setupRouter(t, &stubInsightService{}, ranker)

	w := doRequest(r, "/api/analytics/top-products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, ranker.days)
	assert.Equal(t, 5, ranker.limit)
}

func TestTopProductsRejectsOutOfRangeParameters(t *testing.T) {
	r := setupRouter(t, &stubInsightService{}, &stubRanker{})

	for _, path := range []string{
		"/api/analytics/top-products?days=0",
		"/api/analytics/top-products?days=400",
		"/api/analytics/top-products?limit=0",
		"/api/analytics/top-products?limit=21",
		"/api/analytics/top-products?limit=abc",
	} {
		w := doRequest(r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s should be rejected", path)
	}
}

func TestTopProductsFailureIsNotAnEmptyList(t *testing.T) {
	ranker := &stubRanker{err: &global.OperationalError{
		Message: "failed to fetch top products data",
		Cause:   errors.New("connection refused"),
	}}
	r := setupRouter(t, &stubInsightService{}, ranker)

	w := doRequest(r, "/api/analytics/top-products")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
}
