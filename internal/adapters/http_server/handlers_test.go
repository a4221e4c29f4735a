package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	server "wanderlens/internal/adapters/http_server"
	"wanderlens/internal/adapters/memcache"
	"wanderlens/internal/app"
	"wanderlens/internal/domain"
	"wanderlens/internal/fixtures"
)

func newTestServer(t *testing.T, rps int) *httptest.Server {
	t.Helper()
	svc := app.NewPlanService(fixtures.New(), memcache.New(0), app.Options{
		CacheTTL:      time.Minute,
		PublicBaseURL: "https://wl.example",
	})
	srv := server.New(server.Options{CORSOrigins: []string{"https://wl.example"}, RateLimitRPS: rps})
	srv.MountHandlers(&server.Handlers{S: svc})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string, hdr map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestAnalyzeThenPlan(t *testing.T) {
	ts := newTestServer(t, 0)

	resp := postJSON(t, ts.URL+"/v1/analyze", domain.AnalyzeRequest{
		Media:       []domain.MediaFile{{Name: "a.jpg", Type: "image/jpeg", Size: 10}},
		Destination: "tokyo",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decodeBody[domain.AnalysisResult](t, resp)
	assert.Equal(t, domain.Tokyo, a.Destination)

	resp = postJSON(t, ts.URL+"/v1/plans", map[string]any{
		"analysis":    a,
		"constraints": domain.PlanningConstraints{Budget: domain.BudgetTierMidRange},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decodeBody[domain.PlanResult](t, resp)
	assert.Equal(t, domain.Tokyo, p.Destination)
	require.Len(t, p.Bundles, 2)
	assert.False(t, p.Relaxed)
}

func TestPlan_ErrorsAreProblems(t *testing.T) {
	ts := newTestServer(t, 0)

	resp, err := http.Post(ts.URL+"/v1/plans", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	resp2 := postJSON(t, ts.URL+"/v1/plans", map[string]any{"constraints": map[string]any{"budget": "free"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp2.StatusCode)
	pr := decodeBody[map[string]any](t, resp2)
	assert.EqualValues(t, 422, pr["status"])
}

func TestRefine(t *testing.T) {
	ts := newTestServer(t, 0)

	resp := postJSON(t, ts.URL+"/v1/refine", map[string]any{
		"message": "Accessible stays",
		"bundles": fixtures.Group(domain.Santorini),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	r := decodeBody[domain.RefineResult](t, resp)
	assert.Equal(t, "accessible", r.Mode)
	assert.Equal(t, "alt_accessible_b1", r.Bundles[0].ID)

	resp = postJSON(t, ts.URL+"/v1/refine", map[string]any{"message": "", "bundles": fixtures.Group(domain.Santorini)})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestBundlesAndAlternatives(t *testing.T) {
	ts := newTestServer(t, 0)

	resp := get(t, ts.URL+"/v1/bundles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ids := decodeBody[map[string][]string](t, resp)
	assert.Equal(t, []string{"b1", "b2", "b3", "t1", "t2", "ba1"}, ids["ids"])

	resp = get(t, ts.URL+"/v1/bundles/ba1/alternatives?mode=luxury", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	alt := decodeBody[domain.Bundle](t, resp)
	assert.Equal(t, "alt_luxury_ba1", alt.ID)

	assert.Equal(t, http.StatusBadRequest, get(t, ts.URL+"/v1/bundles/ba1/alternatives", nil).StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, ts.URL+"/v1/bundles/ba1/alternatives?mode=x", nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, get(t, ts.URL+"/v1/bundles/zz/alternatives?mode=eco", nil).StatusCode)
}

func TestBookingRoundTrip(t *testing.T) {
	ts := newTestServer(t, 0)

	resp := postJSON(t, ts.URL+"/v1/bookings", map[string]string{"bundleId": "t1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bk := decodeBody[domain.Booking](t, resp)
	assert.True(t, strings.HasPrefix(bk.Ref, "ref_"))
	assert.True(t, strings.HasSuffix(bk.Ref, "_t1"))
	assert.Equal(t, "/v1/bookings/"+bk.Ref, resp.Header.Get("Location"))

	resp = get(t, ts.URL+resp.Header.Get("Location"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decodeBody[domain.BookingView](t, resp)
	assert.Equal(t, "t1", v.Bundle.ID)
	assert.False(t, v.Fallback)

	assert.Equal(t, http.StatusUnprocessableEntity, get(t, ts.URL+"/v1/bookings/garbage", nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, postJSON(t, ts.URL+"/v1/bookings", map[string]string{"bundleId": "nope"}).StatusCode)
}

func TestShare_ETagAndFallback(t *testing.T) {
	ts := newTestServer(t, 0)

	resp := get(t, ts.URL+"/v1/share/b2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	v := decodeBody[domain.ShareView](t, resp)
	assert.Equal(t, "b2", v.Bundle.ID)
	assert.Equal(t, "https://wl.example/share/b2/", v.URL)

	resp = get(t, ts.URL+"/v1/share/b2", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp = get(t, ts.URL+"/v1/share/unknown", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decodeBody[domain.ShareView](t, resp)
	assert.Equal(t, "b1", v.Bundle.ID)
	assert.True(t, v.Fallback)
}

func TestItineraryPDF(t *testing.T) {
	ts := newTestServer(t, 0)

	resp := get(t, ts.URL+"/v1/share/t2/itinerary.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "wanderlens-t2.pdf")
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, 0)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/v1/plans", nil)
	req.Header.Set("Origin", "https://wl.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "https://wl.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, 1) // burst of 2

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		codes = append(codes, get(t, ts.URL+"/v1/bundles", nil).StatusCode)
	}
	assert.Contains(t, codes, http.StatusTooManyRequests)
	assert.Equal(t, http.StatusOK, codes[0])

	// probes are never limited
	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusOK, get(t, ts.URL+"/healthz", nil).StatusCode)
	}
}

func TestRateLimit_IgnoresRotatingForwardedFor(t *testing.T) {
	ts := newTestServer(t, 1) // burst of 2

	limited := false
	for i := 0; i < 5; i++ {
		resp := get(t, ts.URL+"/v1/bundles", map[string]string{
			"X-Forwarded-For": fmt.Sprintf("198.51.100.%d", i+1),
			"X-Real-IP":       fmt.Sprintf("192.0.2.%d", i+1),
		})
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = true
		}
	}
	assert.True(t, limited, "spoofed forwarding headers must not mint new buckets")
}
