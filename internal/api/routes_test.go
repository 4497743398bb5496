package api

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"travelplanner/internal/api/controllers"
	"travelplanner/internal/api/validators"
	"travelplanner/internal/catalog"
	"travelplanner/internal/planner"
	"travelplanner/internal/services"
	"travelplanner/pkg/memcache"
	"travelplanner/pkg/metrics"
	"travelplanner/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T, limiter *middleware.ClientRateLimiter) *testServer {
	t.Helper()
	require.NoError(t, validators.RegisterWithGin())

	logger := zaptest.NewLogger(t)
	m := metrics.New()
	newRand := func() services.Rand { return rand.New(rand.NewPCG(1, 2)) }

	itineraries := services.NewItineraryService(catalog.Static(), 0, newRand, m, logger)
	sessions := memcache.NewTTLStore[planner.Session](time.Minute)
	plannerSvc := services.NewPlannerService(sessions, itineraries, m, logger)
	shareSvc := services.NewShareService("test-secret", "http://planner.test", time.Hour, m, logger)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	RegisterRoutes(r, Handlers{
		Health:    controllers.NewHealthController("static"),
		Tags:      controllers.NewTagController(services.NewTagService()),
		Itinerary: controllers.NewItineraryController(itineraries),
		Planner:   controllers.NewPlannerController(plannerSvc, shareSvc),
		Share:     controllers.NewShareController(shareSvc),
	}, limiter, m.Handler())

	return &testServer{t: t, engine: r}
}

func (s *testServer) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

var kyotoForm = map[string]any{
	"city":      "Kyoto",
	"days":      2,
	"budget":    4000,
	"interests": []string{"heritage", "food"},
}

func TestHealthAndTags(t *testing.T) {
	s := newTestServer(t, nil)

	w, env := s.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, w.Header().Get(middleware.TraceIDHeader), env.TraceID)

	w, env = s.do(http.MethodGet, "/tags", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tags []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Icon  string `json:"icon"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	require.Len(t, tags, 8)
	assert.Equal(t, "heritage", tags[0].ID)

	w, env = s.do(http.MethodGet, "/form/defaults", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var defaults struct {
		Days   int `json:"days"`
		Budget int `json:"budget"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &defaults))
	assert.Equal(t, 3, defaults.Days)
	assert.Equal(t, 5000, defaults.Budget)
}

func TestGenerateItinerary(t *testing.T) {
	s := newTestServer(t, nil)

	w, env := s.do(http.MethodPost, "/itineraries", kyotoForm)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var it struct {
		City           string  `json:"city"`
		EstimatedTotal float64 `json:"estimatedTotal"`
		Days           []struct {
			Day        int               `json:"day"`
			Activities []json.RawMessage `json:"activities"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &it))
	assert.Equal(t, "Kyoto", it.City)
	require.Len(t, it.Days, 2)
	assert.Equal(t, 1, it.Days[0].Day)
	assert.LessOrEqual(t, it.EstimatedTotal, 4000.0)
}

func TestGenerateItinerary_RejectsBadForms(t *testing.T) {
	s := newTestServer(t, nil)

	cases := map[string]map[string]any{
		"blank city":      {"city": "  ", "days": 2, "budget": 4000, "interests": []string{"food"}},
		"too many days":   {"city": "Rome", "days": 9, "budget": 4000, "interests": []string{"food"}},
		"budget off step": {"city": "Rome", "days": 2, "budget": 4200, "interests": []string{"food"}},
		"no interests":    {"city": "Rome", "days": 2, "budget": 4000, "interests": []string{}},
		"unknown tag":     {"city": "Rome", "days": 2, "budget": 4000, "interests": []string{"skiing"}},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w, env := s.do(http.MethodPost, "/itineraries", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", env.Status)
			assert.NotEmpty(t, env.Message)
		})
	}
}

type sessionView struct {
	ID        string          `json:"id"`
	State     string          `json:"state"`
	Itinerary json.RawMessage `json:"itinerary"`
}

// decodeSession unmarshals into a fresh value so fields absent from the
// payload stay zero.
func decodeSession(t *testing.T, env envelope) sessionView {
	t.Helper()
	var session sessionView
	require.NoError(t, json.Unmarshal(env.Data, &session))
	return session
}

func TestSessionFlow(t *testing.T) {
	s := newTestServer(t, nil)

	w, env := s.do(http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	session := decodeSession(t, env)
	assert.Equal(t, "hero", session.State)
	id := session.ID

	w, _ = s.do(http.MethodPost, "/sessions/"+id+"/submit", kyotoForm)
	assert.Equal(t, http.StatusConflict, w.Code, "submit is not valid on the hero screen")

	w, _ = s.do(http.MethodGet, "/sessions/"+id+"/download", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = s.do(http.MethodPost, "/sessions/"+id+"/get-started", nil)
	require.Equal(t, http.StatusOK, w.Code)
	session = decodeSession(t, env)
	assert.Equal(t, "form", session.State)

	w, env = s.do(http.MethodPost, "/sessions/"+id+"/submit", kyotoForm)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	session = decodeSession(t, env)
	assert.Equal(t, "results", session.State)
	assert.NotEmpty(t, session.Itinerary)

	w, env = s.do(http.MethodGet, "/sessions/"+id+"/download", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, string(env.Data), "Coming Soon!")

	w, env = s.do(http.MethodPost, "/sessions/"+id+"/share", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var share struct {
		Payload struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &share))
	assert.Equal(t, "Kyoto Travel Itinerary", share.Payload.Title)
	require.True(t, strings.HasPrefix(share.Payload.URL, "http://planner.test/shared/"))

	w, env = s.do(http.MethodGet, strings.TrimPrefix(share.Payload.URL, "http://planner.test"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"city":"Kyoto"`)

	w, env = s.do(http.MethodPost, "/sessions/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	session = decodeSession(t, env)
	assert.Equal(t, "form", session.State)
	assert.Empty(t, session.Itinerary, "back discards the itinerary")

	w, env = s.do(http.MethodGet, "/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeSession(t, env).Itinerary)

	w, _ = s.do(http.MethodPost, "/sessions/"+id+"/share", nil)
	assert.Equal(t, http.StatusConflict, w.Code, "nothing to share after going back")
}

func TestSessionErrors(t *testing.T) {
	s := newTestServer(t, nil)

	w, _ := s.do(http.MethodGet, "/sessions/8f14e45f-ceea-467f-a0e6-0b0a8d5f7b11", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodGet, "/sessions/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/shared/not-a-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerationIsRateLimited(t *testing.T) {
	s := newTestServer(t, middleware.NewClientRateLimiter(1, 1))

	w, _ := s.do(http.MethodPost, "/itineraries", kyotoForm)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodPost, "/itineraries", kyotoForm)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w, _ = s.do(http.MethodGet, "/tags", nil)
	assert.Equal(t, http.StatusOK, w.Code, "read endpoints are not limited")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	s.do(http.MethodPost, "/itineraries", kyotoForm)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "travelplanner_itineraries_generated_total 1")
}
