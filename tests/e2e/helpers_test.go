//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	categoryrepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/category"
	flyerrepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/flyer"
	profilerepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/profile"
	savedrepo "github.com/thepole/flyerboard-backend/internal/adapter/postgres/saved"
	"github.com/thepole/flyerboard-backend/internal/adapter/postgres/testhelper"
	"github.com/thepole/flyerboard-backend/internal/auth"
	"github.com/thepole/flyerboard-backend/internal/config"
	feedsvc "github.com/thepole/flyerboard-backend/internal/service/feed"
	savedsvc "github.com/thepole/flyerboard-backend/internal/service/saved"
	swipesvc "github.com/thepole/flyerboard-backend/internal/service/swipe"
	"github.com/thepole/flyerboard-backend/internal/transport/rest"
)

const (
	testJWTSecret = "e2e-secret-at-least-32-chars-long!!!"
	testJWTIssuer = "flyerboard-e2e"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	flyers := flyerrepo.New(pool)
	categories := categoryrepo.New(pool)
	savedEdges := savedrepo.New(pool)
	profiles := profilerepo.New(pool)

	feedCfg := config.FeedConfig{
		PageLimit:       50,
		MaxPageLimit:    200,
		SwipeSeedLimit:  20,
		SwipeFetchLimit: 10,
		SwipeLowWater:   3,
	}

	feedService := feedsvc.NewService(logger, flyers, savedEdges, profiles, categories, feedCfg)
	swipeService := swipesvc.NewService(logger, feedService, feedService, savedEdges, feedCfg)
	savedService := savedsvc.NewService(logger, savedEdges)

	verifier := auth.NewVerifier(testJWTSecret, testJWTIssuer)

	router := rest.NewRouter(logger, config.CORSConfig{
		AllowedOrigins:   "*",
		AllowedMethods:   "GET,POST,DELETE,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           86400,
	}, verifier, rest.RouterDeps{
		Feed:     rest.NewFeedHandler(feedService, logger),
		Swipe:    rest.NewSwipeHandler(swipeService, logger),
		Saved:    rest.NewSavedHandler(savedService, logger),
		Calendar: rest.NewCalendarHandler(feedService, logger),
		Health:   rest.NewHealthHandler(pool, "e2e"),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// mintToken issues an access token the way the external auth provider
// would: HS256, subject = user ID, one hour expiry.
func mintToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    testJWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	signed, err := tok.SignedString([]byte(testJWTSecret))
	require.NoError(t, err, "sign token")
	return signed
}

// doJSON sends a request with an optional JSON body and bearer token,
// returning the status code and decoded JSON body (nil for empty bodies).
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return resp.StatusCode, result
}

// flyerIDs extracts the ids from a flyers array in a decoded response.
func flyerIDs(t *testing.T, result map[string]any) []string {
	t.Helper()

	flyers, ok := result["flyers"].([]any)
	require.True(t, ok, "expected flyers array in response")

	ids := make([]string, 0, len(flyers))
	for _, f := range flyers {
		m, ok := f.(map[string]any)
		require.True(t, ok, "expected flyer object")
		id, ok := m["id"].(string)
		require.True(t, ok, "expected id string")
		ids = append(ids, id)
	}
	return ids
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
