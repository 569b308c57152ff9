package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/camden-git/moodmatebackend/auth"
	"github.com/camden-git/moodmatebackend/config"
	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/realtime"
	"github.com/camden-git/moodmatebackend/testutil"
)

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router chi.Router
	tokens *auth.TokenManager
	hub    *realtime.Hub
	loc    *time.Location
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:          "test-secret",
		JWTIssuer:          "moodmate-test",
		LoginTokenTTL:      time.Hour,
		RegisterTokenTTL:   7 * 24 * time.Hour,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		DisplayLocation:    config.LoadLocation("Asia/Jakarta"),
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cfg := testConfig()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)
	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	api := NewAPI(db, cfg, tokens, hub)
	r := chi.NewRouter()
	api.Mount(r)
	r.Route("/api", api.Mount)

	return &testServer{t: t, db: db, router: r, tokens: tokens, hub: hub, loc: cfg.DisplayLocation}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) seedUser(email string) (*models.User, string) {
	s.t.Helper()
	user := &models.User{Name: "Ibu", Email: email, Role: "Orang Tua"}
	require.NoError(s.t, user.SetPassword("password123"))
	require.NoError(s.t, s.db.Create(user).Error)
	token, _, err := s.tokens.Issue(user.ID, time.Hour)
	require.NoError(s.t, err)
	return user, token
}

func (s *testServer) seedProfile(userID uint, name string) *models.ChildProfile {
	s.t.Helper()
	profile := &models.ChildProfile{UserID: userID, Name: name, Age: 7, Avatar: 2}
	require.NoError(s.t, s.db.Create(profile).Error)
	return profile
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp APIErrorResponse
	decodeBody(t, rr, &resp)
	return resp.Error
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	userIDs []uint
	events  []realtime.Event
}

func (p *recordingPublisher) Publish(userID uint, event realtime.Event) {
	p.userIDs = append(p.userIDs, userID)
	p.events = append(p.events, event)
}
