package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/profile-matcher/internal/config"
	"github.com/jonathan/profile-matcher/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(context.Background(), Config{Port: 0}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func testProfile() *types.Profile {
	return &types.Profile{
		ID:       "profile-1",
		FullName: "Jordan Example",
		Skills: []types.Skill{
			{Name: "Python"},
			{Name: "SQL"},
		},
	}
}

func testJob(id string, required ...string) *types.JobPosting {
	return &types.JobPosting{
		ID:             id,
		Title:          "Backend Engineer",
		RequiredSkills: required,
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHandleExtract(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/extract", ExtractRequest{
		Text: "I write Python every day and deploy with Kubernetes.",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Skills []types.Skill `json:"skills"`
		Count  int           `json:"count"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, len(resp.Skills), resp.Count)
	names := make([]string, 0, len(resp.Skills))
	for _, skill := range resp.Skills {
		names = append(names, skill.Name)
	}
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "Kubernetes")
}

func TestHandleExtract_MissingText(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/extract", ExtractRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestHandleExtract_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMatch(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/match", MatchRequest{
		Profile: testProfile(),
		Job:     testJob("job-1", "Python", "Go"),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var score types.MatchScore
	decodeBody(t, w, &score)

	assert.Equal(t, "profile-1", score.ProfileID)
	assert.Equal(t, "job-1", score.JobID)
	assert.Greater(t, score.OverallScore, 0.0)
	assert.Contains(t, score.MatchedSkills, "Python")
	assert.Contains(t, score.MissingSkills, "Go")
}

func TestHandleMatch_MissingJob(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/match", MatchRequest{Profile: testProfile()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMatchBatch_RanksDescending(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/match/batch", MatchBatchRequest{
		Profile: testProfile(),
		Jobs: []*types.JobPosting{
			testJob("miss", "Rust", "C++"),
			testJob("hit", "Python", "SQL"),
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Matches []*types.MatchScore `json:"matches"`
		Count   int                 `json:"count"`
	}
	decodeBody(t, w, &resp)

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "hit", resp.Matches[0].JobID)
	assert.Equal(t, "miss", resp.Matches[1].JobID)
	assert.GreaterOrEqual(t, resp.Matches[0].OverallScore, resp.Matches[1].OverallScore)
}

func TestHandleMatchBatch_EmptyJobs(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/match/batch", MatchBatchRequest{
		Profile: testProfile(),
		Jobs:    []*types.JobPosting{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCandidates(t *testing.T) {
	s := newTestServer(t)

	strong := testProfile()
	weak := &types.Profile{ID: "profile-2", Skills: []types.Skill{{Name: "Figma"}}}

	w := doJSON(t, s, http.MethodPost, "/candidates", CandidatesRequest{
		Profiles: []*types.Profile{weak, strong},
		Job:      testJob("job-1", "Python", "SQL"),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Candidates []types.CandidateMatch `json:"candidates"`
		Count      int                    `json:"count"`
	}
	decodeBody(t, w, &resp)

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "profile-1", resp.Candidates[0].Profile.ID)
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/analyze", AnalyzeRequest{Profile: testProfile()})

	require.Equal(t, http.StatusOK, w.Code)

	var analysis types.ProfileAnalysis
	decodeBody(t, w, &analysis)

	assert.Equal(t, "profile-1", analysis.ProfileID)
	assert.Greater(t, analysis.ProfileStrengthScore, 0.0)
	assert.NotEmpty(t, analysis.MarketCompetitiveness)
}

func TestHandleRecommend(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/recommend", RecommendRequest{
		CurrentSkills: []string{"Python", "SQL"},
		TargetRole:    "backend engineer",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TargetRole      string   `json:"target_role"`
		Recommendations []string `json:"recommendations"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, "backend engineer", resp.TargetRole)
	assert.Contains(t, resp.Recommendations, "Go")
	assert.NotContains(t, resp.Recommendations, "Python")
}

func TestHandleRecommend_SkillsFromProfile(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/recommend", RecommendRequest{
		Profile:    testProfile(),
		TargetRole: "backend engineer",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recommendations []string `json:"recommendations"`
	}
	decodeBody(t, w, &resp)
	assert.NotContains(t, resp.Recommendations, "Python")
}

func TestHandleIngest_InvalidURL(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/ingest", IngestRequest{URL: "not a url"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleToken_AuthDisabled(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/token", TokenRequest{
		ClientID:     "portal",
		ClientSecret: "secret",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleGetMatch_NoStore(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/matches/"+"00000000-0000-0000-0000-000000000001", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleCosts(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/costs", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SpentUSD     float64 `json:"spent_usd"`
		WithinBudget bool    `json:"within_budget"`
		Calls        int     `json:"calls"`
	}
	decodeBody(t, w, &resp)

	assert.Zero(t, resp.SpentUSD)
	assert.True(t, resp.WithinBudget)
	assert.Zero(t, resp.Calls)
}

func TestRateLimit_DefaultLimitReturns429(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "1")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "1h")

	s, err := New(context.Background(), Config{Port: 0}, zap.NewNop())
	require.NoError(t, err)

	// /costs has no endpoint-specific tier, so the default limit applies.
	first := doJSON(t, s, http.MethodGet, "/costs", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, s, http.MethodGet, "/costs", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	// Health stays reachable regardless.
	health := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, health.Code)
}

func newAuthedServer(t *testing.T, secret string) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("API_CLIENT_ID", "recruiting-portal")

	secretConfig, err := config.NewSecretConfig()
	require.NoError(t, err)
	hash, err := secretConfig.HashSecret(secret)
	require.NoError(t, err)
	t.Setenv("API_CLIENT_SECRET_HASH", hash)

	s, err := New(context.Background(), Config{Port: 0}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestAuth_ProtectedRouteRequiresToken(t *testing.T) {
	s := newAuthedServer(t, "portal-secret")

	w := doJSON(t, s, http.MethodPost, "/match", MatchRequest{
		Profile: testProfile(),
		Job:     testJob("job-1", "Python"),
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_TokenFlow(t *testing.T) {
	s := newAuthedServer(t, "portal-secret")

	tokenResp := doJSON(t, s, http.MethodPost, "/token", TokenRequest{
		ClientID:     "recruiting-portal",
		ClientSecret: "portal-secret",
	})
	require.Equal(t, http.StatusOK, tokenResp.Code)

	var issued TokenResponse
	decodeBody(t, tokenResp, &issued)
	require.NotEmpty(t, issued.Token)
	assert.Equal(t, "Bearer", issued.TokenType)
	assert.Equal(t, 24*3600, issued.ExpiresIn)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(MatchRequest{
		Profile: testProfile(),
		Job:     testJob("job-1", "Python"),
	}))
	req := httptest.NewRequest(http.MethodPost, "/match", &buf)
	req.Header.Set("Authorization", "Bearer "+issued.Token)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	s := newAuthedServer(t, "portal-secret")

	w := doJSON(t, s, http.MethodPost, "/token", TokenRequest{
		ClientID:     "recruiting-portal",
		ClientSecret: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid client ID or secret")
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService(&config.JWTConfig{Secret: "roundtrip-secret", ExpirationHours: 1})

	token, err := service.GenerateToken("batch-runner")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "batch-runner", claims.GetClientID())
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService(&config.JWTConfig{Secret: "secret-a", ExpirationHours: 1})
	verifier := NewJWTService(&config.JWTConfig{Secret: "secret-b", ExpirationHours: 1})

	token, err := issuer.GenerateToken("batch-runner")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "text", Message: "required"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrNotFound{Resource: "match", ID: "x"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrUnavailable{Feature: "record store"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
