package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/store"
	"github.com/jonathan/profile-matcher/internal/types"
)

// decodeAndValidate decodes the request body into dst and runs validator
// tags over it. The returned error is suitable for HTTPStatus.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validator.Struct(dst); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			ve := validationErrors[0]
			return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
		}
		return &ErrValidation{Field: "body", Message: "invalid request"}
	}
	return nil
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	minConfidence := req.MinConfidence
	if minConfidence == 0 {
		minConfidence = extraction.DefaultMinConfidence
	}

	skills := s.extractor.ExtractSkills(req.Text, minConfidence)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	score, err := s.matcher.MatchProfileToJob(req.Profile, req.Job, req.Detailed)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if req.Enrich && s.enricher.Enabled() {
		if !s.tracker.WithinBudget() {
			s.logger.Warn("LLM budget exhausted, returning templated suggestions")
		} else if err := s.enricher.EnrichSuggestions(r.Context(), req.Profile, req.Job, score); err != nil {
			// Templated suggestions stay in place.
			s.logger.Warn("suggestion enrichment failed", zap.Error(err))
		}
	}

	s.saveMatch(r, score)
	s.jsonResponse(w, http.StatusOK, score)
}

func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req MatchBatchRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	scores := s.matcher.MatchProfileToJobs(r.Context(), req.Profile, req.Jobs, req.TopN, req.MinScore)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": scores,
		"count":   len(scores),
	})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var req CandidatesRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidates := s.matcher.FindBestCandidates(r.Context(), req.Profiles, req.Job, req.TopN, req.MinScore)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	analysis, err := s.analyzer.AnalyzeProfile(req.Profile)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if s.store != nil {
		if err := s.store.SaveAnalysis(r.Context(), analysis); err != nil {
			s.logger.Warn("failed to persist analysis", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	currentSkills := req.CurrentSkills
	if len(currentSkills) == 0 && req.Profile != nil {
		currentSkills = req.Profile.SkillNames()
	}

	recommendations := s.extractor.SkillRecommendations(currentSkills, req.TargetRole)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"target_role":     req.TargetRole,
		"recommendations": recommendations,
	})
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	job, err := s.ingestor.JobFromURL(r.Context(), req.URL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		err := &ErrUnavailable{Feature: "authentication"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req TokenRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if req.ClientID != s.clientID || !s.secretConfig.VerifySecret(req.ClientSecret, s.clientSecretHash) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.jwtConfig.ExpirationHours * 3600,
	})
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrUnavailable{Feature: "record store"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid match ID")
		return
	}

	score, err := s.store.GetMatchScore(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if score == nil {
		nf := &ErrNotFound{Resource: "match", ID: id.String()}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrUnavailable{Feature: "record store"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := store.MatchFilters{
		ProfileID: r.URL.Query().Get("profile_id"),
		JobID:     r.URL.Query().Get("job_id"),
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		minScore, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid min_score")
			return
		}
		filters.MinScore = minScore
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	scores, err := s.store.ListMatchScores(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches": scores,
		"count":   len(scores),
	})
}

func (s *Server) handleCosts(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"spent_usd":     s.tracker.SpentUSD(),
		"budget_usd":    s.budgetUSD,
		"within_budget": s.tracker.WithinBudget(),
		"calls":         len(s.tracker.Usages()),
	}

	if s.store != nil {
		if total, err := s.store.TotalCostUSD(r.Context()); err == nil {
			response["persisted_total_usd"] = total
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// saveMatch persists a score when a store is configured. Persistence failures
// never fail the request.
func (s *Server) saveMatch(r *http.Request, score *types.MatchScore) {
	if s.store == nil {
		return
	}
	if _, err := s.store.SaveMatchScore(r.Context(), score); err != nil {
		s.logger.Warn("failed to persist match score", zap.Error(err))
	}
}
