package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/unite-hq/mentorlaunch/internal/adapter/observability"
	"github.com/unite-hq/mentorlaunch/internal/config"
	"github.com/unite-hq/mentorlaunch/internal/domain"
	"github.com/unite-hq/mentorlaunch/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg        config.Config
	Suggest    usecase.SuggestService
	Records    domain.SuggestionRepository
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, suggest usecase.SuggestService, records domain.SuggestionRepository, dbCheck, redisCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Suggest: suggest, Records: records, DBCheck: dbCheck, RedisCheck: redisCheck}
}

type suggestRequest struct {
	UserID string `json:"user_id"`
	Kind   string `json:"kind" validate:"omitempty,oneof=careers schedule"`
	Count  int    `json:"count" validate:"omitempty,min=1,max=10"`

	Grade             string   `json:"grade"`
	CareerInterest    string   `json:"career_interest"`
	AcademicInterests []string `json:"academic_interests"`
	AcademicStrengths []string `json:"academic_strengths"`
	WorkEnvironment   string   `json:"work_environment"`
	TaskPreference    string   `json:"task_preference"`
	Skills            []string `json:"skills"`
	TechConfidence    string   `json:"tech_confidence"`
	WorkLifeBalance   string   `json:"work_life_balance"`
	CareerMotivation  string   `json:"career_motivation"`
	StudyGoal         string   `json:"study_goal"`
}

func (req suggestRequest) profile() domain.UserProfile {
	return domain.UserProfile{
		Grade:             req.Grade,
		CareerInterest:    req.CareerInterest,
		AcademicInterests: req.AcademicInterests,
		AcademicStrengths: req.AcademicStrengths,
		WorkEnvironment:   req.WorkEnvironment,
		TaskPreference:    req.TaskPreference,
		Skills:            req.Skills,
		TechConfidence:    req.TechConfidence,
		WorkLifeBalance:   req.WorkLifeBalance,
		CareerMotivation:  req.CareerMotivation,
		StudyGoal:         req.StudyGoal,
	}
}

// SuggestHandler runs the pipeline for the posted profile. The response is
// always a non-empty, well-typed item list for any valid profile; degraded
// quality shows up only in the source field.
func (s *Server) SuggestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
			writeError(w, r, fmt.Errorf("%w: content-type must be application/json", domain.ErrInvalidArgument), nil)
			return
		}
		var req suggestRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json body: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), validationDetails(err))
			return
		}

		kind := domain.Kind(req.Kind)
		if kind == "" {
			kind = domain.KindCareers
		}
		opts := usecase.Options{Count: req.Count, UserID: req.UserID}

		start := time.Now()
		switch kind {
		case domain.KindSchedule:
			res, err := s.Suggest.Schedule(r.Context(), req.profile(), opts)
			if err != nil {
				writeError(w, r, err, nil)
				return
			}
			observability.PipelineRunsTotal.WithLabelValues(string(kind), string(res.Source)).Inc()
			LoggerFrom(r).Info("pipeline done", slog.String("kind", string(kind)), slog.String("source", string(res.Source)), slog.Int("items", len(res.Slots)), slog.Duration("duration", time.Since(start)))
			writeJSON(w, http.StatusOK, map[string]any{"items": res.Slots, "source": res.Source})
		default:
			res, err := s.Suggest.Careers(r.Context(), req.profile(), opts)
			if err != nil {
				writeError(w, r, err, nil)
				return
			}
			observability.PipelineRunsTotal.WithLabelValues(string(kind), string(res.Source)).Inc()
			LoggerFrom(r).Info("pipeline done", slog.String("kind", string(kind)), slog.String("source", string(res.Source)), slog.Int("items", len(res.Items)), slog.Duration("duration", time.Since(start)))
			writeJSON(w, http.StatusOK, map[string]any{"items": res.Items, "source": res.Source})
		}
	}
}

// SavedHandler returns the latest persisted record for a user.
func (s *Server) SavedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Records == nil {
			writeError(w, r, fmt.Errorf("%w: persistence not configured", domain.ErrNotFound), nil)
			return
		}
		userID := chi.URLParam(r, "userID")
		kind := domain.Kind(r.URL.Query().Get("kind"))
		if kind == "" {
			kind = domain.KindCareers
		}
		if kind != domain.KindCareers && kind != domain.KindSchedule {
			writeError(w, r, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidArgument, kind), nil)
			return
		}
		rec, err := s.Records.GetLatest(r.Context(), userID, kind)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"user_id":    rec.UserID,
			"kind":       rec.Kind,
			"source":     rec.Source,
			"items":      json.RawMessage(rec.Items),
			"updated_at": rec.UpdatedAt,
		})
	}
}

// ReadyzHandler checks downstream dependencies that are configured.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := map[string]func(context.Context) error{"db": s.DBCheck, "redis": s.RedisCheck}
		status := map[string]string{}
		ready := true
		for name, check := range checks {
			if check == nil {
				status[name] = "disabled"
				continue
			}
			if err := check(ctx); err != nil {
				status[name] = "down"
				ready = false
				continue
			}
			status[name] = "up"
		}
		code := http.StatusOK
		if !ready {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]any{"ready": ready, "checks": status})
	}
}
