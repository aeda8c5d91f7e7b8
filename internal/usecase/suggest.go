// Package usecase implements the structured-suggestion pipeline: one
// external completion attempt, best-effort extraction and normalization,
// deterministic fallback synthesis, and fit scoring. A well-formed profile
// always yields a non-empty result; degraded quality is signaled through
// the source tag, never through an error.
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/unite-hq/mentorlaunch/internal/domain"
	"github.com/unite-hq/mentorlaunch/pkg/jsonx"
)

const (
	careerMaxTokens   = 2000
	scheduleMaxTokens = 1200
	saveTimeout       = 10 * time.Second
	saveMaxRetries    = 2
)

// Options tune a single pipeline run.
type Options struct {
	// Count is the requested number of suggestions; it also sets the
	// minimum viable size of an AI result. Zero means one.
	Count int
	// UserID, when set, enables the best-effort persistence write.
	UserID string
}

func (o Options) minViable() int {
	if o.Count <= 0 {
		return 1
	}
	return o.Count
}

// SuggestService orchestrates the pipeline. All collaborators are injected;
// Repo and Cache may be nil, which disables persistence and caching.
type SuggestService struct {
	AI       domain.AIClient
	Repo     domain.SuggestionRepository
	Cache    domain.ResultCache
	CacheTTL time.Duration
}

// NewSuggestService constructs a SuggestService with the given collaborators.
func NewSuggestService(ai domain.AIClient, repo domain.SuggestionRepository, cache domain.ResultCache, cacheTTL time.Duration) SuggestService {
	return SuggestService{AI: ai, Repo: repo, Cache: cache, CacheTTL: cacheTTL}
}

// Careers runs the career-suggestion pipeline.
func (s SuggestService) Careers(ctx context.Context, profile domain.UserProfile, opts Options) (domain.CareerResult, error) {
	if err := profile.Validate(); err != nil {
		return domain.CareerResult{}, err
	}

	key := cacheKey(profile, domain.KindCareers, opts.Count)
	var cached domain.CareerResult
	if s.cacheGet(ctx, key, &cached) && len(cached.Items) > 0 {
		return cached, nil
	}

	items, source := s.careerItems(ctx, profile, opts)
	for i := range items {
		items[i].FitScore = ComputeFitScore(items[i], profile)
	}
	res := domain.CareerResult{Source: source, Items: items}

	s.cacheSet(ctx, key, res)
	s.saveBestEffort(opts.UserID, domain.KindCareers, res.Source, res.Items)
	return res, nil
}

// Schedule runs the weekly-schedule pipeline.
func (s SuggestService) Schedule(ctx context.Context, profile domain.UserProfile, opts Options) (domain.ScheduleResult, error) {
	if err := profile.Validate(); err != nil {
		return domain.ScheduleResult{}, err
	}

	key := cacheKey(profile, domain.KindSchedule, 0)
	var cached domain.ScheduleResult
	if s.cacheGet(ctx, key, &cached) && len(cached.Slots) > 0 {
		return cached, nil
	}

	slots, source := s.scheduleSlots(ctx, profile)
	res := domain.ScheduleResult{Source: source, Slots: slots}

	s.cacheSet(ctx, key, res)
	s.saveBestEffort(opts.UserID, domain.KindSchedule, res.Source, res.Slots)
	return res, nil
}

// careerItems walks the linear pipeline state machine: one external attempt,
// then extraction and per-item normalization; any failure or an emptied
// result set routes to the fallback synthesizer.
func (s SuggestService) careerItems(ctx context.Context, profile domain.UserProfile, opts Options) ([]domain.SuggestionItem, domain.Source) {
	reply, err := s.AI.Complete(ctx, buildCareerSystemPrompt(), buildCareerUserPrompt(profile, opts.minViable()), careerMaxTokens)
	if err != nil {
		slog.Warn("ai collaborator unavailable, using fallback", slog.String("kind", string(domain.KindCareers)), slog.Any("error", err))
		return synthesizeCareerFallback(profile), domain.SourceFallback
	}

	raw, ok := jsonx.ExtractArray(reply)
	if !ok || len(raw) < opts.minViable() {
		slog.Warn("no usable structured data in ai reply, using fallback", slog.String("kind", string(domain.KindCareers)), slog.Bool("parsed", ok), slog.Int("count", len(raw)))
		return synthesizeCareerFallback(profile), domain.SourceFallback
	}

	items := make([]domain.SuggestionItem, 0, len(raw))
	for _, r := range raw {
		item, err := normalizeCareerItem(r)
		if err != nil {
			slog.Debug("dropping malformed suggestion element", slog.Any("error", err))
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		slog.Warn("all ai suggestions dropped during normalization, using fallback", slog.String("kind", string(domain.KindCareers)))
		return synthesizeCareerFallback(profile), domain.SourceFallback
	}
	return items, domain.SourceAI
}

func (s SuggestService) scheduleSlots(ctx context.Context, profile domain.UserProfile) ([]domain.ScheduleSlot, domain.Source) {
	reply, err := s.AI.Complete(ctx, buildScheduleSystemPrompt(), buildScheduleUserPrompt(profile), scheduleMaxTokens)
	if err != nil {
		slog.Warn("ai collaborator unavailable, using fallback", slog.String("kind", string(domain.KindSchedule)), slog.Any("error", err))
		return synthesizeScheduleFallback(profile), domain.SourceFallback
	}

	raw, ok := jsonx.ExtractArray(reply)
	if !ok || len(raw) == 0 {
		slog.Warn("no usable structured data in ai reply, using fallback", slog.String("kind", string(domain.KindSchedule)), slog.Bool("parsed", ok))
		return synthesizeScheduleFallback(profile), domain.SourceFallback
	}

	slots := make([]domain.ScheduleSlot, 0, len(raw))
	occupied := make(map[[2]string]struct{}, len(raw))
	for _, r := range raw {
		slot, err := normalizeScheduleSlot(r)
		if err != nil {
			slog.Debug("dropping malformed schedule element", slog.Any("error", err))
			continue
		}
		id := [2]string{slot.Day, slot.TimeLabel}
		if _, taken := occupied[id]; taken {
			// First activity wins the (day, time) pair.
			continue
		}
		occupied[id] = struct{}{}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		slog.Warn("all ai schedule slots dropped during normalization, using fallback", slog.String("kind", string(domain.KindSchedule)))
		return synthesizeScheduleFallback(profile), domain.SourceFallback
	}
	return slots, domain.SourceAI
}

// saveBestEffort persists the result without ever failing the pipeline.
// The write runs detached from the request lifetime with a small bounded
// retry; failures are logged at warn level only.
func (s SuggestService) saveBestEffort(userID string, kind domain.Kind, source domain.Source, payload any) {
	if s.Repo == nil || userID == "" {
		return
	}
	items, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("marshal suggestion record failed", slog.Any("error", err))
		return
	}
	rec := domain.SuggestionRecord{
		ID:     uuid.New().String(),
		UserID: userID,
		Kind:   kind,
		Source: source,
		Items:  items,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		op := func() error { return s.Repo.Upsert(ctx, rec) }
		bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), saveMaxRetries), ctx)
		if err := backoff.Retry(op, bo); err != nil {
			slog.Warn("best-effort suggestion save failed", slog.String("user_id", userID), slog.String("kind", string(kind)), slog.Any("error", err))
		}
	}()
}

func (s SuggestService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.Cache == nil {
		return false
	}
	b, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		slog.Warn("result cache read failed", slog.Any("error", err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		slog.Warn("result cache entry corrupt", slog.Any("error", err))
		return false
	}
	return true
}

func (s SuggestService) cacheSet(ctx context.Context, key string, val any) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, b, s.CacheTTL); err != nil {
		slog.Warn("result cache write failed", slog.Any("error", err))
	}
}

// cacheKey derives a stable key from the full profile, kind, and count.
func cacheKey(profile domain.UserProfile, kind domain.Kind, count int) string {
	b, _ := json.Marshal(profile)
	h := sha256.Sum256(fmt.Appendf(b, "|%s|%d", kind, count))
	return "suggest:" + hex.EncodeToString(h[:])
}
