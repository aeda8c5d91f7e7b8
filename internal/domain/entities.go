// Package domain holds the core entities, ports, and error taxonomy of the
// suggestion service. It stays free of transport and storage concerns.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrUpstreamTimeout   = errors.New("upstream timeout")
	ErrUpstreamRateLimit = errors.New("upstream rate limit")
	ErrMalformedItem     = errors.New("malformed item")
	ErrInternal          = errors.New("internal error")
)

// Source tags where a suggestion result came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Kind discriminates the two pipeline variants.
type Kind string

const (
	KindCareers  Kind = "careers"
	KindSchedule Kind = "schedule"
)

// UserProfile is the structured input to every pipeline run. It is supplied
// by the caller and never mutated; empty collections are acceptable.
type UserProfile struct {
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

// Validate rejects profiles too empty to produce a meaningful result. A
// fallback built from a blank profile is low-value, so this is the one
// pipeline input error surfaced to callers.
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Grade) == "" && strings.TrimSpace(p.CareerInterest) == "" {
		return fmt.Errorf("%w: profile requires at least a grade or a career interest", ErrInvalidArgument)
	}
	return nil
}

// FinancialAdvice carries money guidance attached to a career suggestion.
type FinancialAdvice struct {
	BudgetingTips     []string `json:"budgeting_tips"`
	SavingTips        []string `json:"saving_tips"`
	EducationCosts    string   `json:"education_costs"`
	Scholarships      []string `json:"scholarships"`
	EarnWhileStudying string   `json:"earn_while_studying"`
}

// SuggestionItem is a normalized career recommendation. Title serves as the
// identity key within a result set. List fields are always non-nil so
// rendering layers never see null.
type SuggestionItem struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Salary           string          `json:"salary"`
	GrowthOutlook    string          `json:"growth_outlook"`
	Education        string          `json:"education"`
	Degrees          []string        `json:"degrees"`
	Skills           []string        `json:"skills"`
	Extracurriculars []string        `json:"extracurriculars"`
	Certifications   []string        `json:"certifications"`
	JobTitles        []string        `json:"job_titles"`
	Universities     []string        `json:"universities"`
	FinancialAdvice  FinancialAdvice `json:"financial_advice"`
	// FitScore is recomputed on every run and never trusted from raw input.
	FitScore int `json:"fit_score"`
}

// ScheduleSlot places one activity on the weekly grid. Identity is the
// (Day, TimeLabel) pair; at most one activity may occupy it.
type ScheduleSlot struct {
	Day       string `json:"day"`
	TimeLabel string `json:"time_label"`
	Activity  string `json:"activity"`
	Color     string `json:"color"`
}

// CareerResult is the terminal state of a careers pipeline run.
type CareerResult struct {
	Source Source           `json:"source"`
	Items  []SuggestionItem `json:"items"`
}

// ScheduleResult is the terminal state of a schedule pipeline run.
type ScheduleResult struct {
	Source Source         `json:"source"`
	Slots  []ScheduleSlot `json:"slots"`
}

// SuggestionRecord is the persisted form of a pipeline result, one latest
// record per (user, kind). Items holds the result payload as JSON.
type SuggestionRecord struct {
	ID        string
	UserID    string
	Kind      Kind
	Source    Source
	Items     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AIClient (port) is the external LLM completion collaborator. Any failure
// is treated by the pipeline as a uniform unavailable signal.
type AIClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// SuggestionRepository (port) persists pipeline results best-effort.
type SuggestionRepository interface {
	Upsert(ctx context.Context, rec SuggestionRecord) error
	GetLatest(ctx context.Context, userID string, kind Kind) (SuggestionRecord, error)
}

// Context aliases the standard context so adapters can depend on domain
// types alone in their signatures.
type Context = context.Context

// ResultCache (port) stores serialized results keyed by profile hash.
// Implementations must report absence via the bool, not an error.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}
