package usecase

import (
	"strings"

	"github.com/unite-hq/mentorlaunch/internal/domain"
)

// Fit scoring weights. The score is recomputed on demand from the item and
// profile, never persisted or trusted from raw AI output.
const (
	scoreBase            = 50
	scoreTitleInterest   = 15
	scorePerSkillOverlap = 6
	scoreSkillOverlapCap = 20
	scoreTechHigh        = 7
	scoreTechMiddle      = 3
	scoreAdvancedGoal    = 5
)

// ComputeFitScore maps a suggestion and a profile to a bounded [0,100]
// compatibility score. It is deterministic and independent of any other
// item in the result set.
func ComputeFitScore(item domain.SuggestionItem, profile domain.UserProfile) int {
	score := scoreBase

	interest := strings.TrimSpace(profile.CareerInterest)
	if interest != "" && strings.Contains(strings.ToLower(item.Title), strings.ToLower(interest)) {
		score += scoreTitleInterest
	}

	overlap := skillOverlap(item.Skills, profile.Skills) * scorePerSkillOverlap
	if overlap > scoreSkillOverlapCap {
		overlap = scoreSkillOverlapCap
	}
	score += overlap

	score += techConfidenceBonus(profile.TechConfidence)

	goal := strings.ToLower(profile.StudyGoal)
	for _, kw := range domain.AdvancedDegreeKeywords {
		if strings.Contains(goal, kw) {
			score += scoreAdvancedGoal
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func skillOverlap(a, b []string) int {
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[normalizeSkill(s)] = struct{}{}
	}
	delete(seen, "")
	n := 0
	counted := make(map[string]struct{}, len(b))
	for _, s := range b {
		k := normalizeSkill(s)
		if k == "" {
			continue
		}
		if _, dup := counted[k]; dup {
			continue
		}
		counted[k] = struct{}{}
		if _, ok := seen[k]; ok {
			n++
		}
	}
	return n
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// techConfidenceBonus maps the ordinal confidence level to its weight.
// Highest level earns 7, middle 3, anything else 0.
func techConfidenceBonus(level string) int {
	l := strings.ToLower(strings.TrimSpace(level))
	switch {
	case strings.Contains(l, "expert"), strings.Contains(l, "very"):
		return scoreTechHigh
	case strings.Contains(l, "intermediate"), strings.Contains(l, "somewhat"), strings.Contains(l, "moderate"):
		return scoreTechMiddle
	default:
		return 0
	}
}
