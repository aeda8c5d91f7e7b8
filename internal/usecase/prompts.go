package usecase

import (
	"strconv"
	"strings"

	"github.com/unite-hq/mentorlaunch/internal/domain"
)

func buildCareerSystemPrompt() string {
	return strings.TrimSpace(`You are a career counselor for high-school students. Return ONLY a valid JSON array and nothing else. No prose, no markdown.
Each element must match this shape:
{
  "title": string,
  "description": string,
  "salary": string,
  "growth_outlook": string,
  "education": string,
  "degrees": string[],
  "skills": string[],
  "extracurriculars": string[],
  "certifications": string[],
  "job_titles": string[],
  "universities": string[],
  "financial_advice": {
    "budgeting_tips": string[],
    "saving_tips": string[],
    "education_costs": string,
    "scholarships": string[],
    "earn_while_studying": string
  }
}
Empty lists must be [], never null.`)
}

func buildCareerUserPrompt(profile domain.UserProfile, count int) string {
	b := &strings.Builder{}
	b.WriteString("Suggest career paths for this student profile.\n")
	writeField(b, "Grade", profile.Grade)
	writeField(b, "Career interest", profile.CareerInterest)
	writeField(b, "Academic interests", strings.Join(profile.AcademicInterests, ", "))
	writeField(b, "Academic strengths", strings.Join(profile.AcademicStrengths, ", "))
	writeField(b, "Preferred work environment", profile.WorkEnvironment)
	writeField(b, "Task preference", profile.TaskPreference)
	writeField(b, "Skills", strings.Join(profile.Skills, ", "))
	writeField(b, "Technology confidence", profile.TechConfidence)
	writeField(b, "Work-life balance preference", profile.WorkLifeBalance)
	writeField(b, "Career motivation", profile.CareerMotivation)
	writeField(b, "Study goal", profile.StudyGoal)
	b.WriteString("Return a JSON array with ")
	b.WriteString(strconv.Itoa(count))
	b.WriteString(" suggestions. JSON only.")
	return b.String()
}

func buildScheduleSystemPrompt() string {
	return strings.TrimSpace(`You are a study planner. Return ONLY a valid JSON array and nothing else. No prose, no markdown.
Each element must match: {"day": string, "time_label": string, "activity": string}.
Valid days: ` + strings.Join(domain.DayNames, ", ") + `.
Valid time labels: ` + strings.Join(domain.TimeLabels, ", ") + `.
At most one activity per day and time label pair.`)
}

func buildScheduleUserPrompt(profile domain.UserProfile) string {
	b := &strings.Builder{}
	b.WriteString("Build a weekly schedule for this student profile.\n")
	writeField(b, "Grade", profile.Grade)
	writeField(b, "Career interest", profile.CareerInterest)
	writeField(b, "Academic strengths", strings.Join(profile.AcademicStrengths, ", "))
	writeField(b, "Skills", strings.Join(profile.Skills, ", "))
	writeField(b, "Study goal", profile.StudyGoal)
	b.WriteString("Return a JSON array of schedule slots. JSON only.")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
