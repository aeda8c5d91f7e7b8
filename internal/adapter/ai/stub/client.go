// Package stub provides a fast, deterministic AI client for local runs and
// tests when no provider key is configured.
package stub

import (
	"context"
	"strings"
)

// Client returns canned, deterministic replies shaped like real provider
// output so the extraction path is exercised end to end.
type Client struct{}

// New constructs a stub client.
func New() *Client { return &Client{} }

// Complete returns a schedule array when the prompt asks for one, and a
// career suggestion array otherwise.
func (c *Client) Complete(_ context.Context, _ string, userPrompt string, _ int) (string, error) {
	if strings.Contains(userPrompt, "weekly schedule") {
		return "```json\n" + scheduleReply + "\n```", nil
	}
	return "Here are some suggestions:\n```json\n" + careerReply + "\n```", nil
}

const careerReply = `[
  {
    "title": "Software Engineer",
    "description": "Designs and builds software systems across industries.",
    "salary": "$70,000 - $150,000",
    "growth_outlook": "Much faster than average",
    "education": "Bachelor's degree in computer science or related field",
    "degrees": ["Computer Science", "Software Engineering"],
    "skills": ["Technical skills", "Problem solving"],
    "extracurriculars": ["Coding club", "Hackathons"],
    "certifications": ["AWS Cloud Practitioner"],
    "job_titles": ["Backend Engineer", "Full-Stack Developer"],
    "universities": [],
    "financial_advice": {
      "budgeting_tips": ["Track subscriptions"],
      "saving_tips": ["Automate savings"],
      "education_costs": "In-state tuition averages are far below private programs.",
      "scholarships": ["STEM merit scholarships"],
      "earn_while_studying": "Paid internships are common from the second year."
    }
  },
  {
    "title": "Data Analyst",
    "description": "Turns raw data into decisions with statistics and visualization.",
    "salary": "$55,000 - $110,000",
    "growth_outlook": "Faster than average",
    "education": "Bachelor's degree in a quantitative field",
    "degrees": ["Statistics", "Data Science"],
    "skills": ["Technical skills", "Communication"],
    "extracurriculars": ["Math club"],
    "certifications": [],
    "job_titles": ["BI Analyst"],
    "universities": [],
    "financial_advice": {
      "budgeting_tips": [],
      "saving_tips": [],
      "education_costs": "",
      "scholarships": [],
      "earn_while_studying": ""
    }
  }
]`

const scheduleReply = `[
  {"day": "Monday", "time_label": "7:00 AM", "activity": "Study Session"},
  {"day": "Monday", "time_label": "9:00 AM", "activity": "Reading"},
  {"day": "Wednesday", "time_label": "7:00 AM", "activity": "Coding Practice"},
  {"day": "Friday", "time_label": "5:00 PM", "activity": "Exercise"},
  {"day": "Sunday", "time_label": "11:00 AM", "activity": "Rest"}
]`
