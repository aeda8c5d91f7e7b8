package jsonx_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unite-hq/mentorlaunch/pkg/jsonx"
)

func TestExtractArray_BareArray(t *testing.T) {
	arr, ok := jsonx.ExtractArray(`[{"title":"Data Analyst"},{"title":"Nurse"}]`)
	require.True(t, ok)
	require.Len(t, arr, 2)
	assert.JSONEq(t, `{"title":"Data Analyst"}`, string(arr[0]))
}

func TestExtractArray_SurroundingProse(t *testing.T) {
	text := `Here you go: [{"title":"Data Analyst","description":"Analyzes data.","skills":["Technical skills"]}]`
	arr, ok := jsonx.ExtractArray(text)
	require.True(t, ok)
	require.Len(t, arr, 1)
	var m map[string]any
	require.NoError(t, json.Unmarshal(arr[0], &m))
	assert.Equal(t, "Data Analyst", m["title"])
}

func TestExtractArray_CodeFence(t *testing.T) {
	cases := map[string]string{
		"tagged fence":   "Sure!\n```json\n[{\"a\":1}]\n```\nHope this helps.",
		"untagged fence": "```\n[{\"a\":1}]\n```",
		"inline fence":   "```json [{\"a\":1}]```",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			arr, ok := jsonx.ExtractArray(text)
			require.True(t, ok)
			require.Len(t, arr, 1)
			assert.JSONEq(t, `{"a":1}`, string(arr[0]))
		})
	}
}

func TestExtractArray_RoundTrip(t *testing.T) {
	original := []map[string]any{
		{"title": "Software Engineer", "skills": []any{"Go", "SQL"}},
		{"title": "Pediatric Nurse", "universities": []any{}},
	}
	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	wrapped := "Of course! Here is the list you asked for:\n```json\n" + string(encoded) + "\n```\nLet me know if you need more."
	arr, ok := jsonx.ExtractArray(wrapped)
	require.True(t, ok)
	require.Len(t, arr, len(original))
	for i := range original {
		want, _ := json.Marshal(original[i])
		assert.JSONEq(t, string(want), string(arr[i]))
	}
}

func TestExtractArray_NoStructuredData(t *testing.T) {
	for _, text := range []string{
		"Sorry, I can't help.",
		"",
		"just [ a stray bracket",
		`{"title":"an object, not an array"}`,
		`[{"title": "broken",]`,
	} {
		_, ok := jsonx.ExtractArray(text)
		assert.False(t, ok, "input: %q", text)
	}
}

func TestParseBracketSpan_Greedy(t *testing.T) {
	// First '[' to last ']' spans both arrays; the combined span is not
	// valid JSON, so the strategy reports no structured data rather than
	// guessing.
	_, ok := jsonx.ParseBracketSpan(`[1,2] and [3,4]`)
	assert.False(t, ok)

	arr, ok := jsonx.ParseBracketSpan(`prefix [1,2,3] suffix`)
	require.True(t, ok)
	assert.Len(t, arr, 3)
}
