// Package jsonx extracts structured JSON arrays from loosely formatted LLM
// replies. Parsing is strict fail-fast: no trailing-comma repair, no partial
// recovery. Absence of structured data is a normal outcome, not an error.
package jsonx

import (
	"encoding/json"
	"strings"
)

// Strategy attempts one way of locating a JSON array in text. Strategies are
// pure and independently testable; ExtractArray tries them in order and the
// first success wins.
type Strategy func(text string) ([]json.RawMessage, bool)

var strategies = []Strategy{
	ParseWhole,
	ParseFenced,
	ParseBracketSpan,
}

// ExtractArray locates and parses the first JSON array found in text.
// Elements keep their raw form; callers decide per-element shape.
func ExtractArray(text string) ([]json.RawMessage, bool) {
	for _, s := range strategies {
		if arr, ok := s(text); ok {
			return arr, true
		}
	}
	return nil, false
}

// ParseWhole succeeds when the trimmed text is itself a JSON array.
func ParseWhole(text string) ([]json.RawMessage, bool) {
	return tryParse(strings.TrimSpace(text))
}

// ParseFenced looks for a markdown code fence and parses its contents.
// A ```json language tag is tolerated.
func ParseFenced(text string) ([]json.RawMessage, bool) {
	open := strings.Index(text, "```")
	if open == -1 {
		return nil, false
	}
	rest := text[open+3:]
	if nl := strings.IndexByte(rest, '\n'); nl != -1 && len(strings.Fields(rest[:nl])) <= 1 {
		// Skip the language tag line, e.g. ```json
		rest = rest[nl+1:]
	}
	closing := strings.Index(rest, "```")
	if closing == -1 {
		return nil, false
	}
	return tryParse(strings.TrimSpace(rest[:closing]))
}

// ParseBracketSpan greedily takes the substring from the first '[' to the
// last ']' and parses it.
func ParseBracketSpan(text string) ([]json.RawMessage, bool) {
	start := strings.IndexByte(text, '[')
	end := strings.LastIndexByte(text, ']')
	if start == -1 || end <= start {
		return nil, false
	}
	return tryParse(text[start : end+1])
}

func tryParse(s string) ([]json.RawMessage, bool) {
	if !strings.HasPrefix(s, "[") {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return nil, false
	}
	return arr, true
}
