package errors

import "strings"

// kindMarkers maps each failure kind to the substrings that identify it in a
// provider error message. Matching is case-insensitive; numeric markers
// match the HTTP-like status codes providers embed in their messages.
var kindMarkers = []struct {
	kind    Kind
	markers []string
}{
	{KindOverloaded, []string{"overloaded", "529"}},
	{KindRateLimited, []string{"rate_limit", "429"}},
	{KindAuthFailed, []string{"authentication", "401"}},
	{KindInvalidRequest, []string{"invalid_request", "400"}},
}

// Classify maps a failed LLM call's error to its Kind by case-insensitive
// substring matching. Anything unrecognized is KindUnknown. Pure function,
// no side effects.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	return ClassifyMessage(err.Error())
}

// ClassifyMessage classifies a raw error message string.
func ClassifyMessage(msg string) Kind {
	lower := strings.ToLower(msg)
	for _, entry := range kindMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(lower, marker) {
				return entry.kind
			}
		}
	}
	return KindUnknown
}
