// Package filter classifies channels and videos by keyword matching.
// Matching is deterministic, case-insensitive, and does no I/O.
package filter

import "strings"

type Engine struct {
	channelKeywords []string
	videoHashtags   []string
}

// New builds an engine over the built-in vocabularies.
func New() *Engine {
	return &Engine{
		channelKeywords: lowerAll(channelKeywords),
		videoHashtags:   lowerAll(videoHashtags),
	}
}

// RelevantChannel reports whether a channel name matches the niche keyword
// set. Heuristic, not exhaustive.
func (e *Engine) RelevantChannel(name string) bool {
	return containsAny(strings.ToLower(name), e.channelKeywords)
}

// RelevantVideo reports whether a video description carries at least one
// known creator/topic hashtag.
func (e *Engine) RelevantVideo(description string) bool {
	return containsAny(strings.ToLower(description), e.videoHashtags)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
