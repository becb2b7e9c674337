package youtube

import (
	"strconv"
	"strings"
	"time"
)

// parseISODuration parses the ISO-8601 durations the API emits for video
// runtimes (PT#H#M#S, optionally P#DT...). Live streams report "P0D".
// Malformed input parses to zero rather than failing the whole record.
func parseISODuration(s string) time.Duration {
	if !strings.HasPrefix(s, "P") {
		return 0
	}
	rest := s[1:]

	datePart := rest
	timePart := ""
	if i := strings.IndexByte(rest, 'T'); i >= 0 {
		datePart, timePart = rest[:i], rest[i+1:]
	}

	var total time.Duration
	if days, ok := takeUnit(datePart, 'D'); ok {
		total += time.Duration(days) * 24 * time.Hour
	}
	if h, ok := takeUnit(timePart, 'H'); ok {
		total += time.Duration(h) * time.Hour
		timePart = timePart[strings.IndexByte(timePart, 'H')+1:]
	}
	if m, ok := takeUnit(timePart, 'M'); ok {
		total += time.Duration(m) * time.Minute
		timePart = timePart[strings.IndexByte(timePart, 'M')+1:]
	}
	if sec, ok := takeUnit(timePart, 'S'); ok {
		total += time.Duration(sec) * time.Second
	}
	return total
}

// takeUnit extracts the integer immediately preceding the unit letter.
func takeUnit(s string, unit byte) (int, bool) {
	end := strings.IndexByte(s, unit)
	if end < 0 {
		return 0, false
	}
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
