package host

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

const exitedMarker = "(EXITED - attach to resurrect)"

// parseSessionLines splits zellij's list-sessions output into live and exited
// sessions. Lines look like:
//
//	forest [Created 2h 4m 3s ago] (current)
//	ruin [Created 14d 1h ago] (EXITED - attach to resurrect)
func parseSessionLines(raw, current string, forbidden map[string]bool) ([]Session, []DeadSession) {
	var live []Session
	var dead []DeadSession
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(ansi.Strip(line))
		if line == "" {
			continue
		}
		exited := strings.Contains(line, exitedMarker)
		line = strings.Replace(line, exitedMarker, "", 1)

		isCurrent := strings.Contains(line, "(current)")
		line = strings.Replace(line, "(current)", "", 1)

		name, age := splitNameAndAge(line)
		if name == "" {
			continue
		}
		if exited {
			dead = append(dead, DeadSession{Name: name, Age: age})
			continue
		}
		live = append(live, Session{
			Name:      name,
			Age:       age,
			Current:   isCurrent || name == current,
			Forbidden: forbidden[name],
		})
	}
	return live, dead
}

// splitNameAndAge separates the session name from the "[Created ... ago]"
// annotation. The name may itself contain spaces, so the bracket is the
// only reliable delimiter.
func splitNameAndAge(line string) (string, time.Duration) {
	idx := strings.Index(line, "[Created")
	if idx < 0 {
		return strings.TrimSpace(line), 0
	}
	name := strings.TrimSpace(line[:idx])
	rest := line[idx:]
	end := strings.Index(rest, "]")
	if end < 0 {
		return name, 0
	}
	inner := strings.TrimSpace(rest[len("[Created"):end])
	inner = strings.TrimSuffix(inner, "ago")
	return name, parseAge(inner)
}

// parseAge parses humantime-style component strings such as "2h 4m 3s" or
// "14days 1h". Unknown components are skipped.
func parseAge(raw string) time.Duration {
	var total time.Duration
	for _, token := range strings.Fields(raw) {
		i := 0
		for i < len(token) && token[i] >= '0' && token[i] <= '9' {
			i++
		}
		if i == 0 {
			continue
		}
		value, err := strconv.Atoi(token[:i])
		if err != nil {
			continue
		}
		switch strings.TrimSpace(token[i:]) {
		case "s", "sec", "secs", "second", "seconds":
			total += time.Duration(value) * time.Second
		case "m", "min", "mins", "minute", "minutes":
			total += time.Duration(value) * time.Minute
		case "h", "hour", "hours":
			total += time.Duration(value) * time.Hour
		case "d", "day", "days":
			total += time.Duration(value) * 24 * time.Hour
		case "w", "week", "weeks":
			total += time.Duration(value) * 7 * 24 * time.Hour
		case "month", "months":
			total += time.Duration(value) * 30 * 24 * time.Hour
		case "y", "year", "years":
			total += time.Duration(value) * 365 * 24 * time.Hour
		}
	}
	return total
}
