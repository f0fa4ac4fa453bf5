// Package duration renders elapsed time as a coarse human-readable age.
package duration

import "fmt"

type unit struct {
	seconds int64
	name    string
}

// Largest unit first. Bucketing picks the first unit with a whole count of
// at least one, so boundary values (exactly 60s, exactly 24h) round down
// into the larger unit.
var units = []unit{
	{seconds: 86400, name: "day"},
	{seconds: 3600, name: "hour"},
	{seconds: 60, name: "minute"},
	{seconds: 1, name: "second"},
}

// Ago formats elapsed seconds as "<n> <unit>(s) ago" using the largest unit
// whose count is >= 1. Zero and negative values render as "0 second(s) ago".
func Ago(elapsedSeconds int64) string {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	for _, u := range units {
		if elapsedSeconds >= u.seconds {
			return fmt.Sprintf("%d %s(s) ago", elapsedSeconds/u.seconds, u.name)
		}
	}
	return "0 second(s) ago"
}
