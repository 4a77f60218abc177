package services

import (
	"strings"
	"time"
)

// Clock supplies the evaluation instant for derived show views.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere in the
// column. LIKE wildcards inside term are matched literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
