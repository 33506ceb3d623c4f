// Package intake models the runner intake form: the record the browser
// submits, the goal-dependent target variant, and the form's submission
// state machine.
package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Goal is the race discipline the plan is built for
type Goal string

const (
	Goal10K      Goal = "10km"
	GoalHalf     Goal = "하프 마라톤"
	GoalMarathon Goal = "풀 코스"
	GoalTrail    Goal = "트레일러닝"
)

// DateLayout is the wire format of race and current dates (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ErrMissingField is wrapped by validation errors for unset mandatory fields
var ErrMissingField = errors.New("missing required field")

// IsTrail reports whether the goal takes a distance/elevation target
// instead of a finish time.
func (g Goal) IsTrail() bool { return g == GoalTrail }

// Valid reports whether g is one of the known goals
func (g Goal) Valid() bool {
	switch g {
	case Goal10K, GoalHalf, GoalMarathon, GoalTrail:
		return true
	}
	return false
}

// Record is the intake record as submitted by the page. Field names match
// the JSON the page script sends.
type Record struct {
	Goal     Goal   `json:"goal"`
	Target   string `json:"target"`
	Level    string `json:"level"`
	RaceDate string `json:"raceDate"`
	Injury   string `json:"injury"`
	Days     string `json:"days"`
}

// Validate checks that every mandatory field is set. It does not check
// values against the catalogs; the record is whatever the client chose.
func (r Record) Validate() error {
	var missing []string
	if r.Goal == "" {
		missing = append(missing, "goal")
	}
	if strings.TrimSpace(r.Target) == "" {
		missing = append(missing, "target")
	}
	if r.Level == "" {
		missing = append(missing, "level")
	}
	if r.RaceDate == "" {
		missing = append(missing, "raceDate")
	}
	if r.Days == "" {
		missing = append(missing, "days")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
