// Package prompt builds the coaching system instruction sent with every
// upstream request.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gios-blog/runcoach/internal/intake"
)

var systemTmpl = template.Must(template.New("system").Parse(defaultTemplate))

type systemData struct {
	intake.Record
	CurrentDate string
	Trail       bool
}

// System renders the system instruction for rec as of currentDate
// (YYYY-MM-DD). Values are embedded verbatim.
func System(rec intake.Record, currentDate string) (string, error) {
	var b strings.Builder
	data := systemData{
		Record:      rec,
		CurrentDate: currentDate,
		Trail:       rec.Goal.IsTrail(),
	}
	if err := systemTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return b.String(), nil
}
