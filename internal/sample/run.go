package sample

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Outcome is either the rendered text of a successful scenario or its error.
type Outcome struct {
	Text string
	Err  error
}

func Ok(text string) Outcome { return Outcome{Text: text} }

func Err(err error) Outcome { return Outcome{Err: err} }

func (o Outcome) IsOk() bool { return o.Err == nil }

// Result pairs a scenario name with its outcome.
type Result struct {
	Scenario string
	Outcome  Outcome
}

// Run executes every scenario in order. A failing scenario is recorded and
// the next one still runs.
func (s *Sample) Run(ctx context.Context, scenarios []Scenario) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		text, err := sc.Run(ctx)
		outcome := Ok(text)
		if err != nil {
			s.logger.WarnContext(ctx, "scenario failed", "scenario", sc.Name, "group", sc.Group, "error", err)
			outcome = Err(err)
		}
		results = append(results, Result{Scenario: sc.Name, Outcome: outcome})
	}
	return results
}

// Print writes each result as a "# name" header, its text or "Error: ..."
// line, and a blank line.
func Print(w io.Writer, results []Result) error {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "# %s\n", r.Scenario)
		if r.Outcome.IsOk() {
			b.WriteString(r.Outcome.Text)
		} else {
			fmt.Fprintf(&b, "Error: %s", r.Outcome.Err)
		}
		b.WriteString("\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Outcome.IsOk() {
			n++
		}
	}
	return n
}
