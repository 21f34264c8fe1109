// Package terminal renders puzzles and solver reports for the CLI, either as
// styled text or as JSON / YAML documents.
package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

type Format int

const (
	Text Format = iota
	JSON
	YAML
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("unknown output format %q", s)
	}
}

// Printer writes reports to w. Colors follow w's terminal capabilities, so a
// pipe or buffer gets plain text.
type Printer struct {
	w      io.Writer
	format Format
	st     styles
}

type styles struct {
	title, label, muted, success, warning, failure lipgloss.Style
	box                                            lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#20B9B4")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		success: r.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#16858E")).
			Padding(0, 1),
	}
}

func New(w io.Writer, f Format) *Printer {
	return &Printer{w: w, format: f, st: newStyles(lipgloss.NewRenderer(w))}
}

type puzzleDoc struct {
	Puzzle     *domain.Puzzle `json:"puzzle" yaml:"puzzle"`
	DurationMs float64        `json:"durationMs" yaml:"durationMs"`
}

func (p *Printer) Puzzle(pz *domain.Puzzle, st ports.Stats) error {
	if p.format != Text {
		return p.encode(puzzleDoc{Puzzle: pz, DurationMs: ms(st.Duration)})
	}
	p.puzzleText(pz)
	return nil
}

type solveDoc struct {
	Puzzle  *domain.Puzzle  `json:"puzzle" yaml:"puzzle"`
	Results []domain.Result `json:"results" yaml:"results"`
}

// Results prints one block per solver run on pz.
func (p *Printer) Results(pz *domain.Puzzle, results []domain.Result) error {
	if p.format != Text {
		return p.encode(solveDoc{Puzzle: pz, Results: results})
	}
	p.puzzleText(pz)
	for _, r := range results {
		p.resultText(r)
	}
	return nil
}

func (p *Printer) Comparison(c *domain.Comparison) error {
	if p.format != Text {
		return p.encode(c)
	}
	fmt.Fprintln(p.w, p.st.title.Render("Countdown Numbers Game - Solver Comparison"))
	fmt.Fprintln(p.w)
	p.puzzleText(c.Puzzle)
	p.resultText(c.Exhaustive)
	p.resultText(c.Heuristic)

	lines := []string{
		c.Summary,
		c.SpeedSummary(),
		"Exploration efficiency:",
		fmt.Sprintf("  exhaustive: %d states", c.Exhaustive.Nodes),
		fmt.Sprintf("  heuristic:  %d nodes", c.Heuristic.Nodes),
	}
	fmt.Fprintln(p.w, p.st.box.Render(strings.Join(lines, "\n")))
	return nil
}

type hintDoc struct {
	Found bool         `json:"found" yaml:"found"`
	Hint  *domain.Hint `json:"hint,omitempty" yaml:"hint,omitempty"`
}

func (p *Printer) Hint(h domain.Hint, ok bool) error {
	if p.format != Text {
		doc := hintDoc{Found: ok}
		if ok {
			doc.Hint = &h
		}
		return p.encode(doc)
	}
	if !ok {
		fmt.Fprintln(p.w, p.st.muted.Render("No hint available"))
		return nil
	}
	fmt.Fprintln(p.w, p.st.success.Render(h.Message))
	return nil
}

func (p *Printer) Bench(s *domain.BenchSummary) error {
	if p.format != Text {
		return p.encode(s)
	}
	fmt.Fprintln(p.w, p.st.title.Render(fmt.Sprintf("Benchmark over %d puzzles", s.Puzzles)))
	for i, c := range s.Comparisons {
		fmt.Fprintf(p.w, "%3d  %-22v -> %3d  %s  %s\n", i+1, c.Puzzle.Numbers, c.Puzzle.Target,
			p.outcome(c.Exhaustive.Verdict.Outcome), p.outcome(c.Heuristic.Verdict.Outcome))
	}
	lines := []string{
		fmt.Sprintf("exhaustive: %d exact, %d states, %v", s.ExhaustiveExact, s.ExhaustiveNodes, round(s.ExhaustiveTime)),
		fmt.Sprintf("heuristic:  %d exact, %d close, %d nodes, %v", s.HeuristicExact, s.HeuristicClose, s.HeuristicNodes, round(s.HeuristicTime)),
	}
	fmt.Fprintln(p.w, p.st.box.Render(strings.Join(lines, "\n")))
	return nil
}

func (p *Printer) puzzleText(pz *domain.Puzzle) {
	fmt.Fprintf(p.w, "%s %v\n", p.st.label.Render("Numbers:"), pz.Numbers)
	fmt.Fprintf(p.w, "%s  %d\n", p.st.label.Render("Target:"), pz.Target)
	fmt.Fprintf(p.w, "%s %d | %s %d\n",
		p.st.label.Render("Large numbers:"), pz.LargeCount,
		p.st.label.Render("Small numbers:"), pz.SmallCount())
	fmt.Fprintln(p.w)
}

func (p *Printer) resultText(r domain.Result) {
	fmt.Fprintf(p.w, "%s %s\n", p.st.title.Render(r.SolverName), p.outcome(r.Verdict.Outcome))
	switch r.Verdict.Outcome {
	case domain.Exact:
		fmt.Fprintf(p.w, "  Solution found: %s = %d\n", r.Expression, r.Verdict.Value)
	case domain.Approximate:
		fmt.Fprintf(p.w, "  Solution found: %s = %d (diff: %d)\n", r.Expression, r.Verdict.Value, r.Verdict.Diff)
	case domain.Invalid:
		fmt.Fprintf(p.w, "  Equation error: %s\n", r.Verdict.Error)
	default:
		fmt.Fprintln(p.w, "  No solution found")
	}
	fmt.Fprintln(p.w, p.st.muted.Render(fmt.Sprintf("  %d explored in %v", r.Nodes, round(r.Duration))))
	fmt.Fprintln(p.w)
}

func (p *Printer) outcome(o domain.Outcome) string {
	switch o {
	case domain.Exact:
		return p.st.success.Render("✓ exact")
	case domain.Approximate:
		return p.st.warning.Render("≈ close")
	case domain.Invalid:
		return p.st.failure.Render("✗ invalid")
	default:
		return p.st.muted.Render("○ none")
	}
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case JSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %d has no encoder", p.format)
	}
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }

func round(d time.Duration) time.Duration {
	if d > time.Second {
		return d.Round(time.Millisecond)
	}
	return d.Round(time.Microsecond)
}
