package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// Format selects how a Report is rendered.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by Write and ParseFormat for an unsupported format.
var ErrUnknownFormat = errors.New("bench: unknown format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Report is the outcome of one Runner.Run.
type Report struct {
	RunID     string           `json:"run_id" yaml:"run_id"`
	Seed      int64            `json:"seed" yaml:"seed"`
	Runs      int              `json:"runs" yaml:"runs"`
	StartedAt time.Time        `json:"started_at" yaml:"started_at"`
	Scenarios []ScenarioResult `json:"scenarios" yaml:"scenarios"`
}

// ScenarioResult holds one scenario's results, one per algorithm.
type ScenarioResult struct {
	Name    string   `json:"name" yaml:"name"`
	Nodes   int      `json:"nodes" yaml:"nodes"`
	Edges   int      `json:"edges" yaml:"edges"`
	Source  int      `json:"source" yaml:"source"`
	Target  int      `json:"target" yaml:"target"`
	Agree   bool     `json:"agree" yaml:"agree"`
	Results []Result `json:"results" yaml:"results"`
}

// Result is the fastest run of one algorithm. Distance is nil when the
// target is unreachable.
type Result struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Distance  *float64  `json:"distance" yaml:"distance"`
	Hops      int       `json:"hops" yaml:"hops"`
	Millis    float64   `json:"millis" yaml:"millis"`
	Expanded  int       `json:"expanded" yaml:"expanded"`
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"`

	path     []int
	duration time.Duration
}

// Agree reports whether every scenario passed its checks.
func (r *Report) Agree() bool {
	for _, sc := range r.Scenarios {
		if !sc.Agree {
			return false
		}
	}
	return true
}

// Write renders the report to w.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		return r.writeTable(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func (r *Report) writeTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s  seed=%d  runs=%d\n\n", r.RunID, r.Seed, r.Runs); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 8, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tNODES\tEDGES\tALGORITHM\tDISTANCE\tHOPS\tEXPANDED\tMILLIS\tSTATUS")
	for _, sc := range r.Scenarios {
		for _, res := range sc.Results {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%d\t%d\t%.3f\t%s\n",
				sc.Name, sc.Nodes, sc.Edges, res.Algorithm,
				formatDistance(res.Distance), res.Hops, res.Expanded, res.Millis, status(res))
		}
	}

	return tw.Flush()
}

func formatDistance(d *float64) string {
	if d == nil {
		return "inf"
	}
	return strconv.FormatFloat(*d, 'g', -1, 64)
}

func status(res Result) string {
	if res.Error != "" {
		return "FAIL: " + res.Error
	}
	return "ok"
}
