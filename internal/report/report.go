// Package report formats clustering results for humans and machines.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/thebtf/medoids/pkg/kmedoids"
)

// Format selects an output layout.
type Format string

const (
	// FormatText is the plain console layout: "K  ||  SSE  ||  1: n tweets".
	FormatText Format = "text"
	// FormatTable renders one table row per K.
	FormatTable Format = "table"
	// FormatJSON writes an indented JSON array.
	FormatJSON Format = "json"
)

const divider = "  ||  "

// ParseFormat validates a format name. An empty name means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Row is the report for a single K.
type Row struct {
	// Counts maps 0-based cluster ids to member counts. Nil when Err is set.
	Counts     map[int]int `json:"clusters,omitempty"`
	Err        string      `json:"error,omitempty"`
	K          int         `json:"k"`
	Iterations int         `json:"iterations,omitempty"`
	SSE        float64     `json:"sse"`
	Converged  bool        `json:"converged"`
}

// FromResult builds a row from a finished run.
func FromResult(res *kmedoids.Result) Row {
	counts := make(map[int]int, len(res.Counts))
	for id, n := range res.Counts {
		counts[id] = n
	}
	return Row{
		K:          res.K,
		SSE:        res.SSE,
		Counts:     counts,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}
}

// FromError builds a row for a K whose run failed.
func FromError(k int, err error) Row {
	return Row{K: k, Err: err.Error()}
}

// ids returns cluster ids in ascending order.
func (r Row) ids() []int {
	ids := make([]int, 0, len(r.Counts))
	for id := range r.Counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Write renders rows to w in the given format.
func Write(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatText, "":
		return writeText(w, rows)
	case FormatTable:
		return writeTable(w, rows)
	case FormatJSON:
		return writeJSON(w, rows)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func formatSSE(sse float64) string {
	return strconv.FormatFloat(sse, 'g', -1, 64)
}

// writeText prints each K on its own block. Cluster numbers are 1-based and
// continuation lines are padded to line up under the first one.
func writeText(w io.Writer, rows []Row) error {
	var b strings.Builder
	for _, r := range rows {
		k := strconv.Itoa(r.K)
		if r.Err != "" {
			fmt.Fprintf(&b, "%s%serror: %s\n\n", k, divider, r.Err)
			continue
		}

		sse := formatSSE(r.SSE)
		pad := strings.Repeat(" ", len(k)+len(sse)+2*len(divider))

		b.WriteString(k + divider + sse + divider)
		for i, id := range r.ids() {
			if i > 0 {
				b.WriteString(pad)
			}
			fmt.Fprintf(&b, "%d: %d tweets\n", id+1, r.Counts[id])
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(w io.Writer, rows []Row) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"K", "SSE", "Iterations", "Converged", "Empty", "Cluster sizes"})
	table.SetAutoWrapText(false)

	for _, r := range rows {
		if r.Err != "" {
			table.Append([]string{strconv.Itoa(r.K), "-", "-", "-", "-", "error: " + r.Err})
			continue
		}

		empty := 0
		sizes := make([]string, 0, len(r.Counts))
		for _, id := range r.ids() {
			n := r.Counts[id]
			if n == 0 {
				empty++
			}
			sizes = append(sizes, fmt.Sprintf("%d:%d", id+1, n))
		}
		table.Append([]string{
			strconv.Itoa(r.K),
			formatSSE(r.SSE),
			strconv.Itoa(r.Iterations),
			strconv.FormatBool(r.Converged),
			strconv.Itoa(empty),
			strings.Join(sizes, " "),
		})
	}

	table.Render()
	return nil
}

func writeJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
