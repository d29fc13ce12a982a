// Package report renders benchmark results as plain-text tables. It is
// exclusively presentational: the only arithmetic is the speedup ratio.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"symbench/internal/domain"
)

// Reporter writes benchmark tables to a single destination, normally
// stdout. It holds no state beyond the writer.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Header prints the run banner: iteration count and pool size.
func (r *Reporter) Header(iterations, poolSize int) {
	fmt.Fprintf(r.w, "symbench - symbol interning vs direct string comparison\n")
	fmt.Fprintf(r.w, "Iterations : %d\n", iterations)
	fmt.Fprintf(r.w, "Symbol pool: %d unique symbols\n\n", poolSize)
}

// OneToOne prints the single-match scenario table and its speedup line.
func (r *Reporter) OneToOne(res domain.ScenarioResult) {
	fmt.Fprintf(r.w, "---> 1-to-1  (one lookup / comparison per incoming symbol)\n")
	r.pathTable("Registry (lookup + ID cmp)", "Direct string cmp", res.PathTimes, res.Matches)
	r.speedupLine(res.PathTimes)
}

// Fanout prints one amortized-scenario table and its speedup line.
func (r *Reporter) Fanout(res domain.FanoutResult) {
	fmt.Fprintf(r.w, "\n---> 1-to-many  fanout=%d  (one lookup reused across N operations)\n", res.Fanout)
	r.pathTable("Registry (lookup + NxID cmp)", "Direct Nxstring cmp", res.PathTimes, res.Matches)
	r.speedupLine(res.PathTimes)
}

func (r *Reporter) pathTable(regLabel, dirLabel string, t domain.PathTimes, matches uint64) {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Method\tTime (ms)\tMatches")
	fmt.Fprintln(tw, strings.Repeat("-", 30)+"\t---------\t-------")
	fmt.Fprintf(tw, "%s\t%.3f\t%d\n", regLabel, t.RegistryMS, matches)
	fmt.Fprintf(tw, "%s\t%.3f\t%d\n", dirLabel, t.DirectMS, matches)
	tw.Flush()
}

func (r *Reporter) speedupLine(t domain.PathTimes) {
	mag := t.Magnitude().StringFixed(2)
	if t.Winner() == "Registry" {
		fmt.Fprintf(r.w, "  Registry is %sx faster than direct.\n", mag)
	} else {
		fmt.Fprintf(r.w, "  Direct is %sx faster than registry.\n", mag)
	}
}

// Summary prints the final fanout-sweep table: one row per swept factor.
func (r *Reporter) Summary(results []domain.FanoutResult) {
	fmt.Fprintf(r.w, "\n\n--> 1-to-many summary (fanout sweep)\n")

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Fanout\tReg (ms)\tDir (ms)\tSpeedup\tWinner\t")
	fmt.Fprintln(tw, "------\t--------\t--------\t-------\t------\t")
	for _, res := range results {
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%s\t%s\t\n",
			res.Fanout, res.RegistryMS, res.DirectMS,
			res.Magnitude().StringFixed(2), res.Winner())
	}
	tw.Flush()
	fmt.Fprintln(r.w)
}
