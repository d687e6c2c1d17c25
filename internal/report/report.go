package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tabstat/domain/stats"
	"tabstat/domain/table"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Width of banners and rules
const Width = 50

// Rule writes a line of '='
func Rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", Width))
}

// Banner writes a title centered between two rules
func Banner(w io.Writer, title string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(w)
	Rule(w)
	fmt.Fprintln(w, bold(Center(title, Width)))
	Rule(w)
}

// Center pads s with spaces to width runes
func Center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

// Statistics writes the metrics of result as a two-column table. An empty
// result is reported as having nothing to analyze.
func Statistics(w io.Writer, result stats.Result) {
	if result.Empty() {
		fmt.Fprintln(w, "\nNenhum dado para analisar!")
		return
	}

	Banner(w, "ANÁLISE ESTATÍSTICA")

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Métrica", "Valor"})
	tbl.SetAutoFormatHeaders(false)
	tbl.SetBorder(true)
	tbl.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, metric := range result.Ordered() {
		tbl.Append([]string{metric.Label(), FormatMetric(metric)})
	}
	tbl.Render()
}

// FormatMetric renders counts as integers and everything else with four decimals
func FormatMetric(m stats.Metric) string {
	if m.IsCount() {
		return strconv.Itoa(int(m.Value))
	}
	return strconv.FormatFloat(m.Value, 'f', 4, 64)
}

// Table writes a preview of t with a leading row index column
func Table(w io.Writer, t *table.Table) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(append([]string{""}, t.Names()...))
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAutoWrapText(false)
	tbl.SetBorder(true)

	for i, row := range t.Rows() {
		tbl.Append(append([]string{strconv.Itoa(i)}, row...))
	}
	tbl.Render()
}
