package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/typekit/bench"
	"github.com/wippyai/typekit/mmfile"
	"github.com/wippyai/typekit/parse"
	"github.com/wippyai/typekit/variant"
)

// cellSet is the closed type set a file cell can hold. Numeric members
// compare numerically; everything else falls back to string order.
var cellSet = variant.NewSet(
	variant.Ordered[int64](),
	variant.Ordered[float64](),
	variant.Of[string](),
)

func main() {
	var (
		file        = flag.String("file", "", "Path to delimited text file")
		sep         = flag.String("sep", ",", "Cell separator (single byte)")
		sortRows    = flag.Bool("sort", false, "Sort rows by first cell")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		variant.SetLogger(l)
		bench.SetLogger(l)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: typekit -file <data.csv> [-sep ,] [-sort] [-v]")
		fmt.Fprintln(os.Stderr, "       typekit -i  (interactive mode)")
		os.Exit(1)
	}
	if len(*sep) != 1 {
		fmt.Fprintln(os.Stderr, "Error: -sep must be a single byte")
		os.Exit(1)
	}

	if err := run(*file, (*sep)[0], *sortRows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, sep byte, sortRows bool) error {
	f, err := mmfile.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	timer := bench.Start("parse " + path)
	rows := parseRows(string(f.Bytes()), sep)
	elapsed := timer.Stop()

	if sortRows {
		sort.SliceStable(rows, func(i, j int) bool {
			return firstCell(rows[i]).Less(firstCell(rows[j]))
		})
	}

	fmt.Println(renderRows(rows))
	fmt.Printf("%d rows in %v (%s)\n",
		len(rows), elapsed, bench.Throughput(int64(f.Len()), elapsed))
	return nil
}

// classify parses a cell as int64, then float64, then keeps it as a string.
func classify(cell string) *variant.Value {
	if n, err := parse.To[int64](cell); err == nil {
		return variant.NewValue(cellSet, n)
	}
	if x, err := parse.To[float64](cell); err == nil {
		return variant.NewValue(cellSet, x)
	}
	return variant.NewValue(cellSet, cell)
}

func parseRows(data string, sep byte) [][]*variant.Value {
	var rows [][]*variant.Value
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		cells := parse.Fields(line, sep)
		row := make([]*variant.Value, len(cells))
		for i, cell := range cells {
			row[i] = classify(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

// firstCell returns the sort key for a row; empty rows never reach here
// because parseRows drops blank lines.
func firstCell(row []*variant.Value) *variant.Value {
	return row[0]
}

var (
	intStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	floatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	stringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func renderCell(v *variant.Value) string {
	s := v.String()
	switch {
	case variant.Is[int64](v):
		return intStyle.Render(s)
	case variant.Is[float64](v):
		return floatStyle.Render(s)
	default:
		return stringStyle.Render(s)
	}
}

func renderRows(rows [][]*variant.Value) string {
	var b strings.Builder
	divider := sepStyle.Render(" | ")
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				b.WriteString(divider)
			}
			b.WriteString(renderCell(v))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
