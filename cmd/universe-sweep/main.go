package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"universe-game/internal/app"
	"universe-game/internal/sweep"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cell   = lipgloss.NewStyle().Padding(0, 1)
)

// floatList is a comma separated list of numbers.
type floatList []float64

func (f *floatList) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *floatList) Set(v string) error {
	var out floatList
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		x, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("parse %q: %w", part, err)
		}
		out = append(out, x)
	}
	if len(out) == 0 {
		return fmt.Errorf("empty list")
	}
	*f = out
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 500, "ticks to simulate per point")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "rows to print; 0 prints every point")
	betas := floatList{-4, -2, -1, -0.5, 0.5, 1, 2, 4}
	chances := floatList{0, 0.01, 0.05, 0.1, 0.25}
	flag.Var(&betas, "betas", "comma separated turn gains to sweep")
	flag.Var(&chances, "chances", "comma separated global-radius chances to sweep")
	flag.Parse()

	base, _, err := cfg.RunConfig()
	if err != nil {
		log.Fatalf("resolve config: %v", err)
	}

	pts := sweep.Grid(betas, chances)
	fmt.Println(cyan.Render(fmt.Sprintf("Sweeping %d points", len(pts))) +
		dim.Render(fmt.Sprintf(" (%d workers, %d steps, seed %d)", *workers, *steps, base.Seed)))

	start := time.Now()
	results := sweep.Run(base, pts, *steps, *workers, base.Seed)
	elapsed := time.Since(start)

	rows := results
	if *top > 0 && len(rows) > *top {
		rows = rows[:*top]
	}
	fmt.Println(renderTable(rows))

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	summary := white.Render(fmt.Sprintf("%d runs in %s", len(results), elapsed.Round(time.Millisecond)))
	if failed > 0 {
		summary += red.Render(fmt.Sprintf(", %d failed", failed))
	}
	fmt.Println(summary)
	if failed == len(results) {
		os.Exit(1)
	}
}

func renderTable(results []sweep.Result) string {
	rows := make([][]string, 0, len(results))
	for i, res := range results {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(res.Beta, 'g', -1, 64),
			strconv.FormatFloat(res.Chance, 'g', -1, 64),
		}
		if res.Err != nil {
			row = append(row, "-", "-", res.Err.Error())
		} else {
			row = append(row, fmt.Sprintf("%.4f", res.Polarization), fmt.Sprintf("%.3f", res.Gyration), "")
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dim).
		Headers("#", "beta", "chance", "polarization", "gyration", "error").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == 0:
				return header
			case col == 3 && row == 1:
				return cell.Inherit(green)
			case col == 5:
				return cell.Inherit(red)
			}
			return cell
		}).
		String()
}
