package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	ansicolor "github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/peterbourgon/ff/v3/ffcli"

	"code.selman.me/totalmass/internal/input"
	"code.selman.me/totalmass/internal/mass"
)

const (
	defaultElementsPath = "datasource/ElementsMolecularMass.csv"
	defaultUnitsPath    = "datasource/unitconversion.csv"
)

func main() {
	if err := realMain(
		context.Background(),
		os.Stdin,
		os.Stdout,
		os.Stderr,
		os.Args,
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func realMain(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	osargs []string,
) error {
	exec := osargs[0]

	fs := flag.NewFlagSet(exec, flag.ExitOnError)
	fs.SetOutput(stderr)
	flagElements := fs.String("elements", defaultElementsPath, "element molar mass table (csv)")
	flagUnits := fs.String("units", defaultUnitsPath, "unit conversion table (csv)")
	flagJSON := fs.Bool("json", false, "output JSON")
	flagMarkdown := fs.Bool("md", false, "output a markdown table")
	flagForceColor := fs.Bool("fc", false, "force color output")

	rootCmd := &ffcli.Command{
		FlagSet:    fs,
		ShortUsage: fmt.Sprintf("%v [options] [mixture.json]", exec),
		Exec: func(_ context.Context, args []string) error {
			if *flagForceColor {
				ansicolor.NoColor = false
			}

			if *flagJSON && *flagMarkdown {
				return fmt.Errorf("cannot use -json and -md together")
			}

			elements, err := loadElements(*flagElements)
			if err != nil {
				return err
			}

			units, err := loadUnits(*flagUnits)
			if err != nil {
				return err
			}

			in := stdin
			if len(args) > 0 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("mixture: %w", err)
				}
				defer f.Close()
				in = f
			}

			entries, err := input.Mixture(in)
			if err != nil {
				return err
			}

			total := mass.Sum(entries, elements, units, func(e mass.Entry, reason mass.Validation) {
				switch reason {
				case mass.InvalidUnit:
					fmt.Fprintln(stderr, colorSkip.Sprintf("unit {%v} for element %v is not valid, skipping entry", e.Unit, e.Element))
				case mass.InvalidElement:
					fmt.Fprintln(stderr, colorSkip.Sprintf("element {%v} not found in element table, skipping entry", e.Element))
				}
			})

			report := mass.NewReport(total, units)

			switch {
			case *flagJSON:
				return writeJSON(stdout, report)
			case *flagMarkdown:
				return writeMarkdown(stdout, report)
			default:
				_, err := fmt.Fprintf(stdout, "Total mass: %v grams or %v lbs\n", report.GramsDisplay(), report.PoundsDisplay())
				return err
			}
		},
	}

	return rootCmd.ParseAndRun(ctx, osargs[1:])
}

func loadElements(path string) (mass.ElementTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("elements table: %w", err)
	}
	defer f.Close()

	return input.Elements(f)
}

func loadUnits(path string) (mass.UnitTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("units table: %w", err)
	}
	defer f.Close()

	return input.Units(f)
}

func writeJSON(w io.Writer, report mass.Report) error {
	v, err := json.Marshal(struct {
		Grams  string `json:"grams"`
		Pounds string `json:"pounds"`
	}{
		Grams:  report.GramsDisplay(),
		Pounds: report.PoundsDisplay(),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", v)
	return err
}

func writeMarkdown(w io.Writer, report mass.Report) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"unit", "total"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.Append([]string{"grams", report.GramsDisplay()})
	table.Append([]string{"lbs", report.PoundsDisplay()})
	table.Render()

	return nil
}

var colorSkip = ansicolor.New(ansicolor.FgYellow)
