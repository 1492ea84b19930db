package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"popexplorer/internal/engine"
	"popexplorer/internal/models"
)

var printer = message.NewPrinter(language.English)

var (
	topN       int
	exportPath string
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of countries",
	Args:  cobra.NoArgs,
	RunE: withService(func(out io.Writer, svc *engine.Service, _ []string) error {
		printer.Fprintf(out, "%d\n", svc.Count())
		return nil
	}),
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the most populous countries",
	Args:  cobra.NoArgs,
	RunE: withService(func(out io.Writer, svc *engine.Service, _ []string) error {
		names, err := svc.TopN(topN)
		if err != nil {
			return err
		}
		for i, name := range names {
			pop, _ := svc.Population(name)
			fmt.Fprintf(out, "%2d. %-20s %15s\n", i+1, name, printer.Sprintf("%d", pop))
		}
		return nil
	}),
}

var populationCmd = &cobra.Command{
	Use:   "population COUNTRY",
	Short: "Print the population and yearly change of a country",
	Args:  cobra.ExactArgs(1),
	RunE: withService(func(out io.Writer, svc *engine.Service, args []string) error {
		r, ok := svc.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown country %q", args[0])
		}
		fmt.Fprintf(out, "%s (%s): %s, %+.2f%%\n", r.Name, r.Continent, printer.Sprintf("%d", r.Population), r.Change)
		return nil
	}),
}

var continentsCmd = &cobra.Command{
	Use:   "continents",
	Short: "Print the continents in the dataset",
	Args:  cobra.NoArgs,
	RunE: withService(func(out io.Writer, svc *engine.Service, _ []string) error {
		for _, c := range svc.Continents() {
			fmt.Fprintln(out, c)
		}
		return nil
	}),
}

var continentPopulationsCmd = &cobra.Command{
	Use:   "continent-populations",
	Short: "Print the total population of every continent",
	Args:  cobra.NoArgs,
	RunE: withService(func(out io.Writer, svc *engine.Service, _ []string) error {
		totals := svc.ContinentPopulations()
		names := make([]string, 0, len(totals))
		for c := range totals {
			names = append(names, c)
		}
		sort.Strings(names)
		for _, c := range names {
			fmt.Fprintf(out, "%-12s %15s\n", c, printer.Sprintf("%d", totals[c]))
		}
		return nil
	}),
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a per continent summary",
	Args:  cobra.NoArgs,
	RunE: withService(func(out io.Writer, svc *engine.Service, _ []string) error {
		printSummary(out, svc.Summary(topN))
		return nil
	}),
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dataset as an Arrow IPC stream",
	Args:  cobra.NoArgs,
	RunE: withService(func(out io.Writer, svc *engine.Service, _ []string) error {
		if exportPath == "" || exportPath == "-" {
			return svc.Store().WriteArrow(out)
		}
		f, err := os.Create(exportPath)
		if err != nil {
			return err
		}
		if err := svc.Store().WriteArrow(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}),
}

func init() {
	topCmd.Flags().IntVarP(&topN, "top", "n", cfg.DefaultTopN, "number of countries")
	summaryCmd.Flags().IntVarP(&topN, "top", "n", cfg.DefaultTopN, "number of top countries")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(countCmd, topCmd, populationCmd, continentsCmd, continentPopulationsCmd, summaryCmd, exportCmd)
}

// withService loads the dataset before running fn.
func withService(fn func(out io.Writer, svc *engine.Service, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := loadService()
		if err != nil {
			return err
		}
		return fn(cmd.OutOrStdout(), svc, args)
	}
}

func printSummary(out io.Writer, s *models.Summary) {
	printer.Fprintf(out, "Countries:        %d\n", s.Countries)
	printer.Fprintf(out, "World population: %d\n", s.WorldPopulation)
	fmt.Fprintln(out)
	for _, c := range s.Continents {
		fmt.Fprintf(out, "%-12s %15s %4d countries %6.2f%%\n", c.Continent, printer.Sprintf("%d", c.Population), c.Countries, c.Share)
	}
	fmt.Fprintln(out)
	for i, name := range s.TopCountries {
		fmt.Fprintf(out, "%2d. %s\n", i+1, name)
	}
	if s.FastestGrowing != nil {
		fmt.Fprintf(out, "Fastest growing:   %s (%+.2f%%)\n", s.FastestGrowing.Name, s.FastestGrowing.Change)
	}
	if s.FastestShrink != nil {
		fmt.Fprintf(out, "Fastest shrinking: %s (%+.2f%%)\n", s.FastestShrink.Name, s.FastestShrink.Change)
	}
}
