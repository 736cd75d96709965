package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc23/almanac"
	"github.com/katalvlaran/aoc23/input"
	"github.com/katalvlaran/aoc23/pipes"
	"github.com/katalvlaran/aoc23/springs"
)

// solver computes the answers of one day from its input lines.
type solver func(cfg *Config, lines []string, out io.Writer) error

func newRootCmd(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Run daily puzzle solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("input-dir", ".", "directory holding dayN/input.txt files")
	root.PersistentFlags().BoolP("verbose", "v", false, "log parse and solve timings")
	root.PersistentFlags().String("env-file", ".env", "optional dotenv file with AOC_* settings")
	root.PersistentFlags().Int("unfold", 5, "copies per record for day 12 task 2")

	root.AddCommand(
		dayCmd("day5", "Seed locations through the almanac stages", solveDay5),
		dayCmd("day10", "Farthest point of the pipe loop", solveDay10),
		dayCmd("day12", "Damaged spring arrangements", solveDay12),
	)
	root.SetArgs(args)
	return root
}

func dayCmd(day, short string, solve solver) *cobra.Command {
	return &cobra.Command{
		Use:   day + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := loadConfig(cmd.Flags(), envFile)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			path := cfg.inputPath(day, args)
			start := time.Now()
			lines, err := input.ReadFile(path)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				log.Printf("%s: read %d lines from %s in %s", day, len(lines), path, time.Since(start))
			}

			start = time.Now()
			if err := solve(cfg, lines, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("%s: %w", day, err)
			}
			if cfg.Verbose {
				log.Printf("%s: solved in %s", day, time.Since(start))
			}
			return nil
		},
	}
}

func solveDay5(_ *Config, lines []string, out io.Writer) error {
	a, err := almanac.Parse(lines)
	if err != nil {
		return err
	}
	task1, err := a.LowestLocation()
	if err != nil {
		return err
	}
	task2, err := a.LowestRangeLocation()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Day5 Task1 result: %d\n", task1)
	fmt.Fprintf(out, "Day5 Task2 result: %d\n", task2)
	return nil
}

func solveDay10(_ *Config, lines []string, out io.Writer) error {
	g, err := pipes.Parse(lines)
	if err != nil {
		return err
	}
	task1, err := pipes.Farthest(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Day10 Task1 result: %d\n", task1)
	return nil
}

func solveDay12(cfg *Config, lines []string, out io.Writer) error {
	task1, err := springs.Sum(lines, 1)
	if err != nil {
		return err
	}
	task2, err := springs.Sum(lines, cfg.Unfold)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Day12 Task1 result: %d\n", task1)
	fmt.Fprintf(out, "Day12 Task2 result: %d\n", task2)
	return nil
}
