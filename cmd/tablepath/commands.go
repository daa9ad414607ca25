package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"table-binder/fieldpath"
	"table-binder/internal/diagnostic"
	"table-binder/table"
)

var errCheckFailed = errors.New("check failed")

type cli struct {
	out       io.Writer
	logger    *slog.Logger
	logLevel  string
	logFormat string
	dump      bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out}

	rootCmd := &cobra.Command{
		Use:           "tablepath",
		Short:         "Inspect fixture table headers and files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = newLogger(c.logLevel, c.logFormat, errOut)
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "Log format: text or json")

	parseCmd := &cobra.Command{
		Use:   "parse HEADER...",
		Short: "Split header paths into segments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.parse(args)
		},
	}
	parseCmd.Flags().BoolVar(&c.dump, "dump", false, "Dump the parsed paths")

	checkCmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Lint YAML table files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.check(args)
		},
	}

	rootCmd.AddCommand(parseCmd, checkCmd)

	return rootCmd
}

func (c *cli) parse(headers []string) error {
	paths, err := fieldpath.ParseAll(headers)
	if err != nil {
		return err
	}

	if c.dump {
		spew.Fdump(c.out, paths)
		return nil
	}

	for _, p := range paths {
		fmt.Fprintln(c.out, p.Raw)

		for _, seg := range p.Segments {
			fmt.Fprintf(c.out, "  %-16s %s\n", seg.Type(), seg)
		}
	}

	return nil
}

func (c *cli) check(files []string) error {
	var total diagnostic.Diagnostics

	failed := 0

	for _, file := range files {
		tbl, err := table.LoadFile(file)
		if err != nil {
			return err
		}

		diags := table.Lint(tbl)
		for _, d := range diags.All() {
			fmt.Fprintf(c.out, "%s: %s: %s\n", file, d.Severity, d)
		}

		c.logger.Debug("checked table", "file", file, "columns", len(tbl.Header), "rows", len(tbl.Rows))

		if diags.HasErrors() {
			failed++
		}

		total.Merge(diags)
	}

	if err := total.Error(); err != nil {
		c.logger.Debug("check failed", "errors", len(total.Errors), "detail", err)

		return fmt.Errorf("%w: %d of %d files", errCheckFailed, failed, len(files))
	}

	fmt.Fprintf(c.out, "%d files ok\n", len(files))

	return nil
}
