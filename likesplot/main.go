// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command likesplot draws charts of social media likes.
//
// likesplot reads three CSV files: socialMedia.csv, with one row per
// post giving its Platform, PostType, AgeGroup and Likes;
// socialMediaAvg.csv, with the average likes of each Platform and
// PostType; and socialMediaTime.csv, with the average likes of each
// Date. From these it draws a box plot of likes by age group, a
// grouped bar chart of average likes by platform and post type, and
// a line chart of average likes over time.
//
// The charts are built independently. A chart whose data cannot be
// loaded is reported and replaced on the page by a notice, and the
// others are still drawn.
//
// Usage:
//
//	likesplot render [-o dir] [--format svg,png,html]
//	likesplot summary [--json]
//	likesplot prepare
//	likesplot serve [--addr host:port]
//
// Settings come from an optional YAML file given by --config and
// from LIKESPLOT_* environment variables. See package
// github.com/aclements/likesplot/internal/config.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aclements/likesplot/internal/config"
	"github.com/aclements/likesplot/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "likesplot: %v\n", err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer

	flagConfig   string
	flagDataDir  string
	flagLogLevel string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "likesplot",
		Short: "Draw charts of social media likes",
		Long: `likesplot draws a box plot of likes by age group, a grouped bar chart of
average likes by platform and post type, and a line chart of average
likes over time, from the social media CSV files.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	pf := root.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "read settings from YAML `file`")
	pf.StringVarP(&a.flagDataDir, "data-dir", "C", "", "read CSV files from `dir`")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "log `level` (debug, info, warn, error)")

	root.AddCommand(
		a.renderCmd(),
		a.summaryCmd(),
		a.prepareCmd(),
		a.serveCmd(),
	)
	return root
}

// setup loads the settings, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.Data.Dir = a.flagDataDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Timestamp: cfg.Log.Timestamp,
		Output:    a.stderr,
	})
	if err != nil {
		return err
	}
	cmd.SetContext(logging.WithContext(cmd.Context(), a.log))
	a.log.Debug().Str("command", cmd.Name()).Str("data", cfg.Data.Dir).Msg("starting")
	return nil
}
