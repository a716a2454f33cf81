/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package check

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/dburkart/tstype/cmd/tstype/source"
	"github.com/dburkart/tstype/pkg/metrics"
	"github.com/dburkart/tstype/pkg/output"
	"github.com/dburkart/tstype/pkg/ts/parser"
)

// fileReport is the outcome of checking one file.
type fileReport struct {
	name   string
	input  string
	size   int
	result source.Result
	err    error
}

func (r fileReport) status() string {
	switch {
	case r.err != nil:
		return "failed"
	case len(r.result.Diagnostics) > 0:
		return "diagnostics"
	}
	return "ok"
}

type reports []fileReport

func (r reports) Headers() []string {
	return []string{"file", "status", "size", "tokens", "diagnostics", "elapsed"}
}

func (r reports) Values() [][]string {
	rows := make([][]string, 0, len(r))
	for _, report := range r {
		rows = append(rows, []string{
			report.name,
			report.status(),
			humanize.Bytes(uint64(report.size)),
			humanize.Comma(int64(len(report.result.Tokens))),
			strconv.Itoa(len(report.result.Diagnostics)),
			report.result.Elapsed.String(),
		})
	}
	return rows
}

var Command = &cobra.Command{
	Use:   "check files...",
	Short: "Parse many files in parallel and summarize the results",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		store := metrics.NewStore()

		failed := run(cmd.Context(), log, store, args)
		if path := viper.GetString("tstype.metrics-file"); path != "" {
			if err := store.WriteTextfile(path); err != nil {
				return err
			}
		}

		if viper.GetBool("tstype.watch") {
			return watch(log, store, args)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
		}
		return nil
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("jobs", "j", runtime.NumCPU(), "Number of files parsed concurrently")
	Command.Flags().String("metrics-file", "", "Write prometheus metrics to this file after each run")
	Command.Flags().BoolP("watch", "w", false, "Re-check files when they change")
	Command.Flags().String("kind", source.KindModule, "Parse each file as a module, type or expr")

	// Bind flags to viper
	viper.BindPFlag("tstype.jobs", Command.Flags().Lookup("jobs"))
	viper.BindPFlag("tstype.metrics-file", Command.Flags().Lookup("metrics-file"))
	viper.BindPFlag("tstype.watch", Command.Flags().Lookup("watch"))
	viper.BindPFlag("tstype.check.kind", Command.Flags().Lookup("kind"))
}

// checkFile parses one file. Parse failures are recorded in the report
// rather than returned, so one bad file does not cancel the others.
func checkFile(log zerolog.Logger, store metrics.Store, kind, name string) fileReport {
	report := fileReport{name: name}

	b, err := os.ReadFile(name)
	if err != nil {
		report.err = errors.Wrapf(err, "reading %s", name)
		return report
	}
	report.input = string(b)
	report.size = len(b)

	opts := source.Options(log.With().Str("file", name).Logger(), parser.WithObserver(store))
	report.result, report.err = source.Parse(kind, report.input, opts...)

	result := "ok"
	if report.err != nil {
		result = "failed"
	}
	store.IncParses(kind, result)
	store.ObserveDiagnostics(report.result.Diagnostics)
	store.ObserveParseNS(kind, report.result.Elapsed.Nanoseconds())
	return report
}

// run checks every file, prints the summary and returns how many failed.
func run(ctx context.Context, log zerolog.Logger, store metrics.Store, files []string) int {
	if ctx == nil {
		ctx = context.Background()
	}
	kind := viper.GetString("tstype.check.kind")
	results := make(reports, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, viper.GetInt("tstype.jobs")))
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(log, store, kind, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("check interrupted")
	}

	failed, size, tokens := 0, 0, 0
	for _, report := range results {
		size += report.size
		tokens += len(report.result.Tokens)
		if report.err != nil {
			failed++
			source.Report(os.Stderr, report.name, report.input, report.err)
		}
		for _, d := range report.result.Diagnostics {
			d := d
			source.Report(os.Stderr, report.name, report.input, &d)
		}
	}

	writer := output.NewWriter(os.Stdout, viper.GetString("tstype.output"))
	if err := writer.Write(results); err != nil {
		log.Error().Err(err).Msg("unable to write results")
	}

	log.Info().
		Int("files", len(files)).
		Int("failed", failed).
		Str("size", humanize.Bytes(uint64(size))).
		Str("tokens", humanize.Comma(int64(tokens))).
		Msg("check complete")

	return failed
}

// watch re-checks a file whenever it is written, until interrupted.
func watch(log zerolog.Logger, store metrics.Store, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer watcher.Close()

	// Editors often replace files, so watch the directories.
	watched := map[string]bool{}
	targets := map[string]string{}
	for _, name := range files {
		abs, err := filepath.Abs(name)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", name)
		}
		targets[abs] = name

		dir := filepath.Dir(abs)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "watching %s", dir)
		}
		watched[dir] = true
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	log.Info().Int("files", len(files)).Msg("watching for changes")
	for {
		select {
		case <-interrupt:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, ok := targets[event.Name]
			if !ok {
				continue
			}

			log.Debug().Str("file", name).Str("op", event.Op.String()).Msg("file changed")
			run(context.Background(), log, store, []string{name})
			if path := viper.GetString("tstype.metrics-file"); path != "" {
				if err := store.WriteTextfile(path); err != nil {
					log.Error().Err(err).Send()
				}
			}
		}
	}
}
