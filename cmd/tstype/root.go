/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tstype

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tstype/cmd/tstype/check"
	"github.com/dburkart/tstype/cmd/tstype/parse"
	"github.com/dburkart/tstype/cmd/tstype/repl"
	"github.com/dburkart/tstype/cmd/tstype/tokens"
	"github.com/dburkart/tstype/pkg/ts/parser"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "tstype",
		Short: "tstype parses TypeScript type annotations and declarations",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", false, "Configures the logger to print readable logs (default when stdout is a terminal)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format [text, json, yaml, csv]")
	rootCmd.PersistentFlags().Int("max-depth", parser.DefaultMaxDepth, "Maximum grammar nesting before a parse is rejected")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the tstype config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("tstype.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("tstype.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("tstype.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("tstype.max-depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("tstype version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	for _, cmd := range []*cobra.Command{parse.Command, tokens.Command, check.Command, repl.Command} {
		cmd.Version = rootCmd.Version
		rootCmd.AddCommand(cmd)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
