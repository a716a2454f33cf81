/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tstype/cmd/tstype/source"
	"github.com/dburkart/tstype/pkg/output"
)

var errParseFailed = errors.New("parse failed")

var Command = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a module, type or expression and print its syntax tree",
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		kind := source.KindModule
		if viper.GetBool("tstype.parse.type") {
			kind = source.KindType
		} else if viper.GetBool("tstype.parse.expr") {
			kind = source.KindExpr
		}

		name, input, err := source.Read(args)
		if err != nil {
			return err
		}

		result, err := source.Parse(kind, input, source.Options(log)...)
		if err != nil {
			source.Report(os.Stderr, name, input, err)
			return errParseFailed
		}
		log.Debug().Str("file", name).Str("kind", kind).Dur("elapsed", result.Elapsed).Int("tokens", len(result.Tokens)).Msg("parsed")

		writer := output.NewWriter(os.Stdout, viper.GetString("tstype.output"))
		if err := writer.WriteNode(result.Node); err != nil {
			return err
		}
		if len(result.Diagnostics) > 0 {
			return writer.Write(output.Diagnostics{Input: input, Errors: result.Diagnostics})
		}
		return nil
	},
}

func init() {
	// Flags for this command
	Command.Flags().Bool("type", false, "Parse the input as a single type")
	Command.Flags().Bool("expr", false, "Parse the input as a single expression")
	Command.MarkFlagsMutuallyExclusive("type", "expr")

	// Bind flags to viper
	viper.BindPFlag("tstype.parse.type", Command.Flags().Lookup("type"))
	viper.BindPFlag("tstype.parse.expr", Command.Flags().Lookup("expr"))
}
