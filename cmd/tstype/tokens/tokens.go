/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokens

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tstype/cmd/tstype/source"
	"github.com/dburkart/tstype/pkg/output"
	"github.com/dburkart/tstype/pkg/ts/scanner"
)

var Command = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token buffer of the input",
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		name, input, err := source.Read(args)
		if err != nil {
			return err
		}

		toks, err := scanner.Tokenize(input)
		if err != nil {
			source.Report(os.Stderr, name, input, err)
			return err
		}
		log.Debug().Str("file", name).Int("tokens", len(toks)).Msg("tokenized")

		return output.NewWriter(os.Stdout, viper.GetString("tstype.output")).Write(output.Tokens(toks))
	},
}
