/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/tstype/cmd/tstype/source"
	"github.com/dburkart/tstype/pkg/repl"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt that parses each line as a type",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		session := repl.NewSession(os.Stdout, viper.GetString("tstype.output"), log, source.Options(log)...)
		return readlinePrompt(session, viper.GetString("tstype.repl.history"))
	},
}

func init() {
	home, _ := os.UserHomeDir()

	// Flags for this command
	Command.Flags().String("history", filepath.Join(home, ".tstype_history"), "File to keep prompt history in")

	// Bind flags to viper
	viper.BindPFlag("tstype.repl.history", Command.Flags().Lookup("history"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(session *repl.Session, history string) error {
	// Configure the completer
	items := []readline.PrefixCompleterInterface{}
	for _, c := range repl.Commands {
		items = append(items, readline.PcItem(":"+c))
	}
	completer := readline.NewPrefixCompleter(items...)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m" + session.Prompt() + "\033[0m",
		HistoryFile:     history,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		if !session.Eval(ln.Line) {
			break
		}
		rl.SetPrompt("\033[31m" + session.Prompt() + "\033[0m")
	}
	rl.Clean()
	return nil
}
