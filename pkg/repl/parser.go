/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
)

const (
	CommandSource = ""
	CommandType   = "type"
	CommandModule = "module"
	CommandExpr   = "expr"
	CommandTokens = "tokens"
	CommandHelp   = "help"
	CommandQuit   = "quit"
)

// Commands lists every ':' command, for completion and help.
var Commands = []string{CommandType, CommandModule, CommandExpr, CommandTokens, CommandHelp, CommandQuit}

// Command is one line of input. Source lines have an empty Name and carry
// the text to parse in Arg.
type Command struct {
	Name string
	Arg  string
}

// ParseREPLCommand parses input from the command line
//
// This function assumes there is no '\n'
func ParseREPLCommand(b []byte) Command {
	b = bytes.TrimSpace(b)
	if !bytes.HasPrefix(b, []byte(":")) {
		return Command{Name: CommandSource, Arg: string(b)}
	}

	// commands may take an argument after a space, like ":type string[]"
	b = b[1:]
	cmd, arg := b, []byte{}
	if ind := bytes.IndexByte(b, ' '); ind != -1 {
		cmd, arg = b[:ind], bytes.TrimSpace(b[ind+1:])
	}

	name := strings.ToLower(string(cmd))
	switch name {
	case "exit", "q":
		name = CommandQuit
	case "t":
		name = CommandType
	case "m":
		name = CommandModule
	case "e":
		name = CommandExpr
	case "?", "h":
		name = CommandHelp
	}
	return Command{Name: name, Arg: string(arg)}
}
