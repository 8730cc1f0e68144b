// Copyright 2026 The swdprobe Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cli

import "sort"

// command is one entry of the command table. name is canonical;
// aliases are additional spellings that resolve to the same handler.
type command struct {
	name    string
	aliases []string
	arity   int // -1 means "variable, handler checks itself"
	usage   string
	help    string
	handler func(r *REPL, args []string) error
}

func buildCommandTable() map[string]*command {
	commands := []*command{
		{
			name: "help", aliases: []string{"h"}, arity: 0,
			usage: "help", help: "Print command list.",
			handler: (*REPL).cmdHelp,
		},
		{
			name: "init", aliases: []string{"i"}, arity: 0,
			usage: "init", help: "Run link bring-up (line reset, JTAG-to-SWD, power-up DP/AP).",
			handler: (*REPL).cmdInit,
		},
		{
			name: "status", aliases: []string{"d"}, arity: 0,
			usage: "status", help: "Read DHCSR; report core state.",
			handler: (*REPL).cmdStatus,
		},
		{
			name: "halt", arity: 0,
			usage: "halt", help: "Halt the core.",
			handler: (*REPL).cmdHalt,
		},
		{
			name: "continue", aliases: []string{"c"}, arity: 0,
			usage: "continue", help: "Resume the core.",
			handler: (*REPL).cmdContinue,
		},
		{
			name: "reset", arity: 0,
			usage: "reset", help: "Reset-halt: hold the core at reset with debug enabled.",
			handler: (*REPL).cmdReset,
		},
		{
			name: "step", aliases: []string{"s"}, arity: 0,
			usage: "step", help: "Single-step; print the new PC.",
			handler: (*REPL).cmdStep,
		},
		{
			name: "pc", arity: 0,
			usage: "pc", help: "Read PC.",
			handler: (*REPL).cmdPC,
		},
		{
			name: "load", arity: 1,
			usage: "load <name>", help: "Load a built-in image (blink, simple) and set PC/MSP to its entry; the core stays halted.",
			handler: (*REPL).cmdLoad,
		},
		{
			name: "set", arity: 2,
			usage: "set <hex-addr> <hex-value>", help: "Write a 32-bit word to memory.",
			handler: (*REPL).cmdSet,
		},
		{
			name: "read", arity: 1,
			usage: "read <hex-addr>|$<reg>", help: "Read a memory word or a core register.",
			handler: (*REPL).cmdRead,
		},
		{
			name: "trace", arity: 1,
			usage: "trace on|off", help: "Switch the logger between debug and info level.",
			handler: (*REPL).cmdTrace,
		},
	}
	table := make(map[string]*command, len(commands)*2)
	for _, c := range commands {
		table[c.name] = c
		for _, alias := range c.aliases {
			table[alias] = c
		}
	}
	return table
}

// helpLines renders one line per canonical command, sorted for stable
// output, used by "help".
func helpLines(table map[string]*command) []string {
	seen := map[*command]bool{}
	var lines []string
	var names []string
	byName := map[string]*command{}
	for _, c := range table {
		if seen[c] {
			continue
		}
		seen[c] = true
		names = append(names, c.name)
		byName[c.name] = c
	}
	sort.Strings(names)
	for _, n := range names {
		c := byName[n]
		lines = append(lines, c.usage+" — "+c.help)
	}
	return lines
}
