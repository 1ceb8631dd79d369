// Package cli is the colorconv command: converts colors between hex, rgb and
// hsl, either for its arguments or interactively.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/devtools/colormodel"
	"fortio.org/devtools/tcolor"
	"fortio.org/devtools/terminal"
	"fortio.org/log"
)

func Main() int {
	configFlag := flag.String("config", "", "TOML `file` with default settings (default, truecolor, width, prompt)")
	defaultFlag := flag.String("default", string(colormodel.Default), "Starting `color` for interactive mode")
	trueColorFlag := flag.Bool("truecolor", tcolor.DetectColorOutput().TrueColor,
		"Use 24 bit color escapes (default from COLORTERM), 256 colors otherwise")
	widthFlag := flag.Int("width", DefaultWidth, "Color swatch `width`, 0 to disable")
	cli.MinArgs = 0
	cli.MaxArgs = -1
	cli.ArgsHelp = " [color...]\nConverts each color (#rgb, #rrggbb, rgb(r,g,b), hsl(h,s,l) or a name)" +
		" to hex, rgb and hsl.\nWithout arguments, starts an interactive editor."
	cli.Main()
	base := Config{
		Default:   *defaultFlag,
		TrueColor: *trueColorFlag,
		Width:     *widthFlag,
	}
	cfg, err := LoadConfig(*configFlag, base)
	if err != nil {
		return log.FErrf("Configuration error: %v", err)
	}
	applyFlags(&cfg, flag.CommandLine, defaultFlag, trueColorFlag, widthFlag)
	if err = cfg.validate(); err != nil {
		return log.FErrf("Configuration error: %v", err)
	}
	if flag.NArg() > 0 {
		return Convert(os.Stdout, cfg, flag.Args())
	}
	return Interactive(cfg)
}

// Convert prints every color in args, returns 1 if any of them is invalid.
func Convert(out io.Writer, cfg Config, args []string) int {
	co := tcolor.ColorOutput{TrueColor: cfg.TrueColor}
	ret := 0
	for _, a := range args {
		c, err := colormodel.Parse(a)
		if err != nil {
			log.Errf("%v", err)
			ret = 1
			continue
		}
		fmt.Fprintln(out, Describe(co, cfg.Width, c, "", c, c.HSL(), string(c.Hex())))
	}
	return ret
}

// Describe is the one line rendering of a color: swatch (with an optional
// label), hex, rgb, hsl and name if any.
func Describe(co tcolor.ColorOutput, width int, swatch colormodel.RGB, label string,
	rgb colormodel.RGB, hsl colormodel.HSL, hex string,
) string {
	var b strings.Builder
	if width > 0 {
		b.WriteString(co.Swatch(swatch, width, label))
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "%-8s %-18s %s", hex, rgb, hsl)
	if n, ok := colormodel.NameOf(rgb); ok {
		b.WriteString(" ")
		b.WriteString(n)
	}
	return b.String()
}

func Interactive(cfg Config) int {
	t, err := terminal.Open()
	if err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer t.Close()
	t.LoggerSetup()
	t.SetPrompt(cfg.Prompt)
	t.SetAutoCompleteCallback(terminal.PrefixCompleter(Commands))
	s, err := NewSession(t.Out, cfg)
	if err != nil {
		return log.FErrf("Error: %v", err)
	}
	if t.IsTerminal() {
		fmt.Fprintln(t.Out, "Type help for the list of commands, tab completes.")
	}
	s.Render()
	for {
		l, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			log.LogVf("EOF received, exiting.")
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		if s.Exec(l) {
			return 0
		}
	}
}
