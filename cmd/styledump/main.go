/*
Command styledump styles a scene and prints the resolved property values.

Usage:

    styledump [flags] scene.yaml

The scene is described in YAML (see nodeDesc). Stylesheets are given with
--ua (default user-agent stylesheet) and --css (author stylesheets, may be
repeated). The output lists every node with value, origin and override state
of its styleable properties, or a GraphViz diagram with --dot.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/scenecss/scene"
	"github.com/npillmayer/scenecss/style/cssom"
	"github.com/npillmayer/scenecss/style/cssom/douceuradapter"
	"github.com/npillmayer/scenecss/style/styledbg"
	"github.com/spf13/pflag"
)

var traceKeys = []string{
	"scenecss.style", "scenecss.css", "scenecss.cssom", "scenecss.cascade", "scenecss.scene",
}

type options struct {
	ua     string
	css    []string
	props  []string
	dot    bool
	trace  string
	pulses int
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "styledump: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var opts options
	flags := pflag.NewFlagSet("styledump", pflag.ContinueOnError)
	flags.StringVar(&opts.ua, "ua", "", "default user-agent stylesheet")
	flags.StringArrayVarP(&opts.css, "css", "c", nil, "author stylesheet (repeatable)")
	flags.StringSliceVarP(&opts.props, "props", "p", nil, "properties to list (default: all)")
	flags.BoolVar(&opts.dot, "dot", false, "print a GraphViz diagram instead of a tree")
	flags.StringVar(&opts.trace, "trace", "error", "trace level: error, info or debug")
	flags.IntVar(&opts.pulses, "pulses", 1, "number of pulses to run")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: styledump [flags] scene.yaml")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected exactly one scene description, have %d", flags.NArg())
	}
	if err := setTraceLevel(opts.trace); err != nil {
		return err
	}
	desc, err := loadScene(flags.Arg(0))
	if err != nil {
		return err
	}
	sc, err := buildScene(desc, &opts)
	if err != nil {
		return err
	}
	for i := 0; i < opts.pulses; i++ {
		sc.Pulse()
	}
	if opts.dot {
		return styledbg.ToGraphViz(sc.Root(), out)
	}
	_, err = io.WriteString(out, styledbg.Dump(sc.Root(), opts.props...))
	return err
}

func buildScene(desc *sceneDesc, opts *options) (*scene.Scene, error) {
	reg := cssom.NewRegistry(douceuradapter.InlineParser{})
	if opts.ua != "" {
		sheet, err := douceuradapter.Load(opts.ua)
		if err != nil {
			return nil, fmt.Errorf("user-agent stylesheet: %w", err)
		}
		if err = reg.SetUserAgentStylesheet(opts.ua, sheet); err != nil {
			return nil, err
		}
	}
	root, err := desc.Root.build()
	if err != nil {
		return nil, err
	}
	sc := scene.New(root, reg)
	for _, path := range opts.css {
		sheet, err := douceuradapter.Load(path)
		if err != nil {
			return nil, fmt.Errorf("author stylesheet: %w", err)
		}
		if err = sc.AddStylesheet(path, sheet); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func setTraceLevel(level string) error {
	level = strings.ToLower(level)
	if level != "error" && level != "info" && level != "debug" {
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "error":
			t.SetTraceLevel(tracing.LevelError)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		}
	}
	return nil
}
