package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/tinyrange/cgl/internal/probe"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	lib := fs.String("lib", "", "GL library to open (default: the platform's system library); not valid with -egl")
	useEGL := fs.Bool("egl", false, "resolve through eglGetProcAddress instead of the platform loader")
	missingOnly := fs.Bool("missing", false, "only list entry points that did not resolve")
	strict := fs.Bool("strict", false, "exit with status 1 if any entry point is missing")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	resolve, err := probe.NewResolver(*lib, *useEGL)
	if err != nil {
		log.Fatalf("resolver: %v", err)
	}

	_, report := probe.Run(resolve)
	report.Render(os.Stdout, *missingOnly)

	slog.Info("Resolved entry points", "resolved", report.Resolved, "missing", report.Missing)

	if *strict && report.Missing > 0 {
		os.Exit(1)
	}
}
