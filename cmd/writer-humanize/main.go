// Package main is the writer-humanize CLI: it rewrites text from args, a file or stdin
package main

import (
	"fmt"
	"os"

	"writer/internal/platform/logger"
)

func main() {
	// stdout carries the rewritten text, logs go to stderr
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	opt.Component = "writer-humanize"
	logger.Init(opt)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
