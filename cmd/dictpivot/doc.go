// Package main hosts the dictpivot CLI entrypoint and command graph.
//
// The Cobra command tree turns terminal invocations into conversion requests,
// dictionary inspection reports, and configuration scaffolding. It resolves
// configuration once per invocation and builds the stderr logger so
// subcommands only translate flags into calls on the internal packages.
//
// Documents go to stdout and everything else goes to stderr, which keeps the
// CLI usable in shell pipelines.
package main
