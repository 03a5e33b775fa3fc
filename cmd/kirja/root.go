package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yairfalse/kirja/config"
	"github.com/yairfalse/kirja/export"
	"github.com/yairfalse/kirja/providers/aws"
)

// Exit codes by failure class. Anything unclassified exits 1.
const (
	exitOK     = 0
	exitErr    = 1
	exitConfig = 2
	exitAuth   = 3
	exitExport = 4
)

var (
	version = "0.1.0"
	debug   bool

	rootCmd = &cobra.Command{
		Use:   "kirja",
		Short: "AWS resource inventory exporter",
		Long: `Kirja - AWS resource inventory exporter

Kirja enumerates the resources in an AWS account across a set of regions
and writes them to an xlsx workbook, one sheet per resource category.

Credentials are read from a YAML file; nothing is persisted between runs
beyond the output workbook itself.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.SetVersionTemplate(`Kirja {{.Version}} - AWS resource inventory exporter
`)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command and maps failures to exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return exitConfig
	}
	var authErr *aws.AuthError
	if errors.As(err, &authErr) {
		return exitAuth
	}
	var exportErr *export.ExportError
	if errors.As(err, &exportErr) {
		return exitExport
	}
	return exitErr
}
