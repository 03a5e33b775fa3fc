package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yairfalse/kirja/config"
	"github.com/yairfalse/kirja/export"
	"github.com/yairfalse/kirja/inventory"
	"github.com/yairfalse/kirja/providers/aws"
)

var (
	exportCredentials string
	exportRegions     string
	exportCategories  string
)

var exportCmd = &cobra.Command{
	Use:   "export <output.xlsx>",
	Short: "Export the account inventory to an xlsx workbook",
	Long: `Export enumerates resources in every configured region and writes
them to an xlsx workbook, one sheet per resource category.

The run is a single forward pass: any listing or write failure aborts it.`,
	Example: `  kirja export inventory.xlsx
  kirja export --regions us-east-1,eu-west-1 inventory.xlsx
  kirja export --categories ec2,rds,s3 inventory.xlsx
  kirja export --credentials /etc/kirja/aws_credentials.yaml inventory.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportCredentials, "credentials", "c", "aws_credentials.yaml", "Path to the credentials YAML file")
	exportCmd.Flags().StringVarP(&exportRegions, "regions", "r", "us-east-1,eu-west-1,sa-east-1", "Comma-separated AWS regions to scan")
	exportCmd.Flags().StringVar(&exportCategories, "categories", "", "Comma-separated resource categories (default all)")
}

func runExport(cmd *cobra.Command, args []string) error {
	outputPath := args[0]
	logger := newLogger(debug)
	ctx := context.Background()

	categories, err := inventory.Lookup(splitList(exportCategories))
	if err != nil {
		return err
	}

	creds, err := config.Load(exportCredentials)
	if err != nil {
		return err
	}

	regions := splitList(exportRegions)
	sources := make([]inventory.Source, 0, len(regions))
	for _, region := range regions {
		provider, err := aws.New(ctx, creds, region)
		if err != nil {
			return err
		}
		sources = append(sources, provider)
	}

	logger.Info().
		Strs("regions", regions).
		Int("categories", len(categories)).
		Str("output", outputPath).
		Msg("starting inventory")

	report, err := inventory.Collect(ctx, sources, categories, logger)
	if err != nil {
		return err
	}

	if err := export.Write(outputPath, report); err != nil {
		return err
	}

	logger.Info().
		Int("rows", report.Total()).
		Str("output", outputPath).
		Msg("inventory written")
	return nil
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// splitList parses a comma-separated flag value, dropping empty entries.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
