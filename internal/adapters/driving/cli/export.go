package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/adapters/driven/export"
)

var (
	exportFilters filterFlags
	exportDir     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered corpus as CSV",
	Long: `Writes the filtered corpus to a timestamped CSV file with one row
per post and the extracted hashtags, mentions and domains in
space-separated cells.`,
	RunE: runExport,
}

func init() {
	exportFilters.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	posts, err := exportFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}

	path, err := export.NewExporter(exportDir).ExportCSV(posts)
	if err != nil {
		return err
	}

	cmd.Printf("Exported %d posts to %s\n", len(posts), path)
	return nil
}
