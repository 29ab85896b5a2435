package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"vosul/internal/config"
	"vosul/internal/domain"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard for a date range as JSON",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	addRangeFlags(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	// Printing only; the server owns the export directory
	a, _, err := loadApp(cmd.Context(), func(cfg *config.Config) {
		cfg.Export.ResponsibleFile = ""
		cfg.Export.ProvinceFile = ""
		cfg.Export.S3Bucket = ""
	})
	if err != nil {
		return err
	}

	out, err := a.Reports.Dashboard(cmd.Context(), domain.ReportQuery{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
