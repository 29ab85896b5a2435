package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vosul/internal/domain"
	"vosul/internal/tableexport"
)

var (
	exportDir     string
	exportDataset bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the responsible-party and province tables as workbooks",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addRangeFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "output directory")
	exportCmd.Flags().BoolVar(&exportDataset, "dataset", false, "also write the prepared dataset")
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, log, err := loadApp(cmd.Context(), nil)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	q := domain.ReportQuery{StartDate: startDate, EndDate: endDate}
	for _, kind := range []domain.TableKind{domain.TableResponsible, domain.TableProvince} {
		table, err := a.Reports.Table(cmd.Context(), kind, q)
		if err != nil {
			return err
		}
		path := filepath.Join(exportDir, tableexport.BuildFilename(kind, startDate, endDate, "xlsx"))
		if err := tableexport.WriteXLSX(path, table); err != nil {
			return err
		}
		log.Info().Str("table", string(kind)).Str("path", path).Msg("table written")
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	if exportDataset {
		path := filepath.Join(exportDir, "exported_data.xlsx")
		if err := tableexport.WriteDatasetXLSX(path, a.Store.Current()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
