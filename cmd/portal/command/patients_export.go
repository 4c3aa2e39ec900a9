package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sosportal/portal/patients"
	"github.com/sosportal/portal/patients/export"
)

var patientsExportParams = struct {
	Output string
}{}

var patientsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export patients to a spreadsheet",
	Long:  "The export command writes every registered patient to an xlsx workbook",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(exportPatients) },
}

func init() {
	patientsExportCmd.Flags().StringVarP(&patientsExportParams.Output, "output", "o", "pacientes.xlsx", "Output file")

	patientsCmd.AddCommand(patientsExportCmd)
}

func exportPatients(service patients.Service) error {
	list, err := service.List(context.TODO())
	if err != nil {
		return err
	}

	f, err := os.Create(patientsExportParams.Output)
	if err != nil {
		return err
	}

	if err := export.Write(f, list); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Exported %v patients to %s\n", len(list), patientsExportParams.Output)
	return nil
}
