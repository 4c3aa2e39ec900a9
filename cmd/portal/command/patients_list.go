package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sosportal/portal/patients"
	"github.com/sosportal/portal/validation"
)

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients",
	Long:  "The list command is used to retrieve every registered patient",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listPatients) },
}

func listPatients(service patients.Service) error {
	list, err := service.List(context.TODO())
	if err != nil {
		return err
	}

	for _, patient := range list {
		fmt.Printf("%s %s %s %s %s\n", patient.Id, patient.FullName, validation.FormatCPF(patient.Cpf), patient.BirthDate, patient.Email)
	}
	fmt.Printf("Found %v patients\n", len(list))

	return nil
}

func init() {
	patientsCmd.AddCommand(patientsListCmd)
}
