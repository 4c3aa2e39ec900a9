package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sosportal/portal/patients"
)

var patientsDeleteParams = struct {
	Id string
}{}

var patientsDeleteCmd = &cobra.Command{
	Use:   "delete {id}",
	Args:  cobra.ExactArgs(1),
	Short: "Delete a patient",
	Long:  "The delete command removes the patient with the given id",
	RunE: func(cmd *cobra.Command, args []string) error {
		patientsDeleteParams.Id = args[0]
		return Run(deletePatient)
	},
}

func init() {
	patientsCmd.AddCommand(patientsDeleteCmd)
}

func deletePatient(service patients.Service) error {
	if err := service.Delete(context.TODO(), patientsDeleteParams.Id); err != nil {
		return err
	}

	fmt.Printf("Patient %s was deleted\n", patientsDeleteParams.Id)
	return nil
}
