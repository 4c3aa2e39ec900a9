package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sosportal/portal/form"
)

var patientsCreateParams = struct {
	FullName  string
	Cpf       string
	BirthDate string
	Email     string
}{}

var patientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a patient",
	Long:  "The create command validates the registration form and registers a new patient",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(createPatient) },
}

func init() {
	patientsCreateCmd.Flags().StringVar(&patientsCreateParams.FullName, "name", "", "Full name")
	patientsCreateCmd.Flags().StringVar(&patientsCreateParams.Cpf, "cpf", "", "CPF, with or without punctuation")
	patientsCreateCmd.Flags().StringVar(&patientsCreateParams.BirthDate, "birth-date", "", "Birth date as DD/MM/YYYY")
	patientsCreateCmd.Flags().StringVar(&patientsCreateParams.Email, "email", "", "E-mail")

	patientsCmd.AddCommand(patientsCreateCmd)
}

func createPatient(controller *form.Controller) error {
	err := controller.Fill(map[string]interface{}{
		string(form.FieldFullName):  patientsCreateParams.FullName,
		string(form.FieldCpf):       patientsCreateParams.Cpf,
		string(form.FieldBirthDate): patientsCreateParams.BirthDate,
		string(form.FieldEmail):     patientsCreateParams.Email,
	})
	if err != nil {
		return err
	}

	if err := controller.Submit(context.TODO()); err != nil {
		errs := controller.Errors()
		for _, field := range form.Fields {
			if message, ok := errs[field]; ok {
				fmt.Printf("%s: %s\n", field, message)
			}
		}
		return err
	}

	fmt.Println(controller.State().Message)
	return nil
}
