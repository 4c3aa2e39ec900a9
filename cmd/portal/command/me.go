package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sosportal/portal/auth"
	"github.com/sosportal/portal/profile"
	"github.com/sosportal/portal/validation"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the profile of the signed in patient",
	Long:  "The me command signs in and retrieves the profile of the patient",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(showProfile) },
}

func init() {
	addSignInFlags(meCmd)
	rootCmd.AddCommand(meCmd)
}

func showProfile(service *auth.Service, client profile.Client) error {
	ctx := context.TODO()
	if _, err := service.SignIn(ctx, signInParams.Login, signInParams.Password); err != nil {
		return err
	}

	me, err := client.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Name: %s\n", me.FullName())
	fmt.Printf("CPF: %s\n", validation.FormatCPF(me.Cpf))
	if me.DateBirth != "" {
		birthDate := validation.ISOToDate(me.DateBirth)
		if birthDate == "" {
			birthDate = me.DateBirth
		}
		fmt.Printf("Birth date: %s\n", birthDate)
	}
	fmt.Printf("Gender: %s\n", me.Gender)
	if me.Phone != "" {
		fmt.Printf("Phone: %s\n", me.Phone)
	}
	if me.City != "" {
		fmt.Printf("City: %s\n", me.City)
	}

	return nil
}
