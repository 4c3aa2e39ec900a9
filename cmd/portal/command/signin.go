package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sosportal/portal/auth"
)

var signInParams = struct {
	Login    string
	Password string
}{}

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in with e-mail or CPF",
	Long:  "The signin command exchanges the credentials for an access token",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(signIn) },
}

func addSignInFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&signInParams.Login, "login", "", "E-mail or CPF")
	cmd.Flags().StringVar(&signInParams.Password, "password", "", "Password")
}

func init() {
	addSignInFlags(signInCmd)
	rootCmd.AddCommand(signInCmd)
}

func signIn(service *auth.Service) error {
	res, err := service.SignIn(context.TODO(), signInParams.Login, signInParams.Password)
	if err != nil {
		return err
	}

	fmt.Println(auth.MessageSignedIn)
	fmt.Printf("Profile: %s\n", res.ProfileType)
	if expiry := service.Session().Expiry(); !expiry.IsZero() {
		fmt.Printf("Expires: %s\n", expiry.Local().Format("02/01/2006 15:04"))
	}
	fmt.Println(res.AccessToken)

	return nil
}
