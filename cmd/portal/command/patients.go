package command

import (
	"github.com/spf13/cobra"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Manage patients",
	Long:  "The patients command is used to list, register, delete and export patients",
}

func init() {
	rootCmd.AddCommand(patientsCmd)
}
