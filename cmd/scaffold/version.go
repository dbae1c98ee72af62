// Version command for the scaffold CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scaffold/pkg/scaffold"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the scaffold version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("scaffold", scaffold.Version)
	},
}
