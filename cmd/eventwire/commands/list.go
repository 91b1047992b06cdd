package commands

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var listPackage string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listPackage, "package", "p", "", "Only list messages of this package")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known message types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names := lo.Filter(ew.ListMessages(), func(name string, _ int) bool {
			return listPackage == "" || strings.HasPrefix(name, listPackage+".")
		})
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
