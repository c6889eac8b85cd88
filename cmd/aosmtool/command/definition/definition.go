// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package definition

import (
	"github.com/spf13/cobra"
)

// DefinitionCmd represents the definition command.
var DefinitionCmd = cobra.Command{
	Use:   "definition",
	Short: "Manage AOSM publisher network function definitions.",
	Long:  `Generate config for, and prepare the publishing of, network function definitions (VNF and CNF).`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.PrintErrf("%s definition command: missing required child command\n", cmd.ErrPrefix())
		cmd.Usage() // nolint: errcheck
	},
}

func init() {
	DefinitionCmd.AddCommand(&generateConfigCmd)
	DefinitionCmd.AddCommand(&prepareCmd)
}
