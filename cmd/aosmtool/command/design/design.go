// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package design

import (
	"github.com/spf13/cobra"
)

// DesignCmd represents the design command.
var DesignCmd = cobra.Command{
	Use:   "design",
	Short: "Manage AOSM publisher network service designs.",
	Long:  `Generate config for, and prepare the publishing of, network service designs.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.PrintErrf("%s design command: missing required child command\n", cmd.ErrPrefix())
		cmd.Usage() // nolint: errcheck
	},
}

func init() {
	DesignCmd.AddCommand(&generateConfigCmd)
	DesignCmd.AddCommand(&prepareCmd)
}
