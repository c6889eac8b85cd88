// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package design

import (
	"os"

	"github.com/Azure/aosmlib"
	"github.com/Azure/aosmlib/config"
	"github.com/spf13/cobra"
)

// generateConfigCmd represents the design generate-config command.
var generateConfigCmd = cobra.Command{
	Use:   "generate-config",
	Short: "Generate an example config file for a network service design.",
	Long:  `Generate an example config file for publishing a network service design, with each field described in a comment.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		example, err := config.GenerateExample(aosmlib.DefinitionTypeNSD)
		if err != nil {
			cmd.PrintErrf("%s could not generate example config: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		outputFile, _ := cmd.Flags().GetString("output-file")
		if outputFile == "" {
			cmd.Print(example)
			return
		}
		if err := os.WriteFile(outputFile, []byte(example), 0o644); err != nil {
			cmd.PrintErrf("%s could not write example config to %s: %v\n", cmd.ErrPrefix(), outputFile, err)
			os.Exit(1)
		}
		cmd.Printf("Example nsd config written to %s.\n", outputFile)
	},
}

func init() {
	generateConfigCmd.Flags().StringP("output-file", "o", "", "file to write the example config to, defaults to stdout")
}
