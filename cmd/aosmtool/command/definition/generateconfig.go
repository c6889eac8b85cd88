// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package definition

import (
	"os"

	"github.com/Azure/aosmlib"
	"github.com/Azure/aosmlib/config"
	"github.com/spf13/cobra"
)

// generateConfigCmd represents the definition generate-config command.
var generateConfigCmd = cobra.Command{
	Use:   "generate-config",
	Short: "Generate an example config file for a network function definition.",
	Long:  `Generate an example config file for publishing a network function definition, with each field described in a comment.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		definitionType, _ := cmd.Flags().GetString("definition-type")
		dt, err := aosmlib.ParseDefinitionType(definitionType)
		if err != nil || dt == aosmlib.DefinitionTypeNSD {
			cmd.PrintErrf("%s definition type must be vnf or cnf\n", cmd.ErrPrefix())
			os.Exit(1)
		}
		example, err := config.GenerateExample(dt)
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
		cmd.Printf("Example %s config written to %s.\n", dt, outputFile)
	},
}

func init() {
	generateConfigCmd.Flags().String("definition-type", "vnf", "type of definition to generate config for, vnf or cnf")
	generateConfigCmd.Flags().StringP("output-file", "o", "", "file to write the example config to, defaults to stdout")
}
