// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package command

import (
	"context"
	"os"

	"github.com/Azure/aosmlib/cmd/aosmtool/command/definition"
	"github.com/Azure/aosmlib/cmd/aosmtool/command/design"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "aosmtool",
	Version: version,
	Short:   "A cli tool for publishing AOSM network function definitions and network service designs",
	Long: `A cli tool for publishing Azure Operator Service Manager network function
definitions and network service designs.

This tool can:

- Generate an example configuration file for a definition or design.
- Ensure the Azure resources required before publishing exist, creating them if absent.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(&definition.DefinitionCmd)
	rootCmd.AddCommand(&design.DesignCmd)
}
