// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package design

import (
	"errors"
	"os"

	"github.com/Azure/aosmlib"
	"github.com/Azure/aosmlib/config"
	"github.com/Azure/aosmlib/deploy"
	"github.com/Azure/aosmlib/internal/environment"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errSubscriptionNotSet = errors.New("the AZURE_SUBSCRIPTION_ID environment variable must be set")

// prepareCmd represents the design prepare command.
var prepareCmd = cobra.Command{
	Use:   "prepare",
	Short: "Ensure the resources required to publish a network service design exist.",
	Long: `Ensure the resources required to publish a network service design exist.

Loads and validates the config file, then checks the publisher resource group,
publisher, artifact store and design group, creating any that are absent, and
reports whether the artifact manifest already exists.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config-file")
		cfg, err := config.Load(aosmlib.DefinitionTypeNSD, configFile)
		if err != nil {
			cmd.PrintErrf("%s could not load config: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		pd, err := newPreDeployer(cmd, cfg)
		if err != nil {
			cmd.PrintErrf("%s %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if err := pd.EnsureConfigResourcesExist(cmd.Context()); err != nil {
			cmd.PrintErrf("%s could not ensure config resources exist: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		manifestExists, err := pd.ConfigArtifactManifestsExist(cmd.Context())
		if err != nil {
			cmd.PrintErrf("%s could not check artifact manifest: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if manifestExists {
			cmd.Println("Artifact manifest already exists, the artifacts in it can be re-uploaded.")
		}
		cmd.Println(color.GreenString("Prepared all resources for publishing the network service design."))
	},
}

// newPreDeployer builds a PreDeployer from the local environment.
func newPreDeployer(cmd *cobra.Command, cfg config.Configuration) (*deploy.PreDeployer, error) {
	subscriptionID := environment.SubscriptionId()
	if subscriptionID == "" {
		return nil, errSubscriptionNotSet
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	clients, err := deploy.NewAPIClients(subscriptionID, cred, nil)
	if err != nil {
		return nil, err
	}
	return deploy.NewPreDeployer(clients, cfg, deploy.WithProgressWriter(cmd.OutOrStdout()))
}

func init() {
	prepareCmd.Flags().StringP("config-file", "f", "", "path to the design config file")
	prepareCmd.MarkFlagRequired("config-file") // nolint: errcheck
}
