// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package definition

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

// prepareCmd represents the definition prepare command.
var prepareCmd = cobra.Command{
	Use:   "prepare",
	Short: "Ensure the resources required to publish a network function definition exist.",
	Long: `Ensure the resources required to publish a network function definition exist.

Loads and validates the config file, then checks the publisher resource group,
publisher, artifact store(s) and definition group, creating any that are
absent, and reports whether the artifact manifests already exist.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		definitionType, _ := cmd.Flags().GetString("definition-type")
		configFile, _ := cmd.Flags().GetString("config-file")

		dt, err := aosmlib.ParseDefinitionType(definitionType)
		if err != nil || dt == aosmlib.DefinitionTypeNSD {
			cmd.PrintErrf("%s definition type must be vnf or cnf\n", cmd.ErrPrefix())
			os.Exit(1)
		}
		cfg, err := config.Load(dt, configFile)
		if err != nil {
			cmd.PrintErrf("%s could not load config: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		// CNF helm charts may come from remote sources, fetch them up front so
		// that later publishing steps only deal with local files.
		if cnf, ok := cfg.(*config.CNFConfiguration); ok {
			for i, pkg := range cnf.HelmPackages {
				if !aosmlib.IsRemoteSource(pkg.PathToChart) {
					continue
				}
				local, err := aosmlib.FetchArtifact(cmd.Context(), pkg.PathToChart, environment.AosmLibDir())
				if err != nil {
					cmd.PrintErrf("%s could not fetch helm chart for package %s: %v\n", cmd.ErrPrefix(), pkg.Name, err)
					os.Exit(1)
				}
				cnf.HelmPackages[i].PathToChart = local
			}
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
		manifestsExist, err := pd.ConfigArtifactManifestsExist(cmd.Context())
		if err != nil {
			cmd.PrintErrf("%s could not check artifact manifests: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if manifestsExist {
			cmd.Println("Artifact manifests already exist, the artifacts in them can be re-uploaded.")
		}
		cmd.Println(color.GreenString("Prepared all resources for publishing %s.", definitionType))
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
	prepareCmd.Flags().String("definition-type", "vnf", "type of definition to prepare, vnf or cnf")
	prepareCmd.Flags().StringP("config-file", "f", "", "path to the definition config file")
	prepareCmd.MarkFlagRequired("config-file") // nolint: errcheck
}
