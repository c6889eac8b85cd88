// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCNFConfiguration() *CNFConfiguration {
	return &CNFConfiguration{
		NFConfiguration: NFConfiguration{
			BaseConfiguration: BaseConfiguration{
				Publisher:              "test-publisher",
				PublisherResourceGroup: "test-publisher-rg",
				ACRArtifactStore:       "test-acr-store",
				Location:               "uksouth",
			},
			NFName:  "test-cnf",
			Version: "1.0.0",
		},
		SourceRegistryID: "/subscriptions/00000000-0000-0000-0000-000000000000" +
			"/resourceGroups/source-rg/providers/Microsoft.ContainerRegistry/registries/sourceacr",
		HelmPackages: []HelmPackageConfig{
			{
				Name:           "core",
				PathToChart:    "/tmp/charts/core-1.0.0.tgz",
				PathToMappings: "/tmp/mappings/core.json",
			},
			{
				Name:        "agent",
				PathToChart: "/tmp/charts/agent-1.0.0.tgz",
				DependsOn:   []string{"core"},
			},
		},
	}
}

func TestCNFConfigurationValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validCNFConfiguration().Validate())
}

func TestCNFConfigurationValidateSourceRegistry(t *testing.T) {
	t.Parallel()
	cfg := validCNFConfiguration()
	cfg.SourceRegistryID = ""
	var fieldRequired *ErrFieldRequired
	require.ErrorAs(t, cfg.Validate(), &fieldRequired)
	assert.Equal(t, "source_registry_id", fieldRequired.Field)

	cfg.SourceRegistryID = "sourceacr.azurecr.io"
	assert.ErrorContains(t, cfg.Validate(), "not a valid container registry resource ID")
}

func TestCNFConfigurationValidateHelmPackages(t *testing.T) {
	t.Parallel()
	cfg := validCNFConfiguration()
	cfg.HelmPackages = nil
	var fieldRequired *ErrFieldRequired
	require.ErrorAs(t, cfg.Validate(), &fieldRequired)
	assert.Equal(t, "helm_packages", fieldRequired.Field)

	cfg = validCNFConfiguration()
	cfg.HelmPackages[1].Name = "core"
	assert.ErrorContains(t, cfg.Validate(), "duplicate helm package name 'core'")

	cfg = validCNFConfiguration()
	cfg.HelmPackages[1].DependsOn = []string{"istio"}
	assert.ErrorContains(t, cfg.Validate(), "depends on undeclared package 'istio'")

	cfg = validCNFConfiguration()
	cfg.HelmPackages[0].PathToChart = ""
	require.ErrorAs(t, cfg.Validate(), &fieldRequired)
	assert.Equal(t, "helm_packages[core].path_to_chart", fieldRequired.Field)
}

func TestCNFConfigurationResolvePathsSkipsRemoteCharts(t *testing.T) {
	t.Parallel()
	cfg := validCNFConfiguration()
	cfg.setConfigFile("/etc/aosm/input.yaml")
	cfg.HelmPackages[0].PathToChart = "charts/core-1.0.0.tgz"
	cfg.HelmPackages[1].PathToChart = "https://example.com/charts/agent-1.0.0.tgz"
	cfg.resolvePaths()

	assert.Equal(t, "/etc/aosm/charts/core-1.0.0.tgz", cfg.HelmPackages[0].PathToChart)
	assert.Equal(t, "https://example.com/charts/agent-1.0.0.tgz", cfg.HelmPackages[1].PathToChart)
}
