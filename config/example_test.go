// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"testing"

	"github.com/Azure/aosmlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateExampleVNF(t *testing.T) {
	t.Parallel()
	example, err := GenerateExample(aosmlib.DefinitionTypeVNF)
	require.NoError(t, err)

	assert.Contains(t, example, "# Name of NF definition.")
	assert.Contains(t, example, "blob_artifact_store_name:")

	var cfg VNFConfiguration
	require.NoError(t, yaml.Unmarshal([]byte(example), &cfg))
	// All fields start unset so the user has to fill them in.
	assert.Empty(t, cfg.Publisher)
	assert.Empty(t, cfg.VHD.Version)
}

func TestGenerateExampleCNF(t *testing.T) {
	t.Parallel()
	example, err := GenerateExample(aosmlib.DefinitionTypeCNF)
	require.NoError(t, err)

	assert.Contains(t, example, "helm_packages:")
	assert.Contains(t, example, "# Name of the Helm package.")

	var cfg CNFConfiguration
	require.NoError(t, yaml.Unmarshal([]byte(example), &cfg))
	require.Len(t, cfg.HelmPackages, 1)
	assert.Empty(t, cfg.HelmPackages[0].Name)
}

func TestGenerateExampleNSD(t *testing.T) {
	t.Parallel()
	example, err := GenerateExample(aosmlib.DefinitionTypeNSD)
	require.NoError(t, err)

	assert.Contains(t, example, "nsdg_name:")
	assert.Contains(t, example, "# Version of the NSD to be created, in format A.B.C.")

	var cfg NSConfiguration
	require.NoError(t, yaml.Unmarshal([]byte(example), &cfg))
	assert.False(t, cfg.MultipleInstances)
}
