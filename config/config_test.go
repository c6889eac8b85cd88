// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Azure/aosmlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadVNFJson(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, "vnf.json", `{
  "publisher_name": "test-publisher",
  "publisher_resource_group_name": "test-publisher-rg",
  "acr_artifact_store_name": "test-acr-store",
  "location": "uksouth",
  "nf_name": "test_NF",
  "version": "1.0.0",
  "blob_artifact_store_name": "test-sa-store",
  "image_name_parameter": "imageName",
  "arm_template": {"file_path": "templates/nf.json", "version": "1.0.0"},
  "vhd": {"file_path": "images/nf.vhd", "version": "1-0-0"}
}`)

	cfg, err := Load(aosmlib.DefinitionTypeVNF, path)
	require.NoError(t, err)
	require.IsType(t, &VNFConfiguration{}, cfg)

	vnf := cfg.(*VNFConfiguration)
	assert.Equal(t, "test-publisher", vnf.PublisherName())
	assert.Equal(t, path, vnf.ConfigFile())
	// Relative artifact paths are resolved against the config file directory.
	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "templates", "nf.json"), vnf.ARMTemplate.FilePath)
	assert.Equal(t, filepath.Join(dir, "images", "nf.vhd"), vnf.VHD.FilePath)
}

func TestLoadNSDYaml(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, "nsd.yaml", `
publisher_name: test-publisher
publisher_resource_group_name: test-publisher-rg
acr_artifact_store_name: test-acr-store
location: uksouth
network_function_definition_group_name: test-nf-nfdg
network_function_definition_version_name: 1.0.0
network_function_definition_offering_location: uksouth
network_function_type: vnf
nsdg_name: test-design
nsd_version: 1.0.0
multiple_instances: true
`)

	cfg, err := Load(aosmlib.DefinitionTypeNSD, path)
	require.NoError(t, err)
	require.IsType(t, &NSConfiguration{}, cfg)

	nsd := cfg.(*NSConfiguration)
	assert.Equal(t, "test-design", nsd.NSDGName)
	assert.True(t, nsd.MultipleInstances)
}

func TestLoadValidationError(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, "nsd.yaml", `
publisher_name: test-publisher
location: uksouth
`)

	_, err := Load(aosmlib.DefinitionTypeNSD, path)
	var fieldRequired *ErrFieldRequired
	require.ErrorAs(t, err, &fieldRequired)
	assert.Equal(t, "publisher_resource_group_name", fieldRequired.Field)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, "vnf.toml", `publisher_name = "test-publisher"`)

	_, err := Load(aosmlib.DefinitionTypeVNF, path)
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(aosmlib.DefinitionTypeVNF, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPathFromConfigDir(t *testing.T) {
	t.Parallel()
	cfg := BaseConfiguration{}
	cfg.setConfigFile(filepath.Join("/etc", "aosm", "input.yaml"))

	assert.Equal(t, "", cfg.PathFromConfigDir(""))
	assert.Equal(t, "/opt/template.json", cfg.PathFromConfigDir("/opt/template.json"))
	assert.Equal(t, filepath.Join("/etc", "aosm", "templates", "nf.json"),
		cfg.PathFromConfigDir(filepath.Join("templates", "nf.json")))
}
