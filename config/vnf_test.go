// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVNFConfiguration() *VNFConfiguration {
	return &VNFConfiguration{
		NFConfiguration: NFConfiguration{
			BaseConfiguration: BaseConfiguration{
				Publisher:              "test-publisher",
				PublisherResourceGroup: "test-publisher-rg",
				ACRArtifactStore:       "test-acr-store",
				Location:               "uksouth",
			},
			NFName:  "test_NF",
			Version: "1.0.0",
		},
		BlobArtifactStore:  "test-sa-store",
		ImageNameParameter: "imageName",
		ARMTemplate: ArtifactConfig{
			FilePath: "/tmp/template.json",
			Version:  "1.0.0",
		},
		VHD: ArtifactConfig{
			FilePath: "/tmp/image.vhd",
			Version:  "1-0-0",
		},
	}
}

func TestVNFConfigurationValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validVNFConfiguration().Validate())
}

func TestVNFConfigurationValidateVHDVersion(t *testing.T) {
	t.Parallel()
	cfg := validVNFConfiguration()
	cfg.VHD.Version = "1-2-3"
	assert.NoError(t, cfg.Validate())

	cfg.VHD.Version = "1.2.3"
	var invalidVersion *ErrInvalidVersion
	require.ErrorAs(t, cfg.Validate(), &invalidVersion)
	assert.Equal(t, "vhd", invalidVersion.Field)
	assert.Equal(t, vhdVersionFormat, invalidVersion.Format)

	cfg.VHD.Version = ""
	var fieldRequired *ErrFieldRequired
	require.ErrorAs(t, cfg.Validate(), &fieldRequired)
	assert.Equal(t, "vhd.version", fieldRequired.Field)
}

func TestVNFConfigurationValidateARMTemplateVersion(t *testing.T) {
	t.Parallel()
	cfg := validVNFConfiguration()
	cfg.ARMTemplate.Version = "1.2.3"
	assert.NoError(t, cfg.Validate())

	cfg.ARMTemplate.Version = "1-2-3"
	var invalidVersion *ErrInvalidVersion
	require.ErrorAs(t, cfg.Validate(), &invalidVersion)
	assert.Equal(t, "arm_template", invalidVersion.Field)
	assert.Equal(t, armTemplateVersionFormat, invalidVersion.Format)
}

func TestVNFConfigurationValidateVHDSource(t *testing.T) {
	t.Parallel()
	// Both sources set.
	cfg := validVNFConfiguration()
	cfg.VHD.BlobSASURL = "https://example.blob.core.windows.net/c/image.vhd?sig=abc"
	var artifactSource *ErrArtifactSource
	require.ErrorAs(t, cfg.Validate(), &artifactSource)
	assert.Equal(t, "vhd", artifactSource.Artifact)

	// Neither source set.
	cfg = validVNFConfiguration()
	cfg.VHD.FilePath = ""
	require.ErrorAs(t, cfg.Validate(), &artifactSource)

	// Blob SAS URL only is valid.
	cfg = validVNFConfiguration()
	cfg.VHD.FilePath = ""
	cfg.VHD.BlobSASURL = "https://example.blob.core.windows.net/c/image.vhd?sig=abc"
	assert.NoError(t, cfg.Validate())
}

func TestVNFConfigurationValidateRequiredFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		field string
		clear func(*VNFConfiguration)
	}{
		{"publisher_name", func(c *VNFConfiguration) { c.Publisher = "" }},
		{"publisher_resource_group_name", func(c *VNFConfiguration) { c.PublisherResourceGroup = "" }},
		{"acr_artifact_store_name", func(c *VNFConfiguration) { c.ACRArtifactStore = "" }},
		{"location", func(c *VNFConfiguration) { c.Location = "" }},
		{"nf_name", func(c *VNFConfiguration) { c.NFName = "" }},
		{"version", func(c *VNFConfiguration) { c.Version = "" }},
		{"blob_artifact_store_name", func(c *VNFConfiguration) { c.BlobArtifactStore = "" }},
		{"image_name_parameter", func(c *VNFConfiguration) { c.ImageNameParameter = "" }},
	}
	for _, test := range tests {
		test := test
		t.Run(test.field, func(t *testing.T) {
			t.Parallel()
			cfg := validVNFConfiguration()
			test.clear(cfg)
			var fieldRequired *ErrFieldRequired
			require.ErrorAs(t, cfg.Validate(), &fieldRequired)
			assert.Equal(t, test.field, fieldRequired.Field)
		})
	}
}

func TestVNFConfigurationDerivedNames(t *testing.T) {
	t.Parallel()
	cfg := validVNFConfiguration()
	assert.Equal(t, "test_NF-nfdg", cfg.NFDGroupName())
	assert.Equal(t, "test-nf-acr-manifest-1-0-0", cfg.ACRManifestName())
	assert.Equal(t, "test-nf-sa-manifest-1-0-0", cfg.SAManifestName())
	assert.Equal(t, "test-sa-store", cfg.BlobArtifactStoreName())
}
