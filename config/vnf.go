// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import "fmt"

// VNFConfiguration describes a virtual machine based network function
// definition: a VHD image and the ARM template that deploys it.
type VNFConfiguration struct {
	NFConfiguration `yaml:",inline"`

	// BlobArtifactStore is the name of the storage account artifact store
	// that will hold the VHD image.
	BlobArtifactStore string `json:"blob_artifact_store_name" yaml:"blob_artifact_store_name"`
	// ImageNameParameter is the parameter name in the VM ARM template which
	// specifies the name of the image to use for the VM.
	ImageNameParameter string `json:"image_name_parameter" yaml:"image_name_parameter"`
	// ARMTemplate is the ARM template artifact for the VM deployment.
	ARMTemplate ArtifactConfig `json:"arm_template" yaml:"arm_template"`
	// VHD is the VHD image artifact.
	VHD ArtifactConfig `json:"vhd" yaml:"vhd"`
}

// BlobArtifactStoreName is the name of the storage account artifact store.
func (c *VNFConfiguration) BlobArtifactStoreName() string {
	return c.BlobArtifactStore
}

// SAManifestName is the name of the artifact manifest in the storage account
// artifact store, derived from the network function name and version.
func (c *VNFConfiguration) SAManifestName() string {
	return fmt.Sprintf("%s-sa-manifest-%s", sanitizeResourceName(c.NFName), versionSuffix(c.Version))
}

func (c *VNFConfiguration) resolvePaths() {
	c.ARMTemplate.FilePath = c.PathFromConfigDir(c.ARMTemplate.FilePath)
	c.VHD.FilePath = c.PathFromConfigDir(c.VHD.FilePath)
}

// Validate checks that the VNF configuration is complete and that the artifact
// descriptors are internally consistent.
func (c *VNFConfiguration) Validate() error {
	if err := c.validateNF(); err != nil {
		return err
	}
	if c.BlobArtifactStore == "" {
		return NewErrFieldRequired("blob_artifact_store_name")
	}
	if c.ImageNameParameter == "" {
		return NewErrFieldRequired("image_name_parameter")
	}
	if err := c.VHD.validateVHD("vhd"); err != nil {
		return err
	}
	if err := c.ARMTemplate.validateARMTemplate("arm_template"); err != nil {
		return err
	}
	return nil
}
