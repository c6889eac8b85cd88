// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import "fmt"

// NFConfiguration contains the fields common to network function definition
// configurations (VNF and CNF).
type NFConfiguration struct {
	BaseConfiguration `yaml:",inline"`

	// NFName is the name of the network function definition.
	NFName string `json:"nf_name" yaml:"nf_name"`
	// Version is the version of the network function definition, in format A.B.C.
	Version string `json:"version" yaml:"version"`
}

// NFDGroupName is the name of the network function definition group, derived
// from the network function name.
func (c *NFConfiguration) NFDGroupName() string {
	return fmt.Sprintf("%s-nfdg", c.NFName)
}

// ACRManifestName is the name of the artifact manifest in the container
// registry artifact store, derived from the network function name and version.
func (c *NFConfiguration) ACRManifestName() string {
	return fmt.Sprintf("%s-acr-manifest-%s", sanitizeResourceName(c.NFName), versionSuffix(c.Version))
}

// validateNF checks the common network function fields are set.
func (c *NFConfiguration) validateNF() error {
	if err := c.validateBase(); err != nil {
		return err
	}
	if c.NFName == "" {
		return NewErrFieldRequired("nf_name")
	}
	if c.Version == "" {
		return NewErrFieldRequired("version")
	}
	return nil
}
