// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"strings"
)

const (
	// NetworkFunctionTypeCNF is a container based network function.
	NetworkFunctionTypeCNF = "cnf"
	// NetworkFunctionTypeVNF is a virtual machine based network function.
	NetworkFunctionTypeVNF = "vnf"
)

// NSConfiguration describes a network service design built from an existing
// network function definition version.
type NSConfiguration struct {
	BaseConfiguration `yaml:",inline"`

	// NetworkFunctionDefinitionGroup is the name of an existing network
	// function definition group.
	NetworkFunctionDefinitionGroup string `json:"network_function_definition_group_name" yaml:"network_function_definition_group_name"`
	// NetworkFunctionDefinitionVersion is the name of an existing network
	// function definition version.
	NetworkFunctionDefinitionVersion string `json:"network_function_definition_version_name" yaml:"network_function_definition_version_name"`
	// NetworkFunctionDefinitionOfferingLocation is the offering location of
	// the network function definition.
	NetworkFunctionDefinitionOfferingLocation string `json:"network_function_definition_offering_location" yaml:"network_function_definition_offering_location"`
	// NetworkFunctionType is the type of network function in the design,
	// either cnf or vnf.
	NetworkFunctionType string `json:"network_function_type" yaml:"network_function_type"`
	// NSDGName is the name of the network service design group, the
	// collection of network service design versions.
	NSDGName string `json:"nsdg_name" yaml:"nsdg_name"`
	// NSDVersion is the version of the network service design to create, in format A.B.C.
	NSDVersion string `json:"nsd_version" yaml:"nsd_version"`
	// NSDVDescription is the description of the network service design version.
	NSDVDescription string `json:"nsdv_description,omitempty" yaml:"nsdv_description,omitempty"`
	// MultipleInstances allows arbitrary numbers of this network function in
	// the design. Only supported on VNFs.
	MultipleInstances bool `json:"multiple_instances" yaml:"multiple_instances"`
}

// NetworkFunctionName is the name of the network function used in the design version.
func (c *NSConfiguration) NetworkFunctionName() string {
	return fmt.Sprintf("%s_NF", c.NSDGName)
}

// NFVISiteName is the name of the NFVI site used in the design version.
func (c *NSConfiguration) NFVISiteName() string {
	return fmt.Sprintf("%s_NFVI", c.NSDGName)
}

// CGSchemaName is the name of the configuration group schema used in the design version.
func (c *NSConfiguration) CGSchemaName() string {
	return fmt.Sprintf("%s_ConfigGroupSchema", strings.ReplaceAll(c.NSDGName, "-", "_"))
}

// ResourceElementName is the name of the resource element in the design version.
func (c *NSConfiguration) ResourceElementName() string {
	return fmt.Sprintf("%s-resource-element", sanitizeResourceName(c.NSDGName))
}

// ARMTemplateArtifactName is the artifact name for the network function ARM template.
func (c *NSConfiguration) ARMTemplateArtifactName() string {
	return fmt.Sprintf("%s-nfd-artifact", c.NetworkFunctionDefinitionGroup)
}

// ACRManifestName is the name of the artifact manifest in the container
// registry artifact store, derived from the network function name and the
// design version.
func (c *NSConfiguration) ACRManifestName() string {
	return fmt.Sprintf("%s-nsd-acr-manifest-%s",
		sanitizeResourceName(c.NetworkFunctionName()), versionSuffix(c.NSDVersion))
}

// Validate checks that the NSD configuration is complete and that the
// requested network function type and instance count are supported.
func (c *NSConfiguration) Validate() error {
	if err := c.validateBase(); err != nil {
		return err
	}
	if c.NetworkFunctionDefinitionGroup == "" {
		return NewErrFieldRequired("network_function_definition_group_name")
	}
	if c.NetworkFunctionDefinitionVersion == "" {
		return NewErrFieldRequired("network_function_definition_version_name")
	}
	if c.NetworkFunctionDefinitionOfferingLocation == "" {
		return NewErrFieldRequired("network_function_definition_offering_location")
	}
	switch c.NetworkFunctionType {
	case NetworkFunctionTypeCNF, NetworkFunctionTypeVNF:
	default:
		return NewErrUnsupportedValue("network_function_type", c.NetworkFunctionType,
			NetworkFunctionTypeCNF, NetworkFunctionTypeVNF)
	}
	if c.NSDGName == "" {
		return NewErrFieldRequired("nsdg_name")
	}
	if c.NSDVersion == "" {
		return NewErrFieldRequired("nsd_version")
	}
	if !armTemplateVersionRegexp.MatchString(c.NSDVersion) {
		return NewErrInvalidVersion("nsd_version", c.NSDVersion, armTemplateVersionFormat)
	}

	// The orchestration control plane cannot deploy multiple copies of the
	// same CNF to one custom location.
	if c.NetworkFunctionType == NetworkFunctionTypeCNF && c.MultipleInstances {
		return ErrMultipleInstancesOnCNF
	}
	return nil
}
