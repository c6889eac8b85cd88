// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/aosmlib"
)

// Configuration is the interface implemented by all configuration variants
// (VNF, CNF and NSD). The variants form a closed union: the unexported
// methods mean they can only be implemented in this package.
type Configuration interface {
	// Validate checks that the configuration is complete and internally
	// consistent. The returned errors are user facing.
	Validate() error
	// PublisherName is the name of the publisher resource.
	PublisherName() string
	// PublisherResourceGroupName is the resource group containing the publisher.
	PublisherResourceGroupName() string
	// ACRArtifactStoreName is the name of the container registry artifact store.
	ACRArtifactStoreName() string
	// PublisherLocation is the Azure location used when creating resources.
	PublisherLocation() string
	// ACRManifestName is the name of the artifact manifest in the container registry store.
	ACRManifestName() string
	// ConfigFile is the path the configuration was loaded from.
	ConfigFile() string

	setConfigFile(path string)
	resolvePaths()
}

var _ Configuration = (*VNFConfiguration)(nil)
var _ Configuration = (*CNFConfiguration)(nil)
var _ Configuration = (*NSConfiguration)(nil)

// Load reads the configuration file at the given path, unmarshals it according
// to its extension (.json, .yaml or .yml), resolves any relative paths against
// the directory containing the file, and validates the result.
func Load(definitionType aosmlib.DefinitionType, path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading config file %s: %w", path, err)
	}

	var cfg Configuration
	switch definitionType {
	case aosmlib.DefinitionTypeVNF:
		cfg = new(VNFConfiguration)
	case aosmlib.DefinitionTypeCNF:
		cfg = new(CNFConfiguration)
	case aosmlib.DefinitionTypeNSD:
		cfg = new(NSConfiguration)
	default:
		return nil, fmt.Errorf("config: unsupported definition type: %s", definitionType)
	}

	if err := NewUnmarshaler(data, filepath.Ext(path)).Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: error unmarshaling config file %s: %w", path, err)
	}

	cfg.setConfigFile(path)
	cfg.resolvePaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BaseConfiguration contains the fields common to all configuration variants.
type BaseConfiguration struct {
	configFile string

	Publisher              string `json:"publisher_name"                yaml:"publisher_name"`
	PublisherResourceGroup string `json:"publisher_resource_group_name" yaml:"publisher_resource_group_name"`
	ACRArtifactStore       string `json:"acr_artifact_store_name"       yaml:"acr_artifact_store_name"`
	Location               string `json:"location"                      yaml:"location"`
}

// PublisherName is the name of the publisher resource.
func (c *BaseConfiguration) PublisherName() string {
	return c.Publisher
}

// PublisherResourceGroupName is the resource group containing the publisher.
func (c *BaseConfiguration) PublisherResourceGroupName() string {
	return c.PublisherResourceGroup
}

// ACRArtifactStoreName is the name of the container registry artifact store.
func (c *BaseConfiguration) ACRArtifactStoreName() string {
	return c.ACRArtifactStore
}

// PublisherLocation is the Azure location used when creating resources.
func (c *BaseConfiguration) PublisherLocation() string {
	return c.Location
}

// ConfigFile is the path the configuration was loaded from.
func (c *BaseConfiguration) ConfigFile() string {
	return c.configFile
}

func (c *BaseConfiguration) setConfigFile(path string) {
	c.configFile = path
}

// resolvePaths is a no-op for the base configuration, variants with file
// references override it.
func (c *BaseConfiguration) resolvePaths() {}

// PathFromConfigDir converts a path relative to the configuration file into a
// path usable from the current directory. Paths in the config file are
// relative to the file itself, not to wherever the process is run from.
// Absolute paths and empty strings are returned unchanged.
func (c *BaseConfiguration) PathFromConfigDir(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(c.configFile), path)
}

// validateBase checks the fields common to all variants are set.
func (c *BaseConfiguration) validateBase() error {
	if c.Publisher == "" {
		return NewErrFieldRequired("publisher_name")
	}
	if c.PublisherResourceGroup == "" {
		return NewErrFieldRequired("publisher_resource_group_name")
	}
	if c.ACRArtifactStore == "" {
		return NewErrFieldRequired("acr_artifact_store_name")
	}
	if c.Location == "" {
		return NewErrFieldRequired("location")
	}
	return nil
}

// sanitizeResourceName converts a definition name into the form used in
// generated Azure resource names.
func sanitizeResourceName(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}

// versionSuffix converts a dotted version into the dashed form used in
// generated manifest names.
func versionSuffix(v string) string {
	return strings.ReplaceAll(v, ".", "-")
}
