// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"regexp"

	"github.com/Azure/aosmlib"
	mapset "github.com/deckarep/golang-set/v2"
)

// sourceRegistryIDRegexp matches the resource ID of an Azure container
// registry, capturing the resource group and registry names.
var sourceRegistryIDRegexp = regexp.MustCompile(
	`^/subscriptions/[^/]+/resourceGroups/([^/]+)/providers/Microsoft\.ContainerRegistry/registries/([^/]+)$`)

// CNFConfiguration describes a container based network function definition:
// one or more helm packages whose images are pulled from a source registry.
type CNFConfiguration struct {
	NFConfiguration `yaml:",inline"`

	// SourceRegistryID is the resource ID of the container registry from
	// which to pull the images.
	SourceRegistryID string `json:"source_registry_id" yaml:"source_registry_id"`
	// SourceRegistryNamespace is the repository namespace to pull from.
	// Empty means the root namespace.
	SourceRegistryNamespace string `json:"source_registry_namespace,omitempty" yaml:"source_registry_namespace,omitempty"`
	// HelmPackages are the helm packages making up the network function.
	HelmPackages []HelmPackageConfig `json:"helm_packages" yaml:"helm_packages"`
}

func (c *CNFConfiguration) resolvePaths() {
	for i := range c.HelmPackages {
		// Remote chart sources are fetched later, leave them untouched.
		if !aosmlib.IsRemoteSource(c.HelmPackages[i].PathToChart) {
			c.HelmPackages[i].PathToChart = c.PathFromConfigDir(c.HelmPackages[i].PathToChart)
		}
		c.HelmPackages[i].PathToMappings = c.PathFromConfigDir(c.HelmPackages[i].PathToMappings)
	}
}

// Validate checks that the CNF configuration is complete, that the source
// registry ID is a valid container registry resource ID, and that the helm
// package dependency graph only references declared packages.
func (c *CNFConfiguration) Validate() error {
	if err := c.validateNF(); err != nil {
		return err
	}
	if c.SourceRegistryID == "" {
		return NewErrFieldRequired("source_registry_id")
	}
	if !sourceRegistryIDRegexp.MatchString(c.SourceRegistryID) {
		return fmt.Errorf(
			"config validation error: source_registry_id '%s' is not a valid container registry resource ID",
			c.SourceRegistryID)
	}
	if len(c.HelmPackages) == 0 {
		return NewErrFieldRequired("helm_packages")
	}

	names := mapset.NewThreadUnsafeSet[string]()
	for _, pkg := range c.HelmPackages {
		if pkg.Name == "" {
			return NewErrFieldRequired("helm_packages.name")
		}
		if pkg.PathToChart == "" {
			return NewErrFieldRequired(fmt.Sprintf("helm_packages[%s].path_to_chart", pkg.Name))
		}
		if !names.Add(pkg.Name) {
			return fmt.Errorf("config validation error: duplicate helm package name '%s'", pkg.Name)
		}
	}
	for _, pkg := range c.HelmPackages {
		for _, dep := range pkg.DependsOn {
			if !names.Contains(dep) {
				return fmt.Errorf(
					"config validation error: helm package '%s' depends on undeclared package '%s'",
					pkg.Name, dep)
			}
		}
	}
	return nil
}
