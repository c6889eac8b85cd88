// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

// HelmPackageConfig describes a helm package that forms part of a container
// based network function definition.
type HelmPackageConfig struct {
	// Name is the name of the helm package.
	Name string `json:"name" yaml:"name"`
	// PathToChart is the path of the helm chart on the local disk, or a
	// remote go-getter source. Accepts .tgz, .tar or .tar.gz.
	PathToChart string `json:"path_to_chart" yaml:"path_to_chart"`
	// PathToMappings is the path of the value mappings file on the local
	// disk. Accepts .yaml or .yml. If empty, a mappings file is generated
	// with every value mapped to a deployment parameter.
	PathToMappings string `json:"path_to_mappings" yaml:"path_to_mappings"`
	// DependsOn names the helm packages this package depends on.
	DependsOn []string `json:"depends_on" yaml:"depends_on"`
}
