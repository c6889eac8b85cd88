// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"

	"github.com/Azure/aosmlib"
	"gopkg.in/yaml.v3"
)

// fieldDescriptions holds the help text emitted as comments in generated
// example configuration files.
var fieldDescriptions = map[string]string{
	"publisher_name":                "Name of the Publisher resource you want your definition published to. Will be created if it does not exist.",
	"publisher_name_nsd":            "Name of the Publisher resource you want your design published to. This should be the same as the publisher used for your NFDVs.",
	"publisher_resource_group_name": "Resource group for the Publisher resource. Will be created if it does not exist.",
	"acr_artifact_store_name":       "Name of the ACR Artifact Store resource. Will be created if it does not exist.",
	"location":                      "Azure location to use when creating resources.",
	"nf_name":                       "Name of NF definition.",
	"version":                       "Version of the NF definition, in format A.B.C.",
	"blob_artifact_store_name":      "Name of the storage account Artifact Store resource. Will be created if it does not exist.",
	"image_name_parameter":          "The parameter name in the VM ARM template which specifies the name of the image to use for the VM.",
	"file_path":                     "Optional. File path of the artifact you wish to upload from your local disk. Leave empty if not required.",
	"blob_sas_url":                  "Optional. SAS URL of the blob artifact you wish to copy to your Artifact Store. Leave empty if not required.",
	"artifact_version":              "Version of the artifact. For VHDs this must be in format A-B-C. For ARM templates this must be in format A.B.C.",
	"helm_package_name":             "Name of the Helm package.",
	"path_to_chart":                 "File path of Helm Chart on local disk, or a remote source. Accepts .tgz, .tar or .tar.gz.",
	"path_to_mappings":              "File path of value mappings on local disk where chosen values are replaced with deploymentParameter placeholders. Accepts .yaml or .yml. If left empty, a value mappings file will be generated with every value mapped to a deployment parameter.",
	"helm_depends_on":               "Names of the Helm packages this package depends on. Leave as an empty array if no dependencies.",
	"source_registry_id":            "Resource ID of the source acr registry from which to pull the image.",
	"source_registry_namespace":     "Optional. Namespace of the repository of the source acr registry from which to pull. For example if your repository is samples/prod/nginx then set this to samples/prod. Leave empty if the image is in the root namespace.",
	"nsdg_name":                     "Network Service Design Group Name. This is the collection of Network Service Design Versions. Will be created if it does not exist.",
	"nsd_version":                   "Version of the NSD to be created, in format A.B.C.",
	"nsdv_description":              "Description of the NSDV.",
	"network_function_definition_group_name":        "Existing Network Function Definition Group Name.",
	"network_function_definition_version_name":      "Existing Network Function Definition Version Name.",
	"network_function_definition_offering_location": "Offering location of the Network Function Definition.",
	"network_function_type":                         "Type of nf in the definition. Valid values are 'cnf' or 'vnf'.",
	"multiple_instances":                            "Whether the NSD should allow arbitrary numbers of this type of NF. If set to false only a single instance will be allowed. Only supported on VNFs, must be set to false on CNFs.",
}

// exampleField is one entry in a generated example config. Exactly one of
// value, children and seq is used.
type exampleField struct {
	key      string
	descKey  string
	value    string
	children []exampleField
	seq      [][]exampleField
}

// GenerateExample returns a commented YAML example configuration for the
// given definition type, ready for the user to fill in.
func GenerateExample(definitionType aosmlib.DefinitionType) (string, error) {
	var fields []exampleField
	switch definitionType {
	case aosmlib.DefinitionTypeVNF:
		fields = vnfExampleFields()
	case aosmlib.DefinitionTypeCNF:
		fields = cnfExampleFields()
	case aosmlib.DefinitionTypeNSD:
		fields = nsdExampleFields()
	default:
		return "", fmt.Errorf("config: unsupported definition type: %s", definitionType)
	}

	out, err := yaml.Marshal(exampleNode(fields))
	if err != nil {
		return "", fmt.Errorf("config: error marshaling example config: %w", err)
	}
	return string(out), nil
}

// exampleNode builds a YAML mapping node with the field descriptions attached
// as head comments.
func exampleNode(fields []exampleField) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		key := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       f.key,
			HeadComment: fieldDescriptions[f.descKey],
		}
		var value *yaml.Node
		switch {
		case f.children != nil:
			value = exampleNode(f.children)
		case f.seq != nil:
			value = &yaml.Node{Kind: yaml.SequenceNode}
			for _, item := range f.seq {
				value.Content = append(value.Content, exampleNode(item))
			}
		default:
			value = &yaml.Node{Kind: yaml.ScalarNode, Value: f.value}
		}
		m.Content = append(m.Content, key, value)
	}
	return m
}

func baseExampleFields(publisherDescKey, publisherRGDescKey string) []exampleField {
	return []exampleField{
		{key: "publisher_name", descKey: publisherDescKey, value: ""},
		{key: "publisher_resource_group_name", descKey: publisherRGDescKey, value: ""},
		{key: "acr_artifact_store_name", descKey: "acr_artifact_store_name", value: ""},
		{key: "location", descKey: "location", value: ""},
	}
}

func artifactExampleFields(versionDescKey string) []exampleField {
	return []exampleField{
		{key: "file_path", descKey: "file_path", value: ""},
		{key: "blob_sas_url", descKey: "blob_sas_url", value: ""},
		{key: "version", descKey: versionDescKey, value: ""},
	}
}

func vnfExampleFields() []exampleField {
	fields := baseExampleFields("publisher_name", "publisher_resource_group_name")
	return append(fields,
		exampleField{key: "nf_name", descKey: "nf_name", value: ""},
		exampleField{key: "version", descKey: "version", value: ""},
		exampleField{key: "blob_artifact_store_name", descKey: "blob_artifact_store_name", value: ""},
		exampleField{key: "image_name_parameter", descKey: "image_name_parameter", value: ""},
		exampleField{key: "arm_template", children: artifactExampleFields("artifact_version")},
		exampleField{key: "vhd", children: artifactExampleFields("artifact_version")},
	)
}

func cnfExampleFields() []exampleField {
	fields := baseExampleFields("publisher_name", "publisher_resource_group_name")
	return append(fields,
		exampleField{key: "nf_name", descKey: "nf_name", value: ""},
		exampleField{key: "version", descKey: "version", value: ""},
		exampleField{key: "source_registry_id", descKey: "source_registry_id", value: ""},
		exampleField{key: "source_registry_namespace", descKey: "source_registry_namespace", value: ""},
		exampleField{key: "helm_packages", seq: [][]exampleField{{
			{key: "name", descKey: "helm_package_name", value: ""},
			{key: "path_to_chart", descKey: "path_to_chart", value: ""},
			{key: "path_to_mappings", descKey: "path_to_mappings", value: ""},
			{key: "depends_on", descKey: "helm_depends_on", value: ""},
		}}},
	)
}

func nsdExampleFields() []exampleField {
	fields := baseExampleFields("publisher_name_nsd", "publisher_resource_group_name")
	return append(fields,
		exampleField{key: "network_function_definition_group_name", descKey: "network_function_definition_group_name", value: ""},
		exampleField{key: "network_function_definition_version_name", descKey: "network_function_definition_version_name", value: ""},
		exampleField{key: "network_function_definition_offering_location", descKey: "network_function_definition_offering_location", value: ""},
		exampleField{key: "network_function_type", descKey: "network_function_type", value: ""},
		exampleField{key: "nsdg_name", descKey: "nsdg_name", value: ""},
		exampleField{key: "nsd_version", descKey: "nsd_version", value: ""},
		exampleField{key: "nsdv_description", descKey: "nsdv_description", value: ""},
		exampleField{key: "multiple_instances", descKey: "multiple_instances", value: "false"},
	)
}
