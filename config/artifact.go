// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import "regexp"

const (
	vhdVersionFormat         = "A-B-C"
	armTemplateVersionFormat = "A.B.C"
)

var (
	vhdVersionRegexp         = regexp.MustCompile(`^\d+-\d+-\d+$`)
	armTemplateVersionRegexp = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// ArtifactConfig describes a single artifact to be uploaded to an artifact
// store. The artifact content comes from either a local file or a remote blob,
// never both.
type ArtifactConfig struct {
	// FilePath is the path of the artifact on the local disk.
	// Relative paths are resolved against the config file directory.
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	// BlobSASURL is the SAS URL of a blob to copy to the artifact store.
	BlobSASURL string `json:"blob_sas_url,omitempty" yaml:"blob_sas_url,omitempty"`
	// Version is the version of the artifact. For VHDs this must be in
	// format A-B-C, for ARM templates this must be in format A.B.C.
	Version string `json:"version" yaml:"version"`
}

// validateVHD checks the version format and that exactly one content source is set.
// The field parameter names the artifact in returned errors.
func (a *ArtifactConfig) validateVHD(field string) error {
	if a.Version == "" {
		return NewErrFieldRequired(field + ".version")
	}
	if !vhdVersionRegexp.MatchString(a.Version) {
		return NewErrInvalidVersion(field, a.Version, vhdVersionFormat)
	}
	// If both or neither source is set there is no single artifact to upload.
	if (a.FilePath != "") == (a.BlobSASURL != "") {
		return NewErrArtifactSource(field)
	}
	return nil
}

// validateARMTemplate checks the version format and that a local template file is set.
func (a *ArtifactConfig) validateARMTemplate(field string) error {
	if a.Version == "" {
		return NewErrFieldRequired(field + ".version")
	}
	if !armTemplateVersionRegexp.MatchString(a.Version) {
		return NewErrInvalidVersion(field, a.Version, armTemplateVersionFormat)
	}
	if a.FilePath == "" {
		return NewErrFieldRequired(field + ".file_path")
	}
	return nil
}
