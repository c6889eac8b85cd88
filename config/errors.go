// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
)

var _ error = (*ErrFieldRequired)(nil)
var _ error = (*ErrInvalidVersion)(nil)
var _ error = (*ErrArtifactSource)(nil)
var _ error = (*ErrUnsupportedValue)(nil)

// ErrMultipleInstancesOnCNF is returned when a network service design requests
// multiple instances of a container based network function, which the
// orchestration control plane does not support.
var ErrMultipleInstancesOnCNF = errors.New("config validation error: multiple instances is not supported on CNFs")

// ErrFieldRequired is an error type that indicates a required configuration field is not set.
type ErrFieldRequired struct {
	Field string
}

// Error implements the error interface for type ErrFieldRequired.
func (e *ErrFieldRequired) Error() string {
	return fmt.Sprintf("config validation error: field '%s' must be set", e.Field)
}

// NewErrFieldRequired creates a new ErrFieldRequired error.
func NewErrFieldRequired(field string) error {
	return &ErrFieldRequired{Field: field}
}

// ErrInvalidVersion is an error type that indicates a version string does not match the required format.
type ErrInvalidVersion struct {
	Field   string
	Version string
	Format  string
}

// Error implements the error interface for type ErrInvalidVersion.
func (e *ErrInvalidVersion) Error() string {
	return fmt.Sprintf("config validation error: %s version '%s' should be in format %s",
		e.Field, e.Version, e.Format)
}

// NewErrInvalidVersion creates a new ErrInvalidVersion error.
func NewErrInvalidVersion(field, version, format string) error {
	return &ErrInvalidVersion{Field: field, Version: version, Format: format}
}

// ErrArtifactSource is an error type that indicates an artifact does not have
// exactly one of a local file path and a remote blob SAS URL.
type ErrArtifactSource struct {
	Artifact string
}

// Error implements the error interface for type ErrArtifactSource.
func (e *ErrArtifactSource) Error() string {
	return fmt.Sprintf("config validation error: %s config must have either a local file_path or a blob_sas_url, but not both",
		e.Artifact)
}

// NewErrArtifactSource creates a new ErrArtifactSource error.
func NewErrArtifactSource(artifact string) error {
	return &ErrArtifactSource{Artifact: artifact}
}

// ErrUnsupportedValue is an error type that indicates a field has a value outside its allowed set.
type ErrUnsupportedValue struct {
	Field   string
	Value   string
	Allowed []string
}

// Error implements the error interface for type ErrUnsupportedValue.
func (e *ErrUnsupportedValue) Error() string {
	return fmt.Sprintf("config validation error: field '%s' has unsupported value '%s', allowed values are %v",
		e.Field, e.Value, e.Allowed)
}

// NewErrUnsupportedValue creates a new ErrUnsupportedValue error.
func NewErrUnsupportedValue(field, value string, allowed ...string) error {
	return &ErrUnsupportedValue{Field: field, Value: value, Allowed: allowed}
}
