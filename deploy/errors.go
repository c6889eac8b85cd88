// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import "fmt"

var _ error = (*ErrUnexpectedProvisioningState)(nil)
var _ error = (*ErrPartialManifestState)(nil)

// ErrUnexpectedProvisioningState is an error type that indicates a create
// operation completed but did not reach the Succeeded provisioning state.
type ErrUnexpectedProvisioningState struct {
	ResourceType string
	ResourceName string
	State        string
}

// Error implements the error interface for type ErrUnexpectedProvisioningState.
func (e *ErrUnexpectedProvisioningState) Error() string {
	return fmt.Sprintf("creation of %s '%s' completed, but the provisioning state returned is '%s'",
		e.ResourceType, e.ResourceName, e.State)
}

// NewErrUnexpectedProvisioningState creates a new ErrUnexpectedProvisioningState error.
func NewErrUnexpectedProvisioningState(resourceType, resourceName, state string) error {
	return &ErrUnexpectedProvisioningState{
		ResourceType: resourceType,
		ResourceName: resourceName,
		State:        state,
	}
}

// ErrPartialManifestState is an error type that indicates exactly one of the
// two artifact manifests required by a VNF definition exists. This is an
// inconsistent intermediate state that is never repaired automatically.
type ErrPartialManifestState struct {
	Existing string
	Missing  string
}

// Error implements the error interface for type ErrPartialManifestState.
func (e *ErrPartialManifestState) Error() string {
	return fmt.Sprintf(
		"only one of the required artifact manifests exists (found '%s', missing '%s'); cannot proceed: "+
			"delete the network function definition version and publish again from scratch",
		e.Existing, e.Missing)
}

// NewErrPartialManifestState creates a new ErrPartialManifestState error.
func NewErrPartialManifestState(existing, missing string) error {
	return &ErrPartialManifestState{Existing: existing, Missing: missing}
}
