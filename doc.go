// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package aosmlib provides the data structures needed to publish Azure Operator
// Service Manager (AOSM) network function definitions and network service designs.
// It loads and validates the publishing configuration supplied by the user, and
// ensures that the Azure resources required before publishing (resource group,
// publisher, artifact stores and definition/design groups) exist.
//
// Internally the Azure SDK is used to manage the resources.
// It is up to the caller to build and upload the artifacts themselves.
package aosmlib
