// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package deploy contains the types and methods for ensuring that the Azure
// resources required before publishing a network function definition or
// network service design exist, creating them only if they are absent.
package deploy
