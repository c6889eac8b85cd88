// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config contains the types and methods for loading and validating the
// input configuration file that describes a network function definition or
// network service design to be published.
package config
