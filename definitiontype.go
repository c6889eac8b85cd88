// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package aosmlib

import (
	"fmt"
	"strings"
)

// DefinitionType is the kind of definition being published.
// It selects the configuration variant and the set of resources that
// need to exist before publishing.
type DefinitionType int

const (
	// DefinitionTypeVNF is a virtual machine based network function definition.
	DefinitionTypeVNF DefinitionType = iota
	// DefinitionTypeCNF is a container based network function definition.
	DefinitionTypeCNF
	// DefinitionTypeNSD is a network service design.
	DefinitionTypeNSD
)

// ParseDefinitionType converts the user supplied string to a DefinitionType.
func ParseDefinitionType(s string) (DefinitionType, error) {
	switch strings.ToLower(s) {
	case "vnf":
		return DefinitionTypeVNF, nil
	case "cnf":
		return DefinitionTypeCNF, nil
	case "nsd":
		return DefinitionTypeNSD, nil
	}
	return 0, fmt.Errorf("definition type not recognized: %s, options are: vnf, cnf or nsd", s)
}

// String implements the Stringer interface for DefinitionType.
func (d DefinitionType) String() string {
	return [...]string{"vnf", "cnf", "nsd"}[d]
}
