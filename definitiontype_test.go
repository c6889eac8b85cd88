// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package aosmlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinitionType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want DefinitionType
	}{
		{"vnf", DefinitionTypeVNF},
		{"cnf", DefinitionTypeCNF},
		{"nsd", DefinitionTypeNSD},
		{"VNF", DefinitionTypeVNF},
		{"Cnf", DefinitionTypeCNF},
	}
	for _, test := range tests {
		got, err := ParseDefinitionType(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}
}

func TestParseDefinitionTypeUnknown(t *testing.T) {
	t.Parallel()
	_, err := ParseDefinitionType("pnf")
	assert.ErrorContains(t, err, "definition type not recognized: pnf")
}

func TestDefinitionTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "vnf", DefinitionTypeVNF.String())
	assert.Equal(t, "cnf", DefinitionTypeCNF.String())
	assert.Equal(t, "nsd", DefinitionTypeNSD.String())
}
