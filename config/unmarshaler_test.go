// Copyright (c) Microsoft Corporation 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJson(t *testing.T) {
	data := []byte(`{"publisher_name": "pub", "location": "uksouth"}`)
	u := NewUnmarshaler(data, ".json")

	var dst map[string]interface{}

	err := u.Unmarshal(&dst)

	require.NoError(t, err)
	assert.Equal(t, "pub", dst["publisher_name"])
	assert.Equal(t, "uksouth", dst["location"])
}

func TestUnmarshalYaml(t *testing.T) {
	data := []byte(`
publisher_name: pub
location: uksouth
`)
	for _, ext := range []string{".yaml", ".yml", "yaml"} {
		u := NewUnmarshaler(data, ext)

		var dst map[string]interface{}

		err := u.Unmarshal(&dst)

		require.NoError(t, err)
		assert.Equal(t, "pub", dst["publisher_name"])
		assert.Equal(t, "uksouth", dst["location"])
	}
}

func TestUnmarshalUnsupportedExtension(t *testing.T) {
	u := NewUnmarshaler([]byte(`publisher_name = "pub"`), ".toml")

	var dst map[string]interface{}

	err := u.Unmarshal(&dst)

	assert.ErrorContains(t, err, "unsupported extension")
}
