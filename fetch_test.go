// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package aosmlib

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemoteSource(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want bool
	}{
		{"https://example.com/charts/core-1.0.0.tgz", true},
		{"http://example.com/core.tgz", true},
		{"git::https://example.com/repo.git//charts/core", true},
		{"s3::https://s3.amazonaws.com/bucket/core.tgz", true},
		{"git+ssh://example.com/repo.git", true},
		{"charts/core-1.0.0.tgz", false},
		{"/opt/charts/core-1.0.0.tgz", false},
		{"./core.tgz", false},
		{"", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, IsRemoteSource(test.src), test.src)
	}
}

func TestTrimForcedGetter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "https://example.com/core.tgz", trimForcedGetter("git::https://example.com/core.tgz"))
	assert.Equal(t, "https://example.com/core.tgz", trimForcedGetter("https://example.com/core.tgz?ref=v1"))
	assert.Equal(t, "charts/core.tgz", trimForcedGetter("charts/core.tgz"))
}

func TestFetchArtifactLocalFile(t *testing.T) {
	t.Parallel()
	src := filepath.Join(t.TempDir(), "core-1.0.0.tgz")
	require.NoError(t, os.WriteFile(src, []byte("chart contents"), 0o644))
	dstDir := filepath.Join(t.TempDir(), "artifacts")

	got, err := FetchArtifact(context.Background(), src, dstDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dstDir, "core-1.0.0.tgz"), got)

	contents, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "chart contents", string(contents))
}
