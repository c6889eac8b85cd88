// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package aosmlib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	getter "github.com/hashicorp/go-getter"
)

// forcedGetterRegexp matches go-getter forcing tokens such as `git::` or `hg::`.
var forcedGetterRegexp = regexp.MustCompile(`^([a-z0-9]+)::`)

// schemeRegexp matches URL style sources, e.g. `https://...`.
var schemeRegexp = regexp.MustCompile(`^[a-z0-9+]+://`)

// IsRemoteSource returns true if the supplied artifact source is a remote
// go-getter source rather than a local file path.
func IsRemoteSource(src string) bool {
	return forcedGetterRegexp.MatchString(src) || schemeRegexp.MatchString(src)
}

// FetchArtifact fetches a remote artifact source (e.g. a helm chart tarball or
// an ARM template) to the supplied destination directory using go-getter.
// It returns the local path of the fetched artifact.
// The source string can be anything supported by go-getter, e.g. a HTTP URL or
// a git repository with a sub-path.
func FetchArtifact(ctx context.Context, src, destinationDirectory string) (string, error) {
	if err := os.MkdirAll(destinationDirectory, 0o755); err != nil {
		return "", fmt.Errorf("aosmlib: error creating artifact destination directory %s: %w", destinationDirectory, err)
	}
	dst := filepath.Join(destinationDirectory, filepath.Base(trimForcedGetter(src)))
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("aosmlib: error getting working directory: %w", err)
	}
	client := getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  wd,
		Mode: getter.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("aosmlib: error fetching artifact from %s: %w", src, err)
	}
	return dst, nil
}

// trimForcedGetter removes a go-getter forcing token and any query string from
// the source so that the local destination gets a sensible base name.
func trimForcedGetter(src string) string {
	src = forcedGetterRegexp.ReplaceAllString(src, "")
	before, _, _ := strings.Cut(src, "?")
	return before
}
