package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAosmLibDir(t *testing.T) {
	t.Setenv("AOSMLIB_DIR", "")
	assert.Equal(t, ".aosmlib", AosmLibDir())

	t.Setenv("AOSMLIB_DIR", "/var/cache/aosm")
	assert.Equal(t, "/var/cache/aosm", AosmLibDir())
}

func TestSubscriptionId(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "")
	assert.Empty(t, SubscriptionId())

	t.Setenv("AZURE_SUBSCRIPTION_ID", "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", SubscriptionId())
}
