// Package environment contains the types and methods for fetching configuration from the local environment.
package environment

import "os"

const (
	fetchDefaultBaseDir    = ".aosmlib"              // fetchDefaultBaseDir is the default base directory for fetching remote artifacts.
	fetchDefaultBaseDirEnv = "AOSMLIB_DIR"           // fetchDefaultBaseDirEnv is the environment variable to override the default base directory.
	subscriptionIdEnv      = "AZURE_SUBSCRIPTION_ID" // subscriptionIdEnv is the environment variable containing the subscription to deploy to.
)

// AosmLibDir contents of the `AOSMLIB_DIR` environment variable, or the default which is `.aosmlib`.
func AosmLibDir() string {
	dir := fetchDefaultBaseDir
	if d := os.Getenv(fetchDefaultBaseDirEnv); d != "" {
		dir = d
	}
	return dir
}

// SubscriptionId contents of the `AZURE_SUBSCRIPTION_ID` environment variable, or an empty string if not set.
func SubscriptionId() string {
	return os.Getenv(subscriptionIdEnv)
}
