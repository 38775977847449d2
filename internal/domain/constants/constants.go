// Package constants holds shared string constants used across layers.
package constants

const (
	// EnvDevelop is the environment name used by local development setups.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
