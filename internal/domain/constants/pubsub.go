// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published by the service.
const (
	EventTypeStoreCreated = "store.created"
)

// EnvLocal is the env.env value of a developer machine.
const EnvLocal = "local"
