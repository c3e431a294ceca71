// Package constants contains values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Checkout event types carried in the "event_type" message attribute
const (
	EventPaymentCaptured = "payment.captured"
	EventOrderCreated    = "order.created"
)

// AccessTokenCookie is the HTTP-only cookie the sign-in endpoint sets.
const AccessTokenCookie = "accessToken"

// EmptyCartsSentinel is returned as the data payload when a user has no carts.
const EmptyCartsSentinel = "empty"
