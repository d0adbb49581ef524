package endpoints

import (
	"github.com/speakeasy-app/speakeasy/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct{}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{},

		// Speak pipeline endpoints
		&SpeakTextEndpoint{},
		&SpeakFileEndpoint{},
		&VoicesEndpoint{},

		// Translation endpoint
		&TranslateEndpoint{},

		// Form endpoints
		&FormsExtractEndpoint{},
		&FormsPopulateEndpoint{},
	}
}
