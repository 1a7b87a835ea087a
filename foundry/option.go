// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// clientConfig holds resolved configuration for the Foundry client.
type clientConfig struct {
	apiVersion string
	apiKey     string
	httpClient *http.Client
	headers    map[string]string
	credential azcore.TokenCredential
	pageSize   int
}

// Option configures a Foundry [Client].
type Option func(*clientConfig)

// WithAPIVersion overrides the api-version query parameter.
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) { c.apiVersion = version }
}

// WithAPIKey authenticates with an api-key header instead of Entra ID tokens.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) { c.apiKey = key }
}

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithHeaders adds custom headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) { c.headers = headers }
}

// WithCredential enables Entra ID token authentication using the provided credential.
// The client obtains and refreshes tokens automatically.
func WithCredential(cred azcore.TokenCredential) Option {
	return func(c *clientConfig) { c.credential = cred }
}

// WithPageSize sets how many agents are requested per page when listing.
func WithPageSize(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.pageSize = n
		}
	}
}
