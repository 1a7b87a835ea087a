// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

const (
	defaultAPIVersion = "v1"
	tokenScope        = "https://ai.azure.com/.default"
)

// transport is an unexported interface for HTTP communication.
// The default implementation uses net/http; tests inject a mock.
type transport interface {
	do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error)
}

// httpTransport is the default transport using net/http.
type httpTransport struct {
	client     *http.Client
	endpoint   string
	apiVersion string
	apiKey     string
	headers    map[string]string
	credential azcore.TokenCredential
}

func newHTTPTransport(endpoint string, opts *clientConfig) *httpTransport {
	t := &httpTransport{
		client:     opts.httpClient,
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiVersion: opts.apiVersion,
		apiKey:     opts.apiKey,
		headers:    opts.headers,
		credential: opts.credential,
	}
	if t.client == nil {
		t.client = http.DefaultClient
	}
	if t.apiVersion == "" {
		t.apiVersion = defaultAPIVersion
	}
	return t
}

func (t *httpTransport) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("api-version", t.apiVersion)

	req, err := http.NewRequestWithContext(ctx, method, t.endpoint+path+"?"+q.Encode(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	switch {
	case t.credential != nil:
		slog.DebugContext(ctx, "acquiring Entra ID token for agent service")
		token, err := t.credential.GetToken(ctx, policy.TokenRequestOptions{
			Scopes: []string{tokenScope},
		})
		if err != nil {
			return nil, fmt.Errorf("%w: get token: %w", ErrAuth, err)
		}
		req.Header.Set("Authorization", "Bearer "+token.Token)
	case t.apiKey != "":
		req.Header.Set("api-key", t.apiKey)
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, parseErrorResponse(resp)
	}

	return resp, nil
}
