// Copyright (c) Microsoft. All rights reserved.

package deploy

import "log/slog"

const defaultConcurrency = 4

// Option configures a [Deployer] via [New].
type Option func(*Deployer)

// WithLogger sets the logger for deployment progress.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deployer) { d.logger = logger }
}

// WithPlaceholders sets values substituted for {key} tokens in instructions.
func WithPlaceholders(values map[string]string) Option {
	return func(d *Deployer) { d.placeholders = values }
}

// WithConcurrency limits how many specifications are downloaded at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(d *Deployer) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithMiddleware wraps the agent service with middleware.
// Middleware is applied in the order provided (first = outermost).
func WithMiddleware(mws ...Middleware) Option {
	return func(d *Deployer) { d.middleware = append(d.middleware, mws...) }
}

// WithDryRun resolves every agent without creating or updating anything.
func WithDryRun(dryRun bool) Option {
	return func(d *Deployer) { d.dryRun = dryRun }
}
