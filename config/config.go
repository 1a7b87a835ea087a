// Copyright (c) Microsoft. All rights reserved.

// Package config loads settings for connecting to an Azure AI Foundry project.
//
// Settings are read from, in increasing order of precedence:
// appsettings.json, a .env file, and the process environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// File names looked up in the configuration directory.
const (
	SettingsFile = "appsettings.json"
	EnvFile      = ".env"
)

// Environment variables that override file settings.
const (
	EnvProjectEndpoint = "PROJECT_ENDPOINT"
	EnvTenantID        = "AZURE_TENANT_ID"
	EnvAPIKey          = "PROJECT_API_KEY"
	EnvAPIVersion      = "AGENTS_API_VERSION"
)

// ErrConfig is returned when settings cannot be read or are incomplete.
var ErrConfig = errors.New("configuration error")

// Config holds the settings needed to reach the agent service.
type Config struct {
	ProjectEndpoint string `json:"ProjectEndpoint" validate:"required,url"`
	TenantID        string `json:"TenantId"`
	APIKey          string `json:"ApiKey"`
	APIVersion      string `json:"ApiVersion"`
}

var settings = validator.New(validator.WithRequiredStructEnabled())

// envNames maps struct fields to the variables that set them, for messages.
var envNames = map[string]string{
	"ProjectEndpoint": EnvProjectEndpoint,
}

// Load reads settings from dir. Both files are optional.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConfig, SettingsFile, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	dotenv, err := godotenv.Read(filepath.Join(dir, EnvFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, EnvFile, err)
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}

	override(&cfg.ProjectEndpoint, lookup(EnvProjectEndpoint))
	override(&cfg.TenantID, lookup(EnvTenantID))
	override(&cfg.APIKey, lookup(EnvAPIKey))
	override(&cfg.APIVersion, lookup(EnvAPIVersion))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func override(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Validate reports missing or malformed settings.
func (c *Config) Validate() error {
	err := settings.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if env, ok := envNames[name]; ok {
			name = fmt.Sprintf("%s (%s)", name, env)
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, "please set "+name)
		default:
			msgs = append(msgs, fmt.Sprintf("%s is not a valid %s", name, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(msgs, "; "))
}

// Credential returns the Entra ID credential for the configured tenant.
func (c *Config) Credential() (azcore.TokenCredential, error) {
	opts := &azidentity.DefaultAzureCredentialOptions{}
	if c.TenantID != "" {
		opts.TenantID = c.TenantID
	}
	cred, err := azidentity.NewDefaultAzureCredential(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: create Azure credential: %w", ErrConfig, err)
	}
	return cred, nil
}
