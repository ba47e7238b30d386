/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrConfiguration = errors.New("configuration error")

// Defaults used against the in-process server.
const (
	fakeNetworkID                = "acme.test"
	fakeAdminUser                = "admin"
	fakeAdminPassword            = "admin"
	fakeSecondaryNetworkID       = "other.test"
	fakeSecondaryNetworkAdmin    = "root"
	fakeSecondaryNetworkPassword = "root"
)

type TestConfig struct {
	// BaseURL is the repository root, when empty the suites run against
	// an in-process server.
	BaseURL                  string
	AdminUser                string
	AdminPassword            string
	NetworkID                string
	SecondaryNetworkID       string
	SecondaryNetworkAdmin    string
	SecondaryNetworkPassword string
	RequestTimeout           time.Duration
	TestTimeout              time.Duration
	PollInterval             time.Duration
	SkipIntegration          bool
	DebugLogging             bool
	LogRequests              bool
	LogResponses             bool
	ValidateResponses        bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:                  os.Getenv("API_BASE_URL"),
		AdminUser:                os.Getenv("API_ADMIN_USER"),
		AdminPassword:            os.Getenv("API_ADMIN_PASSWORD"),
		NetworkID:                os.Getenv("TEST_NETWORK_ID"),
		SecondaryNetworkID:       os.Getenv("TEST_SECONDARY_NETWORK_ID"),
		SecondaryNetworkAdmin:    os.Getenv("TEST_SECONDARY_NETWORK_ADMIN"),
		SecondaryNetworkPassword: os.Getenv("TEST_SECONDARY_NETWORK_PASSWORD"),
		RequestTimeout:           getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:              getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		PollInterval:             getDurationWithDefault("POLL_INTERVAL", time.Second),
		SkipIntegration:          getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:             getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:              getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:             getBoolWithDefault("LOG_RESPONSES", false),
		ValidateResponses:        getBoolWithDefault("VALIDATE_RESPONSES", true),
	}

	if config.UseFake() {
		config.applyFakeDefaults()
		return config, nil
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UseFake reports whether no live server is configured.
func (c *TestConfig) UseFake() bool {
	return c.BaseURL == ""
}

func (c *TestConfig) applyFakeDefaults() {
	setDefault := func(value *string, defaultValue string) {
		if *value == "" {
			*value = defaultValue
		}
	}

	setDefault(&c.AdminUser, fakeAdminUser)
	setDefault(&c.AdminPassword, fakeAdminPassword)
	setDefault(&c.NetworkID, fakeNetworkID)
	setDefault(&c.SecondaryNetworkID, fakeSecondaryNetworkID)
	setDefault(&c.SecondaryNetworkAdmin, fakeSecondaryNetworkAdmin)
	setDefault(&c.SecondaryNetworkPassword, fakeSecondaryNetworkPassword)

	// Jobs complete after a couple of polls, there is nothing to wait for.
	c.PollInterval = 10 * time.Millisecond
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"API_ADMIN_USER":                  config.AdminUser,
		"API_ADMIN_PASSWORD":              config.AdminPassword,
		"TEST_NETWORK_ID":                 config.NetworkID,
		"TEST_SECONDARY_NETWORK_ID":       config.SecondaryNetworkID,
		"TEST_SECONDARY_NETWORK_ADMIN":    config.SecondaryNetworkAdmin,
		"TEST_SECONDARY_NETWORK_PASSWORD": config.SecondaryNetworkPassword,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: missing required configuration: %s. Please set these environment variables or add them to a .env file", ErrConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
