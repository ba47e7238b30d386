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
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/fake"
)

// NewClient builds a client from the harness configuration, acting as the
// primary network's administrator.
func NewClient(ctx context.Context, config *TestConfig) (*client.Client, error) {
	c, err := client.New(ctx, client.Options{
		BaseURL:           config.BaseURL,
		RequestTimeout:    config.RequestTimeout,
		LogRequests:       config.LogRequests || config.DebugLogging,
		LogResponses:      config.LogResponses || config.DebugLogging,
		ValidateResponses: config.ValidateResponses,
		PollInterval:      config.PollInterval,
		PollTimeout:       config.TestTimeout,
	}, nil)
	if err != nil {
		return nil, err
	}

	c.SetRequestContext(AdminContext(config))

	return c, nil
}

// AdminContext is the primary network administrator.
func AdminContext(config *TestConfig) client.RequestContext {
	return client.RequestContext{
		Network:  config.NetworkID,
		UserID:   config.AdminUser,
		Password: config.AdminPassword,
	}
}

// SecondaryAdminContext is the administrator of the tenant used for
// isolation checks.
func SecondaryAdminContext(config *TestConfig) client.RequestContext {
	return client.RequestContext{
		Network:  config.SecondaryNetworkID,
		UserID:   config.SecondaryNetworkAdmin,
		Password: config.SecondaryNetworkPassword,
	}
}

// StartFakeServer serves both configured networks in process and points the
// configuration at it.  The caller closes the returned server.
func StartFakeServer(config *TestConfig) (*httptest.Server, error) {
	server := fake.New(&fake.Options{
		SizeDetailsPolls: 2,
	})

	if err := server.AddNetwork(config.NetworkID, config.AdminUser, config.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to create network %s: %w", config.NetworkID, err)
	}

	if err := server.AddNetwork(config.SecondaryNetworkID, config.SecondaryNetworkAdmin, config.SecondaryNetworkPassword); err != nil {
		return nil, fmt.Errorf("failed to create network %s: %w", config.SecondaryNetworkID, err)
	}

	ts := httptest.NewServer(server.Handler())

	config.BaseURL = ts.URL

	return ts, nil
}
