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

// Package api provides integration test utilities for the content repository API.
//
// # Targets
//
// Suites run against a live repository when API_BASE_URL is set, otherwise
// against the in-process server from pkg/fake, seeded with the networks and
// administrators named by the configuration.  The same expectations hold for
// both, so a test that passes in process and fails live points at the
// server.
//
// # Fixtures
//
// A Fixture owns a scratch folder, and optionally a user and a site, created
// as the network administrator.  Everything is torn down with DeferCleanup in
// reverse order of creation, so nested content goes before its parent and
// a failed test leaves nothing behind.
//
// # Verification
//
// Pages are checked against the dataset the fixture created with
// paging.Verify, which derives the expected pagination from the request
// alone.  Error responses are checked by the client for a well formed error
// envelope before ExpectStatus sees them.
//
// # Future Improvements
//
// * Live runs cannot remove the people a fixture creates, the public API has
// no delete operation for them.
package api
