/*
Copyright 2026 Nscale.

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

package fake

import (
	"maps"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
)

const subscriptionLevel = "Free"

func renderNetwork(n *network) openapi.Network {
	return openapi.Network{
		ID:                n.id,
		IsEnabled:         n.enabled,
		CreatedAt:         openapi.NewTimestamp(n.createdAt),
		SubscriptionLevel: subscriptionLevel,
	}
}

// memberships returns the networks a person belongs to, sorted by id, the
// first being their home network.
func (s *Server) memberships(userID string) []*network {
	var out []*network

	for _, id := range slices.Sorted(maps.Keys(s.networks)) {
		if _, ok := s.networks[id].people[userID]; ok {
			out = append(out, s.networks[id])
		}
	}

	return out
}

func (s *Server) personNetworks(userID string) []openapi.PersonNetwork {
	networks := s.memberships(userID)

	out := make([]openapi.PersonNetwork, len(networks))

	for i, n := range networks {
		out[i] = openapi.PersonNetwork{
			Network:     renderNetwork(n),
			HomeNetwork: i == 0,
		}
	}

	return out
}

// lookupNetworkPerson only lets callers see their own memberships.
func (s *Server) lookupNetworkPerson(n *network, p *person, id string) (*person, error) {
	other, err := s.lookupPerson(n, p, id)
	if err != nil {
		return nil, err
	}

	if other.ID != p.ID && !p.admin {
		return nil, HTTPForbidden("Permission was denied")
	}

	return other, nil
}

// getNetwork only resolves the network the request was made in, other
// tenants do not exist as far as the caller is concerned.
func (s *Server) getNetwork(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())

	if id := chi.URLParam(r, "id"); id != n.id {
		HandleError(w, r, HTTPNotFound(id))
		return
	}

	writeEntry(w, r, http.StatusOK, renderNetwork(n))
}

func (s *Server) listPersonNetworks(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	other, err := s.lookupNetworkPerson(n, p, chi.URLParam(r, "personId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	request, err := parsePaging(r, paging.DefaultMaxItems)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	writeList(w, r, s.personNetworks(other.ID), request)
}

func (s *Server) getPersonNetwork(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	other, err := s.lookupNetworkPerson(n, p, chi.URLParam(r, "personId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")

	for _, membership := range s.personNetworks(other.ID) {
		if membership.ID == id {
			writeEntry(w, r, http.StatusOK, membership)
			return
		}
	}

	HandleError(w, r, HTTPNotFound(id))
}
