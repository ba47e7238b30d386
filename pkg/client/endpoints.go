/*
Copyright 2024-2025 the Unikorn Authors.
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

package client

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrRoute is returned when a resource is unknown or given the wrong ids.
	ErrRoute = errors.New("route error")
)

// DefaultNetwork is the network used when no tenant is selected.
const DefaultNetwork = "-default-"

// Resource is the logical name of a REST resource.
type Resource string

const (
	ResourceNetwork        Resource = "network"
	ResourcePersonNetworks Resource = "person.networks"
	ResourcePersonNetwork  Resource = "person.network"

	ResourcePeople           Resource = "people"
	ResourcePerson           Resource = "person"
	ResourcePersonFavourites Resource = "person.favorites"
	ResourcePersonFavourite  Resource = "person.favorite"

	ResourceSites          Resource = "sites"
	ResourceSite           Resource = "site"
	ResourceSiteContainers Resource = "site.containers"
	ResourceSiteContainer  Resource = "site.container"

	ResourceNode                 Resource = "node"
	ResourceNodeChildren         Resource = "node.children"
	ResourceNodeContent          Resource = "node.content"
	ResourceNodeVersions         Resource = "node.versions"
	ResourceNodeVersion          Resource = "node.version"
	ResourceNodeVersionContent   Resource = "node.version.content"
	ResourceNodeRenditions       Resource = "node.renditions"
	ResourceNodeRendition        Resource = "node.rendition"
	ResourceNodeRenditionContent Resource = "node.rendition.content"
	ResourceNodeRatings          Resource = "node.ratings"
	ResourceNodeRating           Resource = "node.rating"
	ResourceNodeComments         Resource = "node.comments"
	ResourceNodeComment          Resource = "node.comment"
	ResourceNodeSizeDetails      Resource = "node.size-details"
	ResourceNodeSizeDetailsJob   Resource = "node.size-details.job"

	ResourceCMISRoot Resource = "cmis.root"
)

type binding int

const (
	bindingPublic binding = iota
	bindingCMIS
)

type route struct {
	binding  binding
	template string
}

// routes is the table of every resource the client can address, templates
// are expanded in order with path escaped identifiers.
//
//nolint:gochecknoglobals
var routes = map[Resource]route{
	ResourceNetwork:        {bindingPublic, "/networks/%s"},
	ResourcePersonNetworks: {bindingPublic, "/people/%s/networks"},
	ResourcePersonNetwork:  {bindingPublic, "/people/%s/networks/%s"},

	ResourcePeople:           {bindingPublic, "/people"},
	ResourcePerson:           {bindingPublic, "/people/%s"},
	ResourcePersonFavourites: {bindingPublic, "/people/%s/favorites"},
	ResourcePersonFavourite:  {bindingPublic, "/people/%s/favorites/%s"},

	ResourceSites:          {bindingPublic, "/sites"},
	ResourceSite:           {bindingPublic, "/sites/%s"},
	ResourceSiteContainers: {bindingPublic, "/sites/%s/containers"},
	ResourceSiteContainer:  {bindingPublic, "/sites/%s/containers/%s"},

	ResourceNode:                 {bindingPublic, "/nodes/%s"},
	ResourceNodeChildren:         {bindingPublic, "/nodes/%s/children"},
	ResourceNodeContent:          {bindingPublic, "/nodes/%s/content"},
	ResourceNodeVersions:         {bindingPublic, "/nodes/%s/versions"},
	ResourceNodeVersion:          {bindingPublic, "/nodes/%s/versions/%s"},
	ResourceNodeVersionContent:   {bindingPublic, "/nodes/%s/versions/%s/content"},
	ResourceNodeRenditions:       {bindingPublic, "/nodes/%s/renditions"},
	ResourceNodeRendition:        {bindingPublic, "/nodes/%s/renditions/%s"},
	ResourceNodeRenditionContent: {bindingPublic, "/nodes/%s/renditions/%s/content"},
	ResourceNodeRatings:          {bindingPublic, "/nodes/%s/ratings"},
	ResourceNodeRating:           {bindingPublic, "/nodes/%s/ratings/%s"},
	ResourceNodeComments:         {bindingPublic, "/nodes/%s/comments"},
	ResourceNodeComment:          {bindingPublic, "/nodes/%s/comments/%s"},
	ResourceNodeSizeDetails:      {bindingPublic, "/nodes/%s/size-details"},
	ResourceNodeSizeDetailsJob:   {bindingPublic, "/nodes/%s/size-details/%s"},

	ResourceCMISRoot: {bindingCMIS, "/root"},
}

// Target is a resource and the identifiers that fill its template.
type Target struct {
	Resource Resource
	IDs      []string
}

// At addresses a resource.
func At(resource Resource, ids ...string) Target {
	return Target{
		Resource: resource,
		IDs:      ids,
	}
}

func (t Target) String() string {
	return fmt.Sprintf("%s%v", t.Resource, t.IDs)
}

// Endpoints expands the route table for one network.
type Endpoints struct {
	network string
}

// NewEndpoints creates endpoints scoped to a network, an empty network
// selects the default.
func NewEndpoints(network string) *Endpoints {
	if network == "" {
		network = DefaultNetwork
	}

	return &Endpoints{
		network: network,
	}
}

// PublicAPI is the prefix of the public REST API.
func (e *Endpoints) PublicAPI() string {
	return fmt.Sprintf("/alfresco/api/%s/public/alfresco/versions/1",
		url.PathEscape(e.network))
}

// CMISBrowser is the prefix of the CMIS browser binding.
func (e *Endpoints) CMISBrowser() string {
	return fmt.Sprintf("/alfresco/api/%s/public/cmis/versions/1.1/browser",
		url.PathEscape(e.network))
}

// Path returns the full path of a resource.
func (e *Endpoints) Path(resource Resource, ids ...string) (string, error) {
	r, ok := routes[resource]
	if !ok {
		return "", fmt.Errorf("%w: unknown resource %s", ErrRoute, resource)
	}

	if n := strings.Count(r.template, "%s"); n != len(ids) {
		return "", fmt.Errorf("%w: resource %s takes %d ids, got %d", ErrRoute, resource, n, len(ids))
	}

	args := make([]any, len(ids))

	for i, id := range ids {
		if id == "" {
			return "", fmt.Errorf("%w: resource %s id %d is empty", ErrRoute, resource, i)
		}

		args[i] = url.PathEscape(id)
	}

	prefix := e.PublicAPI()

	if r.binding == bindingCMIS {
		prefix = e.CMISBrowser()
	}

	return prefix + fmt.Sprintf(r.template, args...), nil
}
