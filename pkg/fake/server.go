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

// Package fake is an in-memory content repository that reproduces the
// observable wire behaviour of the public REST API and CMIS browser binding,
// so the harness can be exercised without a live server.  It stores nothing
// durably and implements no real versioning, rendering or tenancy.
package fake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
)

var (
	ErrNetworkExists = errors.New("network already exists")
	ErrNoNetwork     = errors.New("network not found")
	ErrPersonExists  = errors.New("person already exists")
)

const (
	defaultNetwork = "-default-"

	companyHome = "Company Home"
	sitesHome   = "Sites"
	userHomes   = "User Homes"
)

// Options tune the fake's asynchronous behaviour.
type Options struct {
	// SizeDetailsPolls is the number of reads a size calculation reports
	// IN_PROGRESS before it completes.
	SizeDetailsPolls int
}

type person struct {
	openapi.Person

	password string
	admin    bool
	homeID   string

	// favourites are oldest first.
	favourites []*favourite
}

type favourite struct {
	guid      string
	kind      string
	createdAt time.Time
}

type comment struct {
	id         string
	content    string
	createdAt  time.Time
	modifiedAt time.Time
	createdBy  string
	modifiedBy string
	edited     bool
}

type version struct {
	label      string
	comment    string
	name       string
	content    []byte
	mimeType   string
	modifiedAt time.Time
	modifiedBy string
}

type rendition struct {
	content  []byte
	mimeType string
}

type rating struct {
	value   any
	ratedAt time.Time
}

type node struct {
	id         string
	name       string
	nodeType   string
	parentID   string
	createdAt  time.Time
	modifiedAt time.Time
	createdBy  string
	modifiedBy string
	aspects    []string
	properties map[string]any
	content    []byte
	mimeType   string
	system     bool

	// versions are oldest first.
	versions   []*version
	renditions map[string]*rendition

	// ratings are keyed by scheme then user.
	ratings map[string]map[string]*rating

	// comments are oldest first.
	comments []*comment
}

func (n *node) isFolder() bool {
	return n.nodeType == openapi.NodeTypeFolder
}

type site struct {
	openapi.Site

	creator   string
	folderID  string
	libraryID string
	members   map[string]string
}

type sizeJob struct {
	id     string
	nodeID string
	polls  int
}

type network struct {
	id        string
	createdAt time.Time
	enabled   bool
	rootID    string
	sitesID   string
	homesID   string

	people map[string]*person
	nodes  map[string]*node
	sites  map[string]*site
	jobs   map[string]*sizeJob
}

// Server is the fake repository, it is safe for concurrent use as every
// request is serialized.
type Server struct {
	lock     sync.Mutex
	options  Options
	networks map[string]*network
	now      func() time.Time
}

// New returns an empty repository, networks are added with AddNetwork.
func New(options *Options) *Server {
	s := &Server{
		networks: map[string]*network{},
		now:      time.Now,
	}

	if options != nil {
		s.options = *options
	}

	return s
}

func (s *Server) timestamp() time.Time {
	return s.now().Truncate(time.Millisecond)
}

// AddNetwork creates a tenant with an administrator.
func (s *Server) AddNetwork(id, adminID, password string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.networks[id]; ok {
		return fmt.Errorf("%w: %s", ErrNetworkExists, id)
	}

	n := &network{
		id:        id,
		createdAt: s.timestamp(),
		enabled:   true,
		people:    map[string]*person{},
		nodes:     map[string]*node{},
		sites:     map[string]*site{},
		jobs:      map[string]*sizeJob{},
	}

	root := s.newNode(n, companyHome, openapi.NodeTypeFolder, "", adminID)
	root.system = true
	n.rootID = root.id

	sites := s.newNode(n, sitesHome, openapi.NodeTypeFolder, root.id, adminID)
	sites.system = true
	n.sitesID = sites.id

	homes := s.newNode(n, userHomes, openapi.NodeTypeFolder, root.id, adminID)
	homes.system = true
	n.homesID = homes.id

	s.addPerson(n, &openapi.PersonBodyCreate{
		ID:        adminID,
		FirstName: "Administrator",
		Email:     adminID + "@example.com",
		Password:  password,
	}, true)

	s.networks[id] = n

	return nil
}

// AddPerson creates a non-administrative user in a network.
func (s *Server) AddPerson(networkID string, body *openapi.PersonBodyCreate) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	n, ok := s.networks[networkID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoNetwork, networkID)
	}

	if _, ok := n.people[body.ID]; ok {
		return fmt.Errorf("%w: %s", ErrPersonExists, body.ID)
	}

	s.addPerson(n, body, false)

	return nil
}

func (s *Server) addPerson(n *network, body *openapi.PersonBodyCreate, admin bool) *person {
	enabled := true

	if body.Enabled != nil {
		enabled = *body.Enabled
	}

	p := &person{
		Person: openapi.Person{
			ID:          body.ID,
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			DisplayName: strings.TrimSpace(body.FirstName + " " + body.LastName),
			Email:       body.Email,
			Enabled:     enabled,
		},
		password: body.Password,
		admin:    admin,
	}

	home := s.newNode(n, body.ID, openapi.NodeTypeFolder, n.homesID, body.ID)
	p.homeID = home.id

	n.people[p.ID] = p

	return p
}

func (s *Server) newNode(n *network, name, nodeType, parentID, user string) *node {
	now := s.timestamp()

	nd := &node{
		id:         uuid.NewString(),
		name:       name,
		nodeType:   nodeType,
		parentID:   parentID,
		createdAt:  now,
		modifiedAt: now,
		createdBy:  user,
		modifiedBy: user,
		aspects:    []string{"cm:auditable"},
		properties: map[string]any{},
		renditions: map[string]*rendition{},
		ratings:    map[string]map[string]*rating{},
	}

	n.nodes[nd.id] = nd

	return nd
}

type contextKey int

const (
	networkKey contextKey = iota
	personKey
)

func networkFromContext(ctx context.Context) *network {
	//nolint:forcetypeassert
	return ctx.Value(networkKey).(*network)
}

func personFromContext(ctx context.Context) *person {
	//nolint:forcetypeassert
	return ctx.Value(personKey).(*person)
}

// resolveNetwork finds the tenant a request is for, -default- selects the
// caller's home network.
func (s *Server) resolveNetwork(networkID, userID string) *network {
	if networkID != defaultNetwork {
		return s.networks[networkID]
	}

	if memberships := s.memberships(userID); len(memberships) != 0 {
		return memberships[0]
	}

	return nil
}

// authenticate serializes requests and resolves the caller, anything other
// than a valid member of the addressed network is a 401.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()

		userID, password, ok := r.BasicAuth()
		if !ok {
			unauthorized(w)
			return
		}

		n := s.resolveNetwork(chi.URLParam(r, "networkId"), userID)
		if n == nil || !n.enabled {
			unauthorized(w)
			return
		}

		p, ok := n.people[userID]
		if !ok || !p.Enabled || p.password != password {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), networkKey, n)
		ctx = context.WithValue(ctx, personKey, p)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func notImplemented(w http.ResponseWriter, r *http.Request) {
	HandleError(w, r, HTTPNotImplemented())
}

func notFound(w http.ResponseWriter, r *http.Request) {
	HandleError(w, r, HTTPNotFound(r.URL.Path))
}

func decodeBody(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return HTTPBadRequest("Could not read content from HTTP request body: %s", err.Error())
	}

	return nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.NotFound(notFound)
	router.MethodNotAllowed(notImplemented)

	router.Route("/alfresco/api/{networkId}/public", func(router chi.Router) {
		router.Use(s.authenticate)
		router.NotFound(notFound)
		router.MethodNotAllowed(notImplemented)

		router.Route("/alfresco/versions/1", func(router chi.Router) {
			router.NotFound(notFound)
			router.MethodNotAllowed(notImplemented)

			router.Get("/networks/{id}", s.getNetwork)
			router.Get("/people/{personId}/networks", s.listPersonNetworks)
			router.Get("/people/{personId}/networks/{id}", s.getPersonNetwork)

			router.Get("/people", s.listPeople)
			router.Post("/people", s.createPerson)
			router.Get("/people/{personId}", s.getPerson)
			router.Get("/people/{personId}/favorites", s.listFavourites)
			router.Post("/people/{personId}/favorites", s.createFavourite)
			router.Get("/people/{personId}/favorites/{targetGuid}", s.getFavourite)
			router.Delete("/people/{personId}/favorites/{targetGuid}", s.deleteFavourite)

			router.Get("/sites", s.listSites)
			router.Post("/sites", s.createSite)
			router.Get("/sites/{siteId}", s.getSite)
			router.Delete("/sites/{siteId}", s.deleteSite)
			router.Get("/sites/{siteId}/containers", s.listSiteContainers)
			router.Get("/sites/{siteId}/containers/{containerId}", s.getSiteContainer)

			router.Get("/nodes/{nodeId}", s.getNode)
			router.Put("/nodes/{nodeId}", s.updateNode)
			router.Delete("/nodes/{nodeId}", s.deleteNode)
			router.Get("/nodes/{nodeId}/children", s.listChildren)
			router.Post("/nodes/{nodeId}/children", s.createChild)
			router.Get("/nodes/{nodeId}/content", s.getContent)
			router.Put("/nodes/{nodeId}/content", s.updateContent)
			router.Get("/nodes/{nodeId}/versions", s.listVersions)
			router.Get("/nodes/{nodeId}/versions/{versionId}", s.getVersion)
			router.Get("/nodes/{nodeId}/versions/{versionId}/content", s.getVersionContent)
			router.Get("/nodes/{nodeId}/renditions", s.listRenditions)
			router.Post("/nodes/{nodeId}/renditions", s.createRendition)
			router.Get("/nodes/{nodeId}/renditions/{renditionId}", s.getRendition)
			router.Get("/nodes/{nodeId}/renditions/{renditionId}/content", s.getRenditionContent)
			router.Get("/nodes/{nodeId}/ratings", s.listRatings)
			router.Post("/nodes/{nodeId}/ratings", s.createRating)
			router.Get("/nodes/{nodeId}/ratings/{ratingId}", s.getRating)
			router.Delete("/nodes/{nodeId}/ratings/{ratingId}", s.deleteRating)
			router.Get("/nodes/{nodeId}/comments", s.listComments)
			router.Post("/nodes/{nodeId}/comments", s.createComment)
			router.Put("/nodes/{nodeId}/comments/{commentId}", s.updateComment)
			router.Delete("/nodes/{nodeId}/comments/{commentId}", s.deleteComment)
			router.Post("/nodes/{nodeId}/size-details", s.createSizeDetails)
			router.Get("/nodes/{nodeId}/size-details/{jobId}", s.getSizeDetails)
		})

		router.Get("/cmis/versions/1.1/browser/root", s.cmisRoot)
	})

	return router
}
