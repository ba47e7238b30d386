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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
)

// Fixture is the environment a test runs in.  Everything it creates is
// removed by DeferCleanup in reverse order of creation.
type Fixture struct {
	Config *TestConfig
	Client *client.Client

	// Admin is the primary network administrator.
	Admin client.RequestContext

	// User and UserContext are set when the fixture was built with a user.
	User        *openapi.Person
	UserContext client.RequestContext

	// Site and DocumentLibraryID are set when the fixture was built with
	// a site.
	Site              *openapi.Site
	DocumentLibraryID string

	// FolderID is a scratch folder for the test's content.
	FolderID string
}

// AsAdmin switches the fixture client to the administrator.
func (f *Fixture) AsAdmin() *client.Client {
	f.Client.SetRequestContext(f.Admin)
	return f.Client
}

// AsUser switches the fixture client to the fixture's user.
func (f *Fixture) AsUser() *client.Client {
	Expect(f.User).NotTo(BeNil(), "fixture was built without a user")

	f.Client.SetRequestContext(f.UserContext)

	return f.Client
}

// FixtureBuilder builds fixtures.
type FixtureBuilder struct {
	config         *TestConfig
	client         *client.Client
	withUser       bool
	withSite       bool
	siteVisibility string
}

// NewFixture starts a fixture with just a scratch folder in the
// administrator's home.
func NewFixture(c *client.Client, config *TestConfig) *FixtureBuilder {
	return &FixtureBuilder{
		config: config,
		client: c,
	}
}

// WithUser adds an ordinary member of the primary network.
func (b *FixtureBuilder) WithUser() *FixtureBuilder {
	b.withUser = true
	return b
}

// WithSite creates a site and puts the scratch folder in its document
// library.
func (b *FixtureBuilder) WithSite(visibility string) *FixtureBuilder {
	b.withSite = true
	b.siteVisibility = visibility

	return b
}

// Build creates the fixture.
func (b *FixtureBuilder) Build(ctx context.Context) *Fixture {
	fixture := &Fixture{
		Config: b.config,
		Client: b.client,
		Admin:  AdminContext(b.config),
	}

	c := fixture.AsAdmin()

	if b.withUser {
		payload := NewPersonPayload().Build()

		person, err := c.People().Create(ctx, payload)
		Expect(err).NotTo(HaveOccurred())

		GinkgoWriter.Printf("Created person: %s\n", person.ID)

		fixture.User = person
		fixture.UserContext = client.RequestContext{
			Network:  b.config.NetworkID,
			UserID:   payload.ID,
			Password: payload.Password,
		}
	}

	parentID := client.NodeMy

	if b.withSite {
		site, err := c.Sites().Create(ctx, NewSitePayload().WithVisibility(b.siteVisibility).Build())
		Expect(err).NotTo(HaveOccurred())

		GinkgoWriter.Printf("Created site: %s\n", site.ID)

		DeferCleanup(func(ctx SpecContext) {
			GinkgoWriter.Printf("Cleaning up site: %s\n", site.ID)

			if err := fixture.AsAdmin().Sites().Delete(ctx, site.ID, true); err != nil && client.StatusCode(err) != http.StatusNotFound {
				GinkgoWriter.Printf("Warning: Failed to delete site %s: %v\n", site.ID, err)
			}
		})

		container, err := c.Sites().Container(ctx, site.ID, openapi.DocumentLibrary)
		Expect(err).NotTo(HaveOccurred())

		fixture.Site = site
		fixture.DocumentLibraryID = container.FolderID

		parentID = container.FolderID
	}

	folder := CreateFolderWithCleanup(ctx, fixture, parentID, NewFolderPayload().WithName(GenerateTestID()))

	fixture.FolderID = folder.ID

	return fixture
}

// deleteNode removes a node as the administrator, nodes already removed
// along with their parent are not an error.
func deleteNode(ctx context.Context, fixture *Fixture, nodeID string) {
	GinkgoWriter.Printf("Cleaning up node: %s\n", nodeID)

	if err := fixture.AsAdmin().Nodes().Delete(ctx, nodeID, true); err != nil && client.StatusCode(err) != http.StatusNotFound {
		GinkgoWriter.Printf("Warning: Failed to delete node %s: %v\n", nodeID, err)
	}
}

// CreateFolderWithCleanup creates a folder as the current identity and
// schedules its removal.
func CreateFolderWithCleanup(ctx context.Context, fixture *Fixture, parentID string, payload *NodePayloadBuilder) *openapi.Node {
	node, err := fixture.Client.Nodes().Create(ctx, parentID, payload.Build(), nil)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created folder %s with ID: %s\n", node.Name, node.ID)

	DeferCleanup(deleteNode, fixture, node.ID)

	return node
}

// CreateDocumentWithCleanup creates a document, uploads its content if any
// and schedules its removal.
func CreateDocumentWithCleanup(ctx context.Context, fixture *Fixture, parentID string, payload *NodePayloadBuilder, content string) *openapi.Node {
	node, err := fixture.Client.Nodes().Create(ctx, parentID, payload.Build(), nil)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created document %s with ID: %s\n", node.Name, node.ID)

	DeferCleanup(deleteNode, fixture, node.ID)

	if content == "" {
		return node
	}

	node, err = fixture.Client.Nodes().UpdateContent(ctx, node.ID, []byte(content), "text/plain", nil)
	Expect(err).NotTo(HaveOccurred())

	return node
}

// CreateChildren populates a folder with count children, alternating
// folders and documents when mixed is set.  The result is in the server's
// default order, folders first then by name.  Children are removed along
// with their parent.
func CreateChildren(ctx context.Context, fixture *Fixture, parentID string, count int, mixed bool) []openapi.Node {
	var folders, documents []openapi.Node

	for i := range count {
		payload := NewFolderPayload()

		if mixed && i%2 == 1 {
			payload = NewDocumentPayload()
		}

		payload.WithName(fmt.Sprintf("child-%04d", i))

		node, err := fixture.Client.Nodes().Create(ctx, parentID, payload.Build(), nil)
		Expect(err).NotTo(HaveOccurred())

		if node.IsFolder {
			folders = append(folders, node.Summary())
		} else {
			documents = append(documents, node.Summary())
		}
	}

	GinkgoWriter.Printf("Created %d children in %s\n", count, parentID)

	return append(folders, documents...)
}

// WaitForSizeDetails requests a folder size calculation and waits for it to
// complete.
func WaitForSizeDetails(ctx context.Context, fixture *Fixture, nodeID string) *openapi.SizeDetails {
	job, err := fixture.Client.Nodes().RequestSizeDetails(ctx, nodeID)
	Expect(err).NotTo(HaveOccurred())
	Expect(job.JobID).NotTo(BeEmpty())

	var details *openapi.SizeDetails

	Eventually(func(g Gomega) {
		details, err = fixture.Client.Nodes().SizeDetails(ctx, nodeID, job.JobID)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(details.Status).To(Equal(openapi.JobStatusCompleted))
	}).WithTimeout(fixture.Config.TestTimeout).WithPolling(fixture.Config.PollInterval).Should(Succeed())

	return details
}
