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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/test/api"
)

func nodeIDs(nodes []openapi.Node) set.Set[string] {
	ids := make([]string, len(nodes))

	for i := range nodes {
		ids[i] = nodes[i].ID
	}

	return set.New[string](ids...)
}

var _ = Describe("Network Isolation", func() {
	var fixture *api.Fixture

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).WithUser().Build(ctx)
	})

	Context("When reading networks", func() {
		Describe("Given the caller's own network", func() {
			It("should return it", func() {
				network, err := apiClient.Networks().Get(ctx, config.NetworkID)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(openapi.Network{
					ID:                config.NetworkID,
					IsEnabled:         network.IsEnabled,
					PaidNetwork:       network.PaidNetwork,
					SubscriptionLevel: network.SubscriptionLevel,
				}, network)
			})

			It("should list it as the user's home network", func() {
				page, err := fixture.AsUser().Networks().PersonNetworks(ctx, "-me-", nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List).To(HaveLen(1))
				Expect(page.List[0].ID).To(Equal(config.NetworkID))
				Expect(page.List[0].HomeNetwork).To(BeTrue())

				membership, err := fixture.AsUser().Networks().PersonNetwork(ctx, "-me-", config.NetworkID)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(page.List[0], membership)
			})
		})

		Describe("Given another tenant's network", func() {
			It("should not find it", func() {
				_, err := apiClient.Networks().Get(ctx, config.SecondaryNetworkID)
				api.ExpectStatus(err, http.StatusNotFound)

				_, err = fixture.AsUser().Networks().PersonNetwork(ctx, "-me-", config.SecondaryNetworkID)
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})

		Describe("Given another person's memberships", func() {
			It("should deny ordinary users", func() {
				_, err := fixture.AsUser().Networks().PersonNetworks(ctx, config.AdminUser, nil)
				api.ExpectStatus(err, http.StatusForbidden)
			})
		})
	})

	Context("When accessing content across tenants", func() {
		Describe("Given credentials for one network", func() {
			It("should not authenticate against another", func() {
				c := fixture.Client

				c.SetRequestContext(client.RequestContext{
					Network:  config.SecondaryNetworkID,
					UserID:   fixture.UserContext.UserID,
					Password: fixture.UserContext.Password,
				})

				_, err := c.Nodes().Get(ctx, client.NodeMy, nil)
				api.ExpectStatus(err, http.StatusUnauthorized)
			})

			It("should not see the other tenant's content", func() {
				c := fixture.Client

				c.SetRequestContext(api.SecondaryAdminContext(config))

				root, err := c.Nodes().Children(ctx, client.NodeRoot, nil)
				Expect(err).NotTo(HaveOccurred())

				_, err = c.Nodes().Get(ctx, fixture.FolderID, nil)
				api.ExpectStatus(err, http.StatusNotFound)

				primary, err := fixture.AsAdmin().Nodes().Children(ctx, client.NodeRoot, nil)
				Expect(err).NotTo(HaveOccurred())

				shared := nodeIDs(root.List).Intersection(nodeIDs(primary.List))
				Expect(slices.Collect(shared.All())).To(BeEmpty())
			})
		})

		Describe("Given no credentials", func() {
			It("should reject the request", func() {
				c := fixture.Client
				c.ClearRequestContext()

				_, err := c.Nodes().Get(ctx, client.NodeMy, nil)
				api.ExpectStatus(err, http.StatusUnauthorized)
			})
		})
	})
})
