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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/test/api"
)

var _ = Describe("Site Management", func() {
	Context("When creating a site", func() {
		Describe("Given a valid payload", func() {
			var fixture *api.Fixture

			BeforeEach(func() {
				fixture = api.NewFixture(apiClient, config).WithUser().WithSite(openapi.SiteVisibilityPrivate).Build(ctx)
			})

			It("should make the creator a manager", func() {
				Expect(fixture.Site.Role).To(Equal("SiteManager"))

				site, err := apiClient.Sites().Get(ctx, fixture.Site.ID)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(*fixture.Site, site)
			})

			It("should provide a document library", func() {
				containers, err := apiClient.Sites().Containers(ctx, fixture.Site.ID, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(containers.List).To(HaveLen(1))
				api.VerifyEntry(openapi.SiteContainer{
					ID:       openapi.DocumentLibrary,
					FolderID: fixture.DocumentLibraryID,
				}, &containers.List[0])

				_, err = apiClient.Sites().Container(ctx, fixture.Site.ID, "wiki")
				api.ExpectStatus(err, http.StatusNotFound)
			})

			It("should hide a private site from non-members", func() {
				_, err := fixture.AsUser().Sites().Get(ctx, fixture.Site.ID)
				api.ExpectStatus(err, http.StatusNotFound)

				page, err := fixture.AsUser().Sites().List(ctx, nil)
				Expect(err).NotTo(HaveOccurred())

				for _, site := range page.List {
					Expect(site.ID).NotTo(Equal(fixture.Site.ID))
				}
			})

			It("should not reveal a private site to non-members deleting it", func() {
				api.ExpectStatus(fixture.AsUser().Sites().Delete(ctx, fixture.Site.ID, true), http.StatusNotFound)

				_, err := fixture.AsAdmin().Sites().Get(ctx, fixture.Site.ID)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Describe("Given a site visible to everyone", func() {
			DescribeTable("should refuse deletion by non-members",
				func(visibility string) {
					fixture := api.NewFixture(apiClient, config).WithUser().WithSite(visibility).Build(ctx)

					site, err := fixture.AsUser().Sites().Get(ctx, fixture.Site.ID)
					Expect(err).NotTo(HaveOccurred())
					Expect(site.Role).To(BeEmpty())

					api.ExpectStatus(fixture.AsUser().Sites().Delete(ctx, fixture.Site.ID, true), http.StatusForbidden)

					_, err = fixture.AsAdmin().Sites().Get(ctx, fixture.Site.ID)
					Expect(err).NotTo(HaveOccurred())
				},
				Entry("public", openapi.SiteVisibilityPublic),
				Entry("moderated", openapi.SiteVisibilityModerated),
			)
		})

		Describe("Given a title and no id", func() {
			It("should derive the id from the title", func() {
				title := "Harness " + api.GenerateTestID()

				site, err := apiClient.Sites().Create(ctx, api.NewSitePayload().WithID("").WithTitle(title).Build())
				Expect(err).NotTo(HaveOccurred())

				DeferCleanup(func(ctx SpecContext) {
					Expect(apiClient.Sites().Delete(ctx, site.ID, true)).To(Succeed())
				})

				Expect(site.ID).To(MatchRegexp("^harness-test-[a-z0-9]+$"))
			})
		})

		Describe("Given an invalid payload", func() {
			It("should reject an unknown visibility", func() {
				_, err := apiClient.Sites().Create(ctx, api.NewSitePayload().WithVisibility("SECRET").Build())
				api.ExpectStatus(err, http.StatusBadRequest)
			})

			It("should reject a duplicate id", func() {
				fixture := api.NewFixture(apiClient, config).WithSite(openapi.SiteVisibilityPublic).Build(ctx)

				_, err := apiClient.Sites().Create(ctx, api.NewSitePayload().WithID(fixture.Site.ID).Build())
				api.ExpectStatus(err, http.StatusConflict)
			})
		})
	})

	Context("When deleting a site", func() {
		Describe("Given the caller manages it", func() {
			It("should remove the site and its content", func() {
				fixture := api.NewFixture(apiClient, config).WithSite(openapi.SiteVisibilityPublic).Build(ctx)

				Expect(apiClient.Sites().Delete(ctx, fixture.Site.ID, true)).To(Succeed())

				_, err := apiClient.Sites().Get(ctx, fixture.Site.ID)
				api.ExpectStatus(err, http.StatusNotFound)

				_, err = apiClient.Nodes().Get(ctx, fixture.FolderID, nil)
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})
})
