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

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/where"
	"github.com/unikorn-cloud/content-harness/test/api"
)

var _ = Describe("Document Renditions", func() {
	var (
		fixture  *api.Fixture
		document *openapi.Node
	)

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).Build(ctx)
		document = api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "rendition source")
	})

	Context("When listing renditions", func() {
		Describe("Given none have been created", func() {
			It("should list every definition as not created", func() {
				page, err := apiClient.Nodes().Renditions(ctx, document.ID, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List).NotTo(BeEmpty())

				for _, rendition := range page.List {
					Expect(rendition.Status).To(Equal(openapi.RenditionNotCreated), rendition.ID)
				}
			})
		})

		Describe("Given one has been created", func() {
			BeforeEach(func() {
				Expect(apiClient.Nodes().CreateRendition(ctx, document.ID, "pdf")).To(Succeed())
			})

			It("should filter by status", func() {
				Eventually(func(g Gomega) {
					page, err := apiClient.Nodes().Renditions(ctx, document.ID, &client.Params{Where: where.Eq("status", openapi.RenditionCreated)})
					g.Expect(err).NotTo(HaveOccurred())
					g.Expect(page.List).To(HaveLen(1))
					g.Expect(page.List[0].ID).To(Equal("pdf"))
				}).WithTimeout(config.TestTimeout).WithPolling(config.PollInterval).Should(Succeed())
			})

			It("should serve the rendered content", func() {
				Eventually(func(g Gomega) {
					rendition, err := apiClient.Nodes().Rendition(ctx, document.ID, "pdf")
					g.Expect(err).NotTo(HaveOccurred())
					g.Expect(rendition.Status).To(Equal(openapi.RenditionCreated))
				}).WithTimeout(config.TestTimeout).WithPolling(config.PollInterval).Should(Succeed())

				content, err := apiClient.Nodes().RenditionContent(ctx, document.ID, "pdf")
				Expect(err).NotTo(HaveOccurred())
				Expect(content).NotTo(BeEmpty())
			})

			It("should reject creating it again", func() {
				Eventually(func() int {
					return client.StatusCode(apiClient.Nodes().CreateRendition(ctx, document.ID, "pdf"))
				}).WithTimeout(config.TestTimeout).WithPolling(config.PollInterval).Should(Equal(http.StatusConflict))
			})
		})
	})

	Context("When requesting a rendition", func() {
		Describe("Given an unknown definition", func() {
			It("should not find it", func() {
				api.ExpectStatus(apiClient.Nodes().CreateRendition(ctx, document.ID, "hologram"), http.StatusNotFound)
			})
		})

		Describe("Given content that has not been rendered", func() {
			It("should not find the content", func() {
				_, err := apiClient.Nodes().RenditionContent(ctx, document.ID, "doclib")
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})

		Describe("Given a folder", func() {
			It("should reject the request", func() {
				api.ExpectStatus(apiClient.Nodes().CreateRendition(ctx, fixture.FolderID, "pdf"), http.StatusBadRequest)
			})
		})
	})
})
