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
	"github.com/unikorn-cloud/content-harness/pkg/paging"
	"github.com/unikorn-cloud/content-harness/test/api"
)

var _ = Describe("Document Versioning", func() {
	var (
		fixture  *api.Fixture
		document *openapi.Node
	)

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).Build(ctx)
		document = api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "")
	})

	Context("When uploading new content", func() {
		Describe("Given a minor update", func() {
			It("should bump the minor version and keep the comment", func() {
				updated, err := apiClient.Nodes().UpdateContent(ctx, document.ID, []byte("second"), "text/plain", &client.ContentOptions{Comment: "typo"})
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Properties).To(HaveKeyWithValue("cm:versionLabel", "1.1"))

				version, err := apiClient.Nodes().Version(ctx, document.ID, "1.1")
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(openapi.Version{
					ID:             "1.1",
					Name:           document.Name,
					IsFile:         true,
					VersionComment: "typo",
					Content:        &openapi.ContentInfo{SizeInBytes: int64(len("second"))},
				}, version)
			})
		})

		Describe("Given a major update", func() {
			It("should bump the major version", func() {
				updated, err := apiClient.Nodes().UpdateContent(ctx, document.ID, []byte("major"), "text/plain", &client.ContentOptions{MajorVersion: true})
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Properties).To(HaveKeyWithValue("cm:versionLabel", "2.0"))
			})
		})

		Describe("Given a folder", func() {
			It("should reject the upload", func() {
				_, err := apiClient.Nodes().UpdateContent(ctx, fixture.FolderID, []byte("x"), "text/plain", nil)
				api.ExpectStatus(err, http.StatusBadRequest)
			})
		})
	})

	Context("When listing the version history", func() {
		var dataset []openapi.Version

		BeforeEach(func() {
			_, err := apiClient.Nodes().UpdateContent(ctx, document.ID, []byte("second"), "text/plain", &client.ContentOptions{Comment: "minor"})
			Expect(err).NotTo(HaveOccurred())

			_, err = apiClient.Nodes().UpdateContent(ctx, document.ID, []byte("third!"), "text/plain", &client.ContentOptions{MajorVersion: true})
			Expect(err).NotTo(HaveOccurred())

			dataset = []openapi.Version{
				{ID: "2.0", Name: document.Name, IsFile: true, Content: &openapi.ContentInfo{SizeInBytes: 6}},
				{ID: "1.1", Name: document.Name, IsFile: true, VersionComment: "minor", Content: &openapi.ContentInfo{SizeInBytes: 6}},
				{ID: "1.0", Name: document.Name, IsFile: true},
			}
		})

		Describe("Given several versions", func() {
			DescribeTable("should page newest first",
				func(request *paging.Request) {
					page, err := apiClient.Nodes().Versions(ctx, document.ID, &client.Params{Paging: request})
					Expect(err).NotTo(HaveOccurred())

					api.VerifyPage(dataset, request, page)
				},
				Entry("with server defaults", nil),
				Entry("for the first page", paging.New(0, 2)),
				Entry("for the last page", paging.New(2, 2)),
				Entry("past the end", paging.New(3, 2)),
			)

			It("should return historic content", func() {
				content, err := apiClient.Nodes().VersionContent(ctx, document.ID, "1.1")
				Expect(err).NotTo(HaveOccurred())
				Expect(string(content)).To(Equal("second"))

				content, err = apiClient.Nodes().Content(ctx, document.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(content)).To(Equal("third!"))
			})

			It("should not find unknown versions", func() {
				_, err := apiClient.Nodes().Version(ctx, document.ID, "9.9")
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})
})
