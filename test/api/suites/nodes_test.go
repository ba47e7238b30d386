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

	"k8s.io/utils/ptr"
)

func nodeNames(nodes []openapi.Node) []string {
	names := make([]string, len(nodes))

	for i := range nodes {
		names[i] = nodes[i].Name
	}

	return names
}

var _ = Describe("Node Management", func() {
	var fixture *api.Fixture

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).WithUser().Build(ctx)
	})

	Context("When creating a node", func() {
		Describe("Given a valid payload", func() {
			It("should create a folder", func() {
				payload := api.NewFolderPayload().WithTitle("Quarterly Reports")

				folder := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, payload)
				api.VerifyEntry(payload.Expected(fixture.FolderID), folder)

				got, err := apiClient.Nodes().Get(ctx, folder.ID, nil)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(*folder, got)
			})

			It("should create a document with content", func() {
				payload := api.NewDocumentPayload()

				document := api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, payload, "hello world")
				api.VerifyEntry(payload.Expected(fixture.FolderID), document)
				Expect(document.Content).NotTo(BeNil())
				Expect(document.Content.SizeInBytes).To(BeEquivalentTo(len("hello world")))

				content, err := apiClient.Nodes().Content(ctx, document.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(content)).To(Equal("hello world"))
			})

			It("should record the creator", func() {
				fixture.AsUser()

				folder := api.CreateFolderWithCleanup(ctx, fixture, client.NodeMy, api.NewFolderPayload())
				Expect(folder.CreatedByUser).NotTo(BeNil())
				Expect(folder.CreatedByUser.ID).To(Equal(fixture.User.ID))
			})
		})

		Describe("Given a name already in use", func() {
			var existing *openapi.Node

			BeforeEach(func() {
				existing = api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload().WithName("report.txt"), "")
			})

			It("should reject the duplicate", func() {
				_, err := apiClient.Nodes().Create(ctx, fixture.FolderID, api.NewDocumentPayload().WithName(existing.Name).Build(), nil)
				api.ExpectStatus(err, http.StatusConflict)
			})

			It("should rename the duplicate when asked to", func() {
				renamed, err := apiClient.Nodes().Create(ctx, fixture.FolderID, api.NewDocumentPayload().WithName(existing.Name).Build(), &client.CreateOptions{AutoRename: true})
				Expect(err).NotTo(HaveOccurred())
				Expect(renamed.Name).To(Equal("report-1.txt"))
			})
		})

		Describe("Given an invalid payload", func() {
			DescribeTable("should reject illegal names",
				func(name string) {
					_, err := apiClient.Nodes().Create(ctx, fixture.FolderID, api.NewFolderPayload().WithName(name).Build(), nil)
					api.ExpectStatus(err, http.StatusUnprocessableEntity)
				},
				Entry("with a colon", "bad:name"),
				Entry("with a trailing dot", "trailing."),
				Entry("with a quote", "quote\"d"),
				Entry("with a wildcard", "star*"),
			)

			It("should reject an unknown node type", func() {
				_, err := apiClient.Nodes().Create(ctx, fixture.FolderID, api.NewFolderPayload().WithNodeType("cm:nonsense").Build(), nil)
				api.ExpectStatus(err, http.StatusBadRequest)
			})

			It("should reject a document as the parent", func() {
				document := api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload(), "")

				_, err := apiClient.Nodes().Create(ctx, document.ID, api.NewFolderPayload().Build(), nil)
				api.ExpectStatus(err, http.StatusBadRequest)
			})

			It("should reject a missing parent", func() {
				_, err := apiClient.Nodes().Create(ctx, "does-not-exist", api.NewFolderPayload().Build(), nil)
				api.ExpectStatus(err, http.StatusNotFound)
			})
		})
	})

	Context("When updating a node", func() {
		Describe("Given the caller may modify it", func() {
			It("should rename and merge properties", func() {
				folder := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload().WithTitle("Before"))

				updated, err := apiClient.Nodes().Update(ctx, folder.ID, &openapi.NodeBodyUpdate{
					Name:       ptr.To(folder.Name + "-renamed"),
					Properties: map[string]any{"cm:description": "after"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.Name).To(Equal(folder.Name + "-renamed"))
				Expect(updated.Properties).To(HaveKeyWithValue("cm:title", "Before"))
				Expect(updated.Properties).To(HaveKeyWithValue("cm:description", "after"))
			})

			It("should be idempotent", func() {
				folder := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload())

				body := &openapi.NodeBodyUpdate{
					Properties: map[string]any{"cm:description": "same"},
				}

				first, err := apiClient.Nodes().Update(ctx, folder.ID, body)
				Expect(err).NotTo(HaveOccurred())

				second, err := apiClient.Nodes().Update(ctx, folder.ID, body)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyEntry(*first, second)
			})

			It("should reject a rename onto a sibling", func() {
				first := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload())
				second := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload())

				_, err := apiClient.Nodes().Update(ctx, second.ID, &openapi.NodeBodyUpdate{Name: ptr.To(first.Name)})
				api.ExpectStatus(err, http.StatusConflict)
			})
		})

		Describe("Given the caller may not modify it", func() {
			It("should deny other users", func() {
				folder := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload())

				_, err := fixture.AsUser().Nodes().Update(ctx, folder.ID, &openapi.NodeBodyUpdate{Name: ptr.To("hijacked")})
				api.ExpectStatus(err, http.StatusForbidden)
			})

			It("should protect the repository root", func() {
				_, err := apiClient.Nodes().Update(ctx, client.NodeRoot, &openapi.NodeBodyUpdate{Name: ptr.To("Elsewhere")})
				api.ExpectStatus(err, http.StatusForbidden)
			})
		})
	})

	Context("When deleting a node", func() {
		Describe("Given the node exists", func() {
			It("should remove it and everything beneath it", func() {
				folder := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload())
				child := api.CreateDocumentWithCleanup(ctx, fixture, folder.ID, api.NewDocumentPayload(), "child")

				Expect(apiClient.Nodes().Delete(ctx, folder.ID, true)).To(Succeed())

				_, err := apiClient.Nodes().Get(ctx, folder.ID, nil)
				api.ExpectStatus(err, http.StatusNotFound)

				_, err = apiClient.Nodes().Get(ctx, child.ID, nil)
				api.ExpectStatus(err, http.StatusNotFound)
			})

			It("should not delete twice", func() {
				folder := api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload())

				Expect(apiClient.Nodes().Delete(ctx, folder.ID, true)).To(Succeed())

				api.ExpectStatus(apiClient.Nodes().Delete(ctx, folder.ID, true), http.StatusNotFound)
			})
		})

		Describe("Given the node is protected", func() {
			It("should refuse to delete the repository root", func() {
				api.ExpectStatus(apiClient.Nodes().Delete(ctx, client.NodeRoot, true), http.StatusForbidden)
			})
		})
	})

	Context("When listing children", func() {
		Describe("Given a mix of folders and documents", func() {
			BeforeEach(func() {
				api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload().WithName("a.txt"), "")
				api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload().WithName("b"))
				api.CreateDocumentWithCleanup(ctx, fixture, fixture.FolderID, api.NewDocumentPayload().WithName("c.txt"), "")
				api.CreateFolderWithCleanup(ctx, fixture, fixture.FolderID, api.NewFolderPayload().WithName("d"))
			})

			It("should list folders first then by name", func() {
				page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(nodeNames(page.List)).To(Equal([]string{"b", "d", "a.txt", "c.txt"}))
			})

			It("should honour an explicit order", func() {
				page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{OrderBy: []string{"name DESC"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(nodeNames(page.List)).To(Equal([]string{"d", "c.txt", "b", "a.txt"}))
			})

			It("should filter with a where clause", func() {
				page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{Where: where.Eq("isFile", true)})
				Expect(err).NotTo(HaveOccurred())
				Expect(nodeNames(page.List)).To(Equal([]string{"a.txt", "c.txt"}))
				Expect(page.Paging.TotalItems).To(HaveValue(Equal(2)))
			})

			It("should reject an unsupported where clause", func() {
				_, err := apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{Where: where.Eq("name", "b")})
				api.ExpectStatus(err, http.StatusBadRequest)
			})

			It("should only return properties when asked to", func() {
				page, err := apiClient.Nodes().Children(ctx, fixture.FolderID, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List[0].AspectNames).To(BeEmpty())

				page, err = apiClient.Nodes().Children(ctx, fixture.FolderID, &client.Params{Include: []string{"properties", "aspectNames"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(page.List[0].AspectNames).To(ContainElement("cm:auditable"))
			})
		})
	})
})
