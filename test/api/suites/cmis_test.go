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

func cmisObjects(nodes []openapi.Node) []openapi.CMISObject {
	objects := make([]openapi.CMISObject, len(nodes))

	for i, node := range nodes {
		baseTypeID := openapi.CMISBaseTypeDocument

		if node.IsFolder {
			baseTypeID = openapi.CMISBaseTypeFolder
		}

		objects[i] = openapi.NewCMISObject(node.ID, node.Name, baseTypeID)
	}

	return objects
}

var _ = Describe("CMIS Browser Binding", func() {
	var (
		fixture *api.Fixture
		dataset []openapi.CMISObject
	)

	BeforeEach(func() {
		fixture = api.NewFixture(apiClient, config).Build(ctx)
		dataset = cmisObjects(api.CreateChildren(ctx, fixture, fixture.FolderID, 12, true))
	})

	Context("When listing the children of a folder", func() {
		Describe("Given valid paging parameters", func() {
			DescribeTable("should agree with the dataset",
				func(request *paging.Request) {
					page, err := apiClient.CMIS().Children(ctx, fixture.FolderID, request)
					Expect(err).NotTo(HaveOccurred())

					if request == nil {
						request = paging.New(0, paging.DefaultCMISMaxItems)
					}

					api.VerifyPage(dataset, request, page)
				},
				Entry("with server defaults", nil),
				Entry("for the first page", paging.New(0, 5)),
				Entry("for the last page", paging.New(10, 5)),
				Entry("past the end", paging.New(12, 5)),
			)
		})

		Describe("Given the same folder over the public API", func() {
			It("should report the same total", func() {
				public, err := apiClient.Nodes().Children(ctx, fixture.FolderID, nil)
				Expect(err).NotTo(HaveOccurred())

				cmis, err := apiClient.CMIS().Children(ctx, fixture.FolderID, nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(cmis.Paging.TotalItems).To(Equal(public.Paging.TotalItems))
			})
		})
	})

	Context("When reading an object", func() {
		Describe("Given the object exists", func() {
			It("should return its properties", func() {
				object, err := apiClient.CMIS().Object(ctx, fixture.FolderID)
				Expect(err).NotTo(HaveOccurred())

				folder, err := apiClient.Nodes().Get(ctx, fixture.FolderID, nil)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyEntry(openapi.NewCMISObject(folder.ID, folder.Name, openapi.CMISBaseTypeFolder), object)
			})
		})

		Describe("Given the object does not exist", func() {
			It("should fail without an error envelope", func() {
				_, err := apiClient.CMIS().Object(ctx, "does-not-exist")
				api.ExpectStatus(err, http.StatusNotFound)

				serr, ok := client.AsStatusError(err)
				Expect(ok).To(BeTrue())
				Expect(serr.Response).To(BeNil())
			})
		})
	})
})
