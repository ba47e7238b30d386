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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/content-harness/pkg/client"
	"github.com/unikorn-cloud/content-harness/pkg/openapi"
	"github.com/unikorn-cloud/content-harness/pkg/paging"
)

// VerifyPage checks a page against the dataset it was taken from.
func VerifyPage[T paging.Comparable[T]](dataset []T, request *paging.Request, page *client.ListResponse[T]) {
	GinkgoHelper()

	Expect(page).NotTo(BeNil())
	Expect(paging.Verify(dataset, request, page.Paging, page.List)).To(Succeed(), "page %s", request)
}

// VerifyEntry checks a decoded entity against an expectation.
func VerifyEntry[T openapi.ExpectedComparison[T]](expected T, actual *T) {
	GinkgoHelper()

	Expect(actual).NotTo(BeNil())
	Expect(expected.Expected(*actual)).To(Succeed())
}

// ExpectStatus checks a request failed with the given status.  Error
// envelopes have already been validated by the client.
func ExpectStatus(err error, status int) {
	GinkgoHelper()

	Expect(err).To(HaveOccurred())
	Expect(client.StatusCode(err)).To(Equal(status), "unexpected error: %v", err)
}
