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

package fake

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/unikorn-cloud/content-harness/pkg/openapi"

	"k8s.io/utils/ptr"
)

// size totals the content beneath a folder.
func (n *network) size(folderID string) (int64, int) {
	var (
		bytes int64
		files int
	)

	for _, child := range n.children(folderID) {
		if child.isFolder() {
			b, f := n.size(child.id)

			bytes += b
			files += f

			continue
		}

		bytes += int64(len(child.content))
		files++
	}

	return bytes, files
}

func (s *Server) createSizeDetails(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if !nd.isFolder() {
		HandleError(w, r, HTTPUnprocessable("Invalid parameter: value of nodeId is invalid"))
		return
	}

	job := &sizeJob{
		id:     uuid.NewString(),
		nodeID: nd.id,
		polls:  s.options.SizeDetailsPolls,
	}

	n.jobs[job.id] = job

	writeEntry(w, r, http.StatusAccepted, openapi.SizeDetailsJob{JobID: job.id})
}

// getSizeDetails reports IN_PROGRESS for the configured number of reads,
// then the folder's size at the time of the final read.
func (s *Server) getSizeDetails(w http.ResponseWriter, r *http.Request) {
	n := networkFromContext(r.Context())
	p := personFromContext(r.Context())

	nd, err := s.lookupNode(n, p, chi.URLParam(r, "nodeId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	jobID := chi.URLParam(r, "jobId")

	job, ok := n.jobs[jobID]
	if !ok || job.nodeID != nd.id {
		HandleError(w, r, HTTPNotFound(jobID))
		return
	}

	out := openapi.SizeDetails{
		NodeID: nd.id,
		JobID:  job.id,
		Status: openapi.JobStatusInProgress,
	}

	if job.polls > 0 {
		job.polls--

		writeEntry(w, r, http.StatusOK, out)

		return
	}

	out.SizeInBytes, out.NumberOfFiles = n.size(nd.id)
	out.CalculatedAt = ptr.To(openapi.NewTimestamp(s.timestamp()))
	out.Status = openapi.JobStatusCompleted

	writeEntry(w, r, http.StatusOK, out)
}
