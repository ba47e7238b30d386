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

package openapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the layout the repository uses for all timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000-0700"

// Timestamp wraps time.Time so we can decode the repository's non-RFC3339
// offset format, while still accepting RFC3339 from other producers.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates to millisecond precision to match the wire format.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Millisecond)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*t = Timestamp{}
		return nil
	}

	for _, layout := range []string{TimestampLayout, time.RFC3339Nano} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = Timestamp{Time: parsed}
			return nil
		}
	}

	return fmt.Errorf("%w: unrecognised timestamp %q", ErrFormat, s)
}

// Pagination is the paging descriptor returned with every collection.
type Pagination struct {
	Count        int  `json:"count"`
	HasMoreItems bool `json:"hasMoreItems"`
	// TotalItems is optional, some collections cannot compute it cheaply.
	TotalItems *int `json:"totalItems,omitempty"`
	SkipCount  int  `json:"skipCount"`
	MaxItems   int  `json:"maxItems"`
}

func (p Pagination) String() string {
	total := "unknown"
	if p.TotalItems != nil {
		total = fmt.Sprint(*p.TotalItems)
	}

	return fmt.Sprintf("skipCount=%d maxItems=%d totalItems=%s hasMoreItems=%t count=%d", p.SkipCount, p.MaxItems, total, p.HasMoreItems, p.Count)
}

// Entry is the single item envelope.
type Entry[T any] struct {
	Entry T `json:"entry"`
}

// ListBody is the body of a collection envelope.
type ListBody[T any] struct {
	Pagination Pagination `json:"pagination"`
	Entries    []Entry[T] `json:"entries"`
}

// List is the collection envelope.
type List[T any] struct {
	List ListBody[T] `json:"list"`
}

// Items unwraps the entries in order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.List.Entries))

	for i := range l.List.Entries {
		out[i] = l.List.Entries[i].Entry
	}

	return out
}

// Error is the body of an error response.
type Error struct {
	ErrorKey       string `json:"errorKey"`
	StatusCode     int    `json:"statusCode"`
	BriefSummary   string `json:"briefSummary"`
	StackTrace     string `json:"stackTrace"`
	DescriptionURL string `json:"descriptionURL"`
	LogID          string `json:"logId,omitempty"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error Error `json:"error"`
}

type UserInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type ContentInfo struct {
	MimeType     string `json:"mimeType"`
	MimeTypeName string `json:"mimeTypeName,omitempty"`
	SizeInBytes  int64  `json:"sizeInBytes"`
	Encoding     string `json:"encoding,omitempty"`
}

// Well known node types.
const (
	NodeTypeFolder  = "cm:folder"
	NodeTypeContent = "cm:content"
)

// Node is a folder or document.
type Node struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	NodeType       string         `json:"nodeType"`
	IsFolder       bool           `json:"isFolder"`
	IsFile         bool           `json:"isFile"`
	ParentID       string         `json:"parentId,omitempty"`
	CreatedAt      Timestamp      `json:"createdAt"`
	ModifiedAt     Timestamp      `json:"modifiedAt"`
	CreatedByUser  *UserInfo      `json:"createdByUser,omitempty"`
	ModifiedByUser *UserInfo      `json:"modifiedByUser,omitempty"`
	AspectNames    []string       `json:"aspectNames,omitempty"`
	Properties     map[string]any `json:"properties,omitempty"`
	Content        *ContentInfo   `json:"content,omitempty"`
}

// Summary drops the fields a collection only returns on request
// via include=properties,aspectNames.
func (n Node) Summary() Node {
	n.AspectNames = nil
	n.Properties = nil

	return n
}

type NodeBodyCreate struct {
	Name        string         `json:"name"`
	NodeType    string         `json:"nodeType"`
	AspectNames []string       `json:"aspectNames,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

type NodeBodyUpdate struct {
	Name        *string        `json:"name,omitempty"`
	NodeType    *string        `json:"nodeType,omitempty"`
	AspectNames []string       `json:"aspectNames,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// Site visibilities.
const (
	SiteVisibilityPublic    = "PUBLIC"
	SiteVisibilityPrivate   = "PRIVATE"
	SiteVisibilityModerated = "MODERATED"
)

type Site struct {
	ID          string `json:"id"`
	GUID        string `json:"guid"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility"`
	Preset      string `json:"preset,omitempty"`
	Role        string `json:"role,omitempty"`
}

type SiteBodyCreate struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility"`
}

// DocumentLibrary is the container every site is created with.
const DocumentLibrary = "documentLibrary"

type SiteContainer struct {
	ID       string `json:"id"`
	FolderID string `json:"folderId"`
}

type Person struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email"`
	Enabled     bool   `json:"enabled"`
}

type PersonBodyCreate struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

type NetworkQuota struct {
	ID    string `json:"id"`
	Limit int64  `json:"limit"`
	Usage int64  `json:"usage"`
}

// Network is a tenant.
type Network struct {
	ID                string         `json:"id"`
	IsEnabled         bool           `json:"isEnabled"`
	CreatedAt         Timestamp      `json:"createdAt"`
	PaidNetwork       bool           `json:"paidNetwork"`
	SubscriptionLevel string         `json:"subscriptionLevel,omitempty"`
	Quotas            []NetworkQuota `json:"quotas,omitempty"`
}

// PersonNetwork is a network as seen by one of its members.
type PersonNetwork struct {
	Network

	HomeNetwork bool `json:"homeNetwork"`
}

// Rating schemes.
const (
	RatingSchemeLikes    = "likes"
	RatingSchemeFiveStar = "fiveStar"
)

type RatingAggregate struct {
	NumberOfRatings int      `json:"numberOfRatings"`
	Average         *float64 `json:"average,omitempty"`
}

// Rating is one scheme's view of a node. MyRating is a bool for likes and
// a number for fiveStar, and is absent when the caller has not rated.
type Rating struct {
	ID        string          `json:"id"`
	MyRating  any             `json:"myRating,omitempty"`
	RatedAt   *Timestamp      `json:"ratedAt,omitempty"`
	Aggregate RatingAggregate `json:"aggregate"`
}

type RatingBody struct {
	ID       string `json:"id"`
	MyRating any    `json:"myRating"`
}

// Favourite target kinds, each is also the where clause field
// target/<kind>.
const (
	FavouriteTargetFile   = "file"
	FavouriteTargetFolder = "folder"
	FavouriteTargetSite   = "site"
)

// FavouriteEntity identifies a favourite's target.  Only the GUID is read
// on create, the server fills in the rest.
type FavouriteEntity struct {
	GUID  string `json:"guid"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// FavouriteTarget has exactly one member set.
type FavouriteTarget struct {
	File   *FavouriteEntity `json:"file,omitempty"`
	Folder *FavouriteEntity `json:"folder,omitempty"`
	Site   *FavouriteEntity `json:"site,omitempty"`
}

// Kind returns the kind and entity of the target, or an empty kind if not
// exactly one member is set.
func (t FavouriteTarget) Kind() (string, *FavouriteEntity) {
	var (
		kind   string
		entity *FavouriteEntity
		n      int
	)

	for k, e := range map[string]*FavouriteEntity{
		FavouriteTargetFile:   t.File,
		FavouriteTargetFolder: t.Folder,
		FavouriteTargetSite:   t.Site,
	} {
		if e != nil {
			kind, entity = k, e
			n++
		}
	}

	if n != 1 {
		return "", nil
	}

	return kind, entity
}

// NewFavouriteTarget builds a single member target.
func NewFavouriteTarget(kind, guid string) FavouriteTarget {
	entity := &FavouriteEntity{GUID: guid}

	switch kind {
	case FavouriteTargetFile:
		return FavouriteTarget{File: entity}
	case FavouriteTargetFolder:
		return FavouriteTarget{Folder: entity}
	case FavouriteTargetSite:
		return FavouriteTarget{Site: entity}
	}

	return FavouriteTarget{}
}

type Favourite struct {
	TargetGUID string          `json:"targetGuid"`
	CreatedAt  Timestamp       `json:"createdAt"`
	Target     FavouriteTarget `json:"target"`
}

type FavouriteBodyCreate struct {
	Target FavouriteTarget `json:"target"`
}

// Comment is a comment on a node.  CanEdit and CanDelete are from the
// caller's point of view.
type Comment struct {
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  Timestamp `json:"createdAt"`
	CreatedBy  *Person   `json:"createdBy,omitempty"`
	ModifiedAt Timestamp `json:"modifiedAt"`
	ModifiedBy *Person   `json:"modifiedBy,omitempty"`
	Edited     bool      `json:"edited"`
	CanEdit    bool      `json:"canEdit"`
	CanDelete  bool      `json:"canDelete"`
}

type CommentBody struct {
	Content string `json:"content"`
}

type Version struct {
	ID             string       `json:"id"`
	VersionComment string       `json:"versionComment,omitempty"`
	Name           string       `json:"name"`
	NodeType       string       `json:"nodeType"`
	IsFolder       bool         `json:"isFolder"`
	IsFile         bool         `json:"isFile"`
	ModifiedAt     Timestamp    `json:"modifiedAt"`
	ModifiedByUser *UserInfo    `json:"modifiedByUser,omitempty"`
	Content        *ContentInfo `json:"content,omitempty"`
}

// Rendition states.
const (
	RenditionCreated    = "CREATED"
	RenditionNotCreated = "NOT_CREATED"
)

type Rendition struct {
	ID      string       `json:"id"`
	Content *ContentInfo `json:"content,omitempty"`
	Status  string       `json:"status"`
}

type RenditionBodyCreate struct {
	ID string `json:"id"`
}

// Asynchronous job states.
const (
	JobStatusNotInitiated = "NOT_INITIATED"
	JobStatusInProgress   = "IN_PROGRESS"
	JobStatusCompleted    = "COMPLETED"
)

// SizeDetailsJob is returned when a folder size calculation is accepted.
type SizeDetailsJob struct {
	JobID string `json:"jobId"`
}

type SizeDetails struct {
	NodeID        string     `json:"nodeId"`
	SizeInBytes   int64      `json:"sizeInBytes"`
	CalculatedAt  *Timestamp `json:"calculatedAt,omitempty"`
	NumberOfFiles int        `json:"numberOfFiles"`
	Status        string     `json:"status"`
	JobID         string     `json:"jobId"`
}

// Terminal reports whether polling can stop.
func (s *SizeDetails) Terminal() bool {
	return s.Status == JobStatusCompleted
}

// CMIS property identifiers the harness reads.
const (
	CMISObjectID   = "cmis:objectId"
	CMISName       = "cmis:name"
	CMISBaseTypeID = "cmis:baseTypeId"

	CMISBaseTypeFolder   = "cmis:folder"
	CMISBaseTypeDocument = "cmis:document"
)

type CMISProperty struct {
	ID    string `json:"id,omitempty"`
	Value any    `json:"value"`
}

// CMISObject is an object from the browser binding (succinct=false).
type CMISObject struct {
	Properties map[string]CMISProperty `json:"properties"`
}

func (o CMISObject) property(id string) string {
	p, ok := o.Properties[id]
	if !ok || p.Value == nil {
		return ""
	}

	return fmt.Sprint(p.Value)
}

// ObjectID strips any version suffix.
func (o CMISObject) ObjectID() string {
	id, _, _ := strings.Cut(o.property(CMISObjectID), ";")

	return id
}

func (o CMISObject) Name() string {
	return o.property(CMISName)
}

func (o CMISObject) BaseTypeID() string {
	return o.property(CMISBaseTypeID)
}

// NewCMISObject builds an object from its three identifying properties.
func NewCMISObject(objectID, name, baseTypeID string) CMISObject {
	return CMISObject{
		Properties: map[string]CMISProperty{
			CMISObjectID:   {ID: CMISObjectID, Value: objectID},
			CMISName:       {ID: CMISName, Value: name},
			CMISBaseTypeID: {ID: CMISBaseTypeID, Value: baseTypeID},
		},
	}
}

type CMISObjectData struct {
	Object CMISObject `json:"object"`
}

// CMISObjectList is the browser binding's collection shape, which
// predates the public API envelope and pages differently.
type CMISObjectList struct {
	Objects      []CMISObjectData `json:"objects"`
	HasMoreItems bool             `json:"hasMoreItems"`
	NumItems     *int             `json:"numItems,omitempty"`
}
