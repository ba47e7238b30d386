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
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spjmurray/go-util/pkg/set"
)

var (
	// ErrEntryMismatch is wrapped by every field level comparison failure.
	ErrEntryMismatch = errors.New("entry mismatch")
)

// ExpectedComparison is implemented by entities that can check a decoded
// response against a hand built expectation.  Server assigned fields such
// as timestamps are checked for presence only, identifiers are compared when
// the expectation carries one.
type ExpectedComparison[T any] interface {
	Expected(actual T) error
}

func mismatch(field string, expected, actual any) error {
	return fmt.Errorf("%w: %s expected %v, got %v", ErrEntryMismatch, field, expected, actual)
}

func missing(field string) error {
	return fmt.Errorf("%w: %s expected to be set", ErrEntryMismatch, field)
}

func diff(field string, d string) error {
	return fmt.Errorf("%w: %s (-expected +actual):\n%s", ErrEntryMismatch, field, d)
}

// compareID checks for equality if we know the id up front, otherwise
// that the server assigned one.
func compareID(field, expected, actual string) error {
	if expected == "" {
		if actual == "" {
			return missing(field)
		}

		return nil
	}

	if expected != actual {
		return mismatch(field, expected, actual)
	}

	return nil
}

func compareString(field, expected, actual string) error {
	if expected != actual {
		return mismatch(field, expected, actual)
	}

	return nil
}

func comparePresent(field string, t Timestamp) error {
	if t.IsZero() {
		return missing(field)
	}

	return nil
}

// compareSubset checks all expected values are present, servers are free to
// add more (e.g. cm:auditable).
func compareSubset(field string, expected, actual []string) error {
	if expected == nil {
		return nil
	}

	absent := set.New[string](expected...).Difference(set.New[string](actual...))

	if names := slices.Sorted(absent.All()); len(names) != 0 {
		return fmt.Errorf("%w: %s missing %v", ErrEntryMismatch, field, names)
	}

	return nil
}

// normalize round trips a value through JSON so numbers from hand built
// expectations compare equal to decoded float64s.
func normalize(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}

	var out any

	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}

	return out
}

func compareProperties(expected, actual map[string]any) error {
	var errs []error

	for _, key := range slices.Sorted(maps.Keys(expected)) {
		value, ok := actual[key]
		if !ok {
			errs = append(errs, missing("properties."+key))
			continue
		}

		if d := cmp.Diff(normalize(expected[key]), normalize(value)); d != "" {
			errs = append(errs, diff("properties."+key, d))
		}
	}

	return errors.Join(errs...)
}

func compareUser(field string, expected, actual *UserInfo) error {
	if expected == nil {
		return nil
	}

	if actual == nil {
		return missing(field)
	}

	return compareString(field+".id", expected.ID, actual.ID)
}

func compareContent(expected, actual *ContentInfo) error {
	if expected == nil {
		return nil
	}

	if actual == nil {
		return missing("content")
	}

	var errs []error

	if expected.MimeType != "" {
		errs = append(errs, compareString("content.mimeType", expected.MimeType, actual.MimeType))
	}

	if expected.SizeInBytes != 0 && expected.SizeInBytes != actual.SizeInBytes {
		errs = append(errs, mismatch("content.sizeInBytes", expected.SizeInBytes, actual.SizeInBytes))
	}

	return errors.Join(errs...)
}

func (n Node) Expected(actual Node) error {
	errs := []error{
		compareID("id", n.ID, actual.ID),
		compareString("name", n.Name, actual.Name),
		comparePresent("createdAt", actual.CreatedAt),
		comparePresent("modifiedAt", actual.ModifiedAt),
		compareUser("createdByUser", n.CreatedByUser, actual.CreatedByUser),
		compareUser("modifiedByUser", n.ModifiedByUser, actual.ModifiedByUser),
		compareSubset("aspectNames", n.AspectNames, actual.AspectNames),
		compareProperties(n.Properties, actual.Properties),
		compareContent(n.Content, actual.Content),
	}

	if n.NodeType != "" {
		errs = append(errs, compareString("nodeType", n.NodeType, actual.NodeType))
	}

	if n.IsFolder != actual.IsFolder {
		errs = append(errs, mismatch("isFolder", n.IsFolder, actual.IsFolder))
	}

	if n.IsFile != actual.IsFile {
		errs = append(errs, mismatch("isFile", n.IsFile, actual.IsFile))
	}

	if n.ParentID != "" {
		errs = append(errs, compareString("parentId", n.ParentID, actual.ParentID))
	}

	return errors.Join(errs...)
}

func (s Site) Expected(actual Site) error {
	errs := []error{
		compareID("id", s.ID, actual.ID),
		compareID("guid", s.GUID, actual.GUID),
	}

	if d := cmp.Diff(s, actual, cmpopts.IgnoreFields(Site{}, "ID", "GUID", "Role")); d != "" {
		errs = append(errs, diff("site", d))
	}

	if s.Role != "" {
		errs = append(errs, compareString("role", s.Role, actual.Role))
	}

	return errors.Join(errs...)
}

func (c SiteContainer) Expected(actual SiteContainer) error {
	return errors.Join(
		compareString("id", c.ID, actual.ID),
		compareID("folderId", c.FolderID, actual.FolderID),
	)
}

func (p Person) Expected(actual Person) error {
	errs := []error{
		compareString("id", p.ID, actual.ID),
	}

	if d := cmp.Diff(p, actual, cmpopts.IgnoreFields(Person{}, "ID", "DisplayName")); d != "" {
		errs = append(errs, diff("person", d))
	}

	if p.DisplayName != "" {
		errs = append(errs, compareString("displayName", p.DisplayName, actual.DisplayName))
	}

	return errors.Join(errs...)
}

func (n Network) Expected(actual Network) error {
	errs := []error{
		compareString("id", n.ID, actual.ID),
		comparePresent("createdAt", actual.CreatedAt),
	}

	if d := cmp.Diff(n, actual, cmpopts.IgnoreFields(Network{}, "ID", "Quotas"), cmpopts.IgnoreTypes(Timestamp{})); d != "" {
		errs = append(errs, diff("network", d))
	}

	return errors.Join(errs...)
}

func (n PersonNetwork) Expected(actual PersonNetwork) error {
	errs := []error{
		n.Network.Expected(actual.Network),
	}

	if n.HomeNetwork != actual.HomeNetwork {
		errs = append(errs, mismatch("homeNetwork", n.HomeNetwork, actual.HomeNetwork))
	}

	return errors.Join(errs...)
}

// ratingValue folds a rating into a comparable form, likes are booleans and
// stars arrive as float64 from JSON.
func ratingValue(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return v
		}

		return f
	}

	return v
}

func (r Rating) Expected(actual Rating) error {
	errs := []error{
		compareString("id", r.ID, actual.ID),
	}

	if expected, got := ratingValue(r.MyRating), ratingValue(actual.MyRating); expected != got {
		errs = append(errs, mismatch("myRating", r.MyRating, actual.MyRating))
	}

	if r.MyRating != nil && (actual.RatedAt == nil || actual.RatedAt.IsZero()) {
		errs = append(errs, missing("ratedAt"))
	}

	if d := cmp.Diff(r.Aggregate, actual.Aggregate, cmpopts.EquateApprox(0, 0.001)); d != "" {
		errs = append(errs, diff("aggregate", d))
	}

	return errors.Join(errs...)
}

func (f Favourite) Expected(actual Favourite) error {
	errs := []error{
		compareID("targetGuid", f.TargetGUID, actual.TargetGUID),
		comparePresent("createdAt", actual.CreatedAt),
	}

	kind, entity := f.Target.Kind()
	actualKind, actualEntity := actual.Target.Kind()

	if kind != actualKind {
		return errors.Join(append(errs, mismatch("target", kind, actualKind))...)
	}

	if entity != nil {
		errs = append(errs, compareID("target."+kind+".guid", entity.GUID, actualEntity.GUID))

		if entity.ID != "" {
			errs = append(errs, compareString("target."+kind+".id", entity.ID, actualEntity.ID))
		}
	}

	return errors.Join(errs...)
}

func comparePerson(field string, expected, actual *Person) error {
	if expected == nil {
		return nil
	}

	if actual == nil {
		return missing(field)
	}

	return compareString(field+".id", expected.ID, actual.ID)
}

func (c Comment) Expected(actual Comment) error {
	errs := []error{
		compareID("id", c.ID, actual.ID),
		compareString("content", c.Content, actual.Content),
		comparePresent("createdAt", actual.CreatedAt),
		comparePresent("modifiedAt", actual.ModifiedAt),
		comparePerson("createdBy", c.CreatedBy, actual.CreatedBy),
		comparePerson("modifiedBy", c.ModifiedBy, actual.ModifiedBy),
	}

	if c.Edited != actual.Edited {
		errs = append(errs, mismatch("edited", c.Edited, actual.Edited))
	}

	return errors.Join(errs...)
}

func (v Version) Expected(actual Version) error {
	errs := []error{
		compareString("id", v.ID, actual.ID),
		compareString("name", v.Name, actual.Name),
		comparePresent("modifiedAt", actual.ModifiedAt),
		compareUser("modifiedByUser", v.ModifiedByUser, actual.ModifiedByUser),
		compareContent(v.Content, actual.Content),
	}

	if v.VersionComment != "" {
		errs = append(errs, compareString("versionComment", v.VersionComment, actual.VersionComment))
	}

	if v.NodeType != "" {
		errs = append(errs, compareString("nodeType", v.NodeType, actual.NodeType))
	}

	if v.IsFile != actual.IsFile {
		errs = append(errs, mismatch("isFile", v.IsFile, actual.IsFile))
	}

	return errors.Join(errs...)
}

func (r Rendition) Expected(actual Rendition) error {
	errs := []error{
		compareString("id", r.ID, actual.ID),
		compareString("status", r.Status, actual.Status),
		compareContent(r.Content, actual.Content),
	}

	return errors.Join(errs...)
}

func (s SizeDetails) Expected(actual SizeDetails) error {
	errs := []error{
		compareString("nodeId", s.NodeID, actual.NodeID),
		compareID("jobId", s.JobID, actual.JobID),
		compareString("status", s.Status, actual.Status),
	}

	if s.SizeInBytes != 0 && s.SizeInBytes != actual.SizeInBytes {
		errs = append(errs, mismatch("sizeInBytes", s.SizeInBytes, actual.SizeInBytes))
	}

	if s.NumberOfFiles != 0 && s.NumberOfFiles != actual.NumberOfFiles {
		errs = append(errs, mismatch("numberOfFiles", s.NumberOfFiles, actual.NumberOfFiles))
	}

	if actual.Status == JobStatusCompleted && (actual.CalculatedAt == nil || actual.CalculatedAt.IsZero()) {
		errs = append(errs, missing("calculatedAt"))
	}

	return errors.Join(errs...)
}

func (o CMISObject) Expected(actual CMISObject) error {
	return errors.Join(
		compareID(CMISObjectID, o.ObjectID(), actual.ObjectID()),
		compareString(CMISName, o.Name(), actual.Name()),
		compareString(CMISBaseTypeID, o.BaseTypeID(), actual.BaseTypeID()),
	)
}
