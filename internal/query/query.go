// Package query turns flat request parameters into typed filter
// specifications and pagination windows for the resource stores.
package query

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Page struct {
	Current int
	Limit   int
	Offset  int
}

// ParsePage reads page/limit with clamping: page floors at 1, limit
// floors at the default and caps at MaxLimit.
func ParsePage(q url.Values) Page {
	page := atoiDefault(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := atoiDefault(q.Get("limit"), DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Current: page, Limit: limit, Offset: (page - 1) * limit}
}

// Pages is the page count for pagination metadata: ceil(total/limit).
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

type ProjectFilter struct {
	Featured   *bool
	Category   string
	Status     string
	Technology string
}

func ProjectFilterFrom(q url.Values) ProjectFilter {
	return ProjectFilter{
		Featured:   boolParam(q, "featured"),
		Category:   q.Get("category"),
		Status:     q.Get("status"),
		Technology: q.Get("technology"),
	}
}

type PostFilter struct {
	Featured  *bool
	Tag       string
	Published *bool
}

// PostFilterFrom defaults published to "true"; any other value lifts
// the published filter so admin clients can list drafts.
func PostFilterFrom(q url.Values) PostFilter {
	f := PostFilter{
		Featured: boolParam(q, "featured"),
		Tag:      q.Get("tag"),
	}
	published := q.Get("published")
	if published == "" {
		published = "true"
	}
	if published == "true" {
		t := true
		f.Published = &t
	}
	return f
}

type ContactFilter struct {
	Status string
}

func ContactFilterFrom(q url.Values) ContactFilter {
	return ContactFilter{Status: q.Get("status")}
}

// boolParam is tri-state: nil when absent, otherwise value == "true".
func boolParam(q url.Values, key string) *bool {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key) == "true"
	return &v
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
