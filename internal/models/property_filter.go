package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortArea      SortOrder = "area"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// PropertyFilter is the typed filter produced from the property search query
// string. Nil fields mean "no constraint on that field". All supplied scalar
// constraints combine as a conjunction; Search adds one AND-term that is an OR
// of substring matches over title, description and location.
type PropertyFilter struct {
	Featured    *bool
	Type        *string
	Status      *string
	MinBedrooms *int
	Location    *string
	PriceMin    *float64
	PriceMax    *float64
	Search      *string
	Sort        SortOrder
	Page        int
	Limit       int
}

// ParsePropertyFilter builds a PropertyFilter from raw query values. Every
// field is parse-or-default: a malformed value behaves as if the parameter
// were absent and never fails the request.
func ParsePropertyFilter(q url.Values) PropertyFilter {
	f := PropertyFilter{
		Sort:  SortNewest,
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	if q.Get("featured") == "true" {
		featured := true
		f.Featured = &featured
	}
	if v := strings.TrimSpace(q.Get("type")); v != "" {
		f.Type = &v
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" {
		f.Status = &v
	}
	if v := q.Get("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinBedrooms = &n
		}
	}
	if v := strings.TrimSpace(q.Get("location")); v != "" {
		f.Location = &v
	}
	if v := q.Get("priceMin"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMin = &n
		}
	}
	if v := q.Get("priceMax"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = &n
		}
	}
	if v := strings.TrimSpace(q.Get("search")); v != "" {
		f.Search = &v
	}

	switch SortOrder(q.Get("sort")) {
	case SortPriceLow:
		f.Sort = SortPriceLow
	case SortPriceHigh:
		f.Sort = SortPriceHigh
	case SortArea:
		f.Sort = SortArea
	default:
		f.Sort = SortNewest
	}

	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Page = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}

	return f
}

// Offset is the pagination window start; applied only to the data query.
func (f PropertyFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// CacheKey renders a canonical string so identical queries share a cache
// entry. Absent fields render as "-".
func (f PropertyFilter) CacheKey() string {
	var b strings.Builder
	writePart := func(name, val string) {
		b.WriteString(name)
		b.WriteByte(':')
		if val == "" {
			val = "-"
		}
		b.WriteString(val)
		b.WriteByte(':')
	}

	if f.Featured != nil {
		writePart("f", strconv.FormatBool(*f.Featured))
	} else {
		writePart("f", "")
	}
	writePart("t", strValue(f.Type))
	writePart("s", strValue(f.Status))
	if f.MinBedrooms != nil {
		writePart("b", strconv.Itoa(*f.MinBedrooms))
	} else {
		writePart("b", "")
	}
	writePart("l", strValue(f.Location))
	if f.PriceMin != nil {
		writePart("pmin", fmt.Sprintf("%g", *f.PriceMin))
	} else {
		writePart("pmin", "")
	}
	if f.PriceMax != nil {
		writePart("pmax", fmt.Sprintf("%g", *f.PriceMax))
	} else {
		writePart("pmax", "")
	}
	writePart("q", strValue(f.Search))
	writePart("sort", string(f.Sort))
	writePart("page", strconv.Itoa(f.Page))
	writePart("limit", strconv.Itoa(f.Limit))

	return strings.ToLower(b.String())
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
