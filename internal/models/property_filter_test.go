package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropertyFilterDefaults(t *testing.T) {
	f := ParsePropertyFilter(url.Values{})

	assert.Nil(t, f.Featured)
	assert.Nil(t, f.Type)
	assert.Nil(t, f.Status)
	assert.Nil(t, f.MinBedrooms)
	assert.Nil(t, f.Location)
	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
	assert.Nil(t, f.Search)
	assert.Equal(t, SortNewest, f.Sort)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestParsePropertyFilterFullQuery(t *testing.T) {
	q := url.Values{}
	q.Set("featured", "true")
	q.Set("type", "Villa")
	q.Set("status", "for-sale")
	q.Set("bedrooms", "3")
	q.Set("location", "Lakeside")
	q.Set("priceMin", "5000000")
	q.Set("priceMax", "9000000")
	q.Set("search", "garden")
	q.Set("sort", "price-low")
	q.Set("page", "2")
	q.Set("limit", "10")

	f := ParsePropertyFilter(q)

	require.NotNil(t, f.Featured)
	assert.True(t, *f.Featured)
	require.NotNil(t, f.Type)
	assert.Equal(t, "Villa", *f.Type)
	require.NotNil(t, f.Status)
	assert.Equal(t, "for-sale", *f.Status)
	require.NotNil(t, f.MinBedrooms)
	assert.Equal(t, 3, *f.MinBedrooms)
	require.NotNil(t, f.Location)
	assert.Equal(t, "Lakeside", *f.Location)
	require.NotNil(t, f.PriceMin)
	assert.Equal(t, 5000000.0, *f.PriceMin)
	require.NotNil(t, f.PriceMax)
	assert.Equal(t, 9000000.0, *f.PriceMax)
	require.NotNil(t, f.Search)
	assert.Equal(t, "garden", *f.Search)
	assert.Equal(t, SortPriceLow, f.Sort)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 10, f.Limit)
}

func TestParsePropertyFilterMalformedValuesIgnored(t *testing.T) {
	q := url.Values{}
	q.Set("bedrooms", "abc")
	q.Set("priceMin", "cheap")
	q.Set("priceMax", "12,000")
	q.Set("page", "0")
	q.Set("limit", "-5")
	q.Set("sort", "random")

	f := ParsePropertyFilter(q)

	assert.Nil(t, f.MinBedrooms)
	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, SortNewest, f.Sort)
}

func TestParsePropertyFilterFeaturedStrictness(t *testing.T) {
	for _, v := range []string{"false", "TRUE", "1", "yes", ""} {
		q := url.Values{}
		if v != "" {
			q.Set("featured", v)
		}
		f := ParsePropertyFilter(q)
		assert.Nilf(t, f.Featured, "featured=%q should not set the flag", v)
	}

	q := url.Values{}
	q.Set("featured", "true")
	f := ParsePropertyFilter(q)
	require.NotNil(t, f.Featured)
	assert.True(t, *f.Featured)
}

func TestParsePropertyFilterZeroBedroomsKept(t *testing.T) {
	q := url.Values{}
	q.Set("bedrooms", "0")

	f := ParsePropertyFilter(q)

	require.NotNil(t, f.MinBedrooms)
	assert.Equal(t, 0, *f.MinBedrooms)
}

func TestPropertyFilterOffset(t *testing.T) {
	f := PropertyFilter{Page: 3, Limit: 10}
	assert.Equal(t, 20, f.Offset())

	f = PropertyFilter{Page: 1, Limit: 50}
	assert.Equal(t, 0, f.Offset())
}

func TestPropertyFilterCacheKeyStability(t *testing.T) {
	q := url.Values{}
	q.Set("type", "Villa")
	q.Set("priceMin", "5000000")
	q.Set("sort", "price-low")

	a := ParsePropertyFilter(q).CacheKey()
	b := ParsePropertyFilter(q).CacheKey()
	assert.Equal(t, a, b)

	q.Set("page", "2")
	c := ParsePropertyFilter(q).CacheKey()
	assert.NotEqual(t, a, c)
}
