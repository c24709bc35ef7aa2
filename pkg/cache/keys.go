package cache

import "fmt"

// cache key for one page of property search results. The canonical filter
// string comes from PropertyFilter.CacheKey so identical queries share a key.
func PropertyListKey(filter string) string {
	return fmt.Sprintf("properties:list:%s", filter)
}

// cache key for the set tracking every cached list page.
func PropertyListSetKey() string {
	return "properties:list:keys"
}
