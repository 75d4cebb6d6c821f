package catalog

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tkoval/catalog-service/internal/app/catalog/contracts"
)

// parsePageRequest reads page, size and sort query parameters. Sort keys
// use the "field,direction" form and may repeat:
//
//	?page=0&size=12&sort=name,asc&sort=price,desc
//
// Unknown fields and malformed values fall back to defaults; the service
// layer clamps sizes and whitelists fields.
func parsePageRequest(c *gin.Context) contracts.PageRequest {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "12"))
	if err != nil || size <= 0 {
		size = 12
	}

	var sort []contracts.SortKey
	for _, raw := range c.QueryArray("sort") {
		parts := strings.SplitN(raw, ",", 2)
		field := strings.TrimSpace(parts[0])
		if field == "" {
			continue
		}
		desc := len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
		sort = append(sort, contracts.SortKey{Field: field, Desc: desc})
	}

	return contracts.PageRequest{Page: page, Size: size, Sort: sort}
}

// parseID reads a positive int64 path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
