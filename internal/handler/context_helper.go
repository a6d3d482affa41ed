package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/suraksha-health/training-portal-api/internal/middleware"
	"github.com/suraksha-health/training-portal-api/internal/models"
	"github.com/suraksha-health/training-portal-api/internal/query"
	"github.com/suraksha-health/training-portal-api/internal/service"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func actorFromClaims(claims *models.JWTClaims) service.Actor {
	return service.Actor{UserID: claims.UserID, Role: claims.Role}
}

// queryOptions reads the list query parameters declared by cfg. Filter
// params left empty or set to "all" are inactive, mirroring the filter
// dropdowns' catch-all option.
func queryOptions(c *gin.Context, cfg query.Config) service.QueryOptions {
	opts := service.QueryOptions{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
	}
	for _, field := range cfg.FilterableFields {
		value := c.Query(field)
		if value == "" || value == "all" {
			continue
		}
		if opts.Filters == nil {
			opts.Filters = make(map[string]string)
		}
		opts.Filters[field] = value
	}
	return opts
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
