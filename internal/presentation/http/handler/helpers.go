package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sellstack/pipeline-api/pkg/pagination"
)

// parseIDParam parses a numeric :id path parameter
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// pageParams extracts page-based pagination parameters from the query string
func pageParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}
