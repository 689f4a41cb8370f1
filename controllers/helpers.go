package controllers

import (
	"errors"
	"net/http"

	"github.com/Truthtechno/LockerRoom-sub003/services"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(int)
	return userID, ok
}

func currentRoleID(c *gin.Context) (int, bool) {
	value, exists := c.Get("roleID")
	if !exists {
		return 0, false
	}
	roleID, ok := value.(int)
	return roleID, ok
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation 400, precondition 409, not found 404, anything else 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var preconditionErr *services.PreconditionError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &preconditionErr):
		c.JSON(http.StatusConflict, gin.H{"error": preconditionErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func ptr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// parseFilterCriteria reads the shared queue filter parameters.
func parseFilterCriteria(c *gin.Context) services.FilterCriteria {
	return services.FilterCriteria{
		StatusFilter: c.DefaultQuery("status", services.StatusFilterAll),
		DateFilter:   c.DefaultQuery("date", services.DateFilterAll),
		SearchQuery:  c.Query("q"),
		SortBy:       c.DefaultQuery("sort_by", services.SortByDate),
		SortOrder:    c.DefaultQuery("sort_order", "desc"),
	}
}
