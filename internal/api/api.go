// Package api holds the HTTP handlers of the /api/v1 surface.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipe-builder/backend/internal/database"
	"github.com/pageza/recipe-builder/backend/internal/middleware"
	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/service"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings translates service errors into responses. A list the caller
// does not own is reported as missing so ids of other users' lists do not leak.
var errorMappings = []errorMapping{
	{service.ErrUserExists, http.StatusConflict, "User already exists"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrListNotFound, http.StatusNotFound, "Shopping list not found"},
	{service.ErrListNotOwned, http.StatusNotFound, "Shopping list not found"},
	{service.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{service.ErrRecipeNotFound, http.StatusNotFound, "Recipe not found"},
	{service.ErrSavedRecipeNotFound, http.StatusNotFound, "Saved recipe not found"},
	{service.ErrInvalidSkillLevel, http.StatusBadRequest, "Invalid skill level"},
	{service.ErrEmptyQuery, http.StatusBadRequest, "Query is required"},
	{service.ErrImageTooLarge, http.StatusRequestEntityTooLarge, "Image must be 5MB or smaller"},
	{service.ErrUnsupportedImage, http.StatusUnsupportedMediaType, "Image must be a JPEG, PNG or WebP file"},
	{service.ErrStorageDisabled, http.StatusServiceUnavailable, "Image uploads are not available"},
	{service.ErrSearchFailed, http.StatusBadGateway, "Failed to search recipes"},
}

// respondError writes the JSON error for err. Unknown errors become a 500
// and are attached to the context for the request logger.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, gin.H{"error": m.message})
			return
		}
	}
	if errors.Is(err, models.ErrInvalidRecord) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// the list disappeared between the ownership check and the insert
	if database.IsForeignKeyViolation(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shopping list not found"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// currentUser returns the authenticated user id or answers 401.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the named path parameter or answers 400.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
