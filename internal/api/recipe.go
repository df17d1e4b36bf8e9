package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-builder/backend/internal/middleware"
	"github.com/pageza/recipe-builder/backend/internal/models"
	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

type RecipeHandler struct {
	recipes     service.IRecipeService
	search      service.ISearchService
	images      service.IImageService
	searchLimit gin.HandlerFunc
}

// NewRecipeHandler builds the handler. searchLimit guards the search
// endpoint and may be nil.
func NewRecipeHandler(recipes service.IRecipeService, search service.ISearchService, images service.IImageService, searchLimit gin.HandlerFunc) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		search:      search,
		images:      images,
		searchLimit: searchLimit,
	}
}

// RegisterRoutes mounts the recipe endpoints on an authenticated group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/saved", h.ListSaved)
		recipes.DELETE("/saved/:id", h.DeleteSaved)
		recipes.POST("/save", h.SaveRecipe)
		if h.searchLimit != nil {
			recipes.POST("/search", h.searchLimit, h.Search)
		} else {
			recipes.POST("/search", h.Search)
		}
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/:id/image", h.UploadImage)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Search(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.SearchRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Query is required")
		return
	}

	recipes, err := h.search.Search(c.Request.Context(), userID, req.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SaveRecipe stores a recipe, usually a search suggestion, in the caller's collection.
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Title and ingredients are required")
		return
	}

	recipe := req.ToModel()
	recipe.IsCustom = true
	saved, err := h.recipes.SaveRecipe(c.Request.Context(), userID, recipe)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": saved})
}

func (h *RecipeHandler) ListSaved(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	saved, err := h.recipes.ListSaved(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_recipes": saved})
}

func (h *RecipeHandler) DeleteSaved(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.recipes.DeleteSaved(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadImage accepts a multipart "image" field. Only users who saved the
// recipe and admins may set its image.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.recipes.GetRecipe(ctx, recipeID); err != nil {
		respondError(c, err)
		return
	}
	if c.GetString(middleware.ContextRole) != models.RoleAdmin {
		saved, err := h.recipes.HasSaved(ctx, userID, recipeID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !saved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
	}

	// leave room for the multipart envelope around the file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxImageSize+1<<20)
	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, service.ErrImageTooLarge)
			return
		}
		badRequest(c, "An image file is required")
		return
	}
	if fileHeader.Size > service.MaxImageSize {
		respondError(c, service.ErrImageTooLarge)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageSize+1))
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.images.Upload(ctx, recipeID, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
