package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipe-builder/backend/internal/service"
	"github.com/pageza/recipe-builder/backend/internal/types"
)

type ShoppingListHandler struct {
	lists service.IShoppingListService
}

func NewShoppingListHandler(lists service.IShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{lists: lists}
}

// RegisterRoutes mounts the shopping list endpoints on an authenticated group.
func (h *ShoppingListHandler) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/shopping-lists")
	{
		lists.GET("", h.ListLists)
		lists.POST("", h.CreateList)
		lists.POST("/add-recipe", h.AddRecipe)
		lists.POST("/items", h.AddItem)
		lists.PATCH("/items/:id", h.UpdateItem)
		lists.DELETE("/items/:id", h.DeleteItem)
		lists.DELETE("/:id", h.DeleteList)
		lists.POST("/:id/copy", h.CopyList)
	}
}

func (h *ShoppingListHandler) ListLists(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	lists, err := h.lists.ListsForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shopping_lists": lists})
}

func (h *ShoppingListHandler) CreateList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CreateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "List name is required")
		return
	}

	list, err := h.lists.CreateList(c.Request.Context(), userID, req.Name)
	if errors.Is(err, service.ErrEmptyName) {
		badRequest(c, "List name is required")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shopping_list": list})
}

func (h *ShoppingListHandler) DeleteList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.lists.DeleteList(c.Request.Context(), userID, listID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ShoppingListHandler) CopyList(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	listID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.lists.CopyList(c.Request.Context(), userID, listID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shopping_list": list})
}

func (h *ShoppingListHandler) AddItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ShoppingListID == uuid.Nil {
		badRequest(c, "Shopping list ID and ingredient are required")
		return
	}

	item, err := h.lists.AddItem(c.Request.Context(), userID, &req)
	if errors.Is(err, service.ErrEmptyName) {
		badRequest(c, "Shopping list ID and ingredient are required")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *ShoppingListHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req types.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Checked == nil {
		badRequest(c, "Checked is required")
		return
	}

	item, err := h.lists.SetItemChecked(c.Request.Context(), userID, itemID, *req.Checked)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *ShoppingListHandler) DeleteItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.lists.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddRecipe imports a recipe's ingredient lines into one of the caller's lists.
func (h *ShoppingListHandler) AddRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.AddRecipeToListRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipeID == uuid.Nil || req.ShoppingListID == uuid.Nil {
		badRequest(c, "Recipe ID and shopping list ID are required")
		return
	}

	n, err := h.lists.AddRecipeToList(c.Request.Context(), userID, req.ShoppingListID, req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "items_added": n})
}
