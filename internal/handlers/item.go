package handlers

import (
	"net/http"
	"strconv"

	dom "todoapp/internal/domain"
	"todoapp/internal/dto"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgNotFound = "Item not found."
	msgDeleted  = "Item successfully deleted."
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// List godoc
// @Summary      List all items, newest first
// @Tags         items
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Failure      500  {object}  map[string]string
// @Router       /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, itemsToResponses(list))
}

// Create godoc
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateItemRequest  true  "Item body"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Router       /item/store [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if err == service.ErrEmptyName {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, itemToResponse(it))
}

// GetByID godoc
// @Summary      Get an item by ID
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {string}  string  "Item not found."
// @Failure      500  {object}  map[string]string
// @Router       /item/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	it, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.String(http.StatusNotFound, msgNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, itemToResponse(it))
}

// Update godoc
// @Summary      Set the completed flag of an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Item ID"
// @Param        body  body      dto.UpdateItemRequest  true  "Completed flag"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {string}  string  "Item not found."
// @Failure      500   {object}  map[string]string
// @Router       /item/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	it, err := h.svc.SetCompleted(c.Request.Context(), id, *req.Completed)
	if err != nil {
		if err == service.ErrNotFound {
			c.String(http.StatusNotFound, msgNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, itemToResponse(it))
}

// Delete godoc
// @Summary      Delete an item
// @Tags         items
// @Produce      plain
// @Param        id   path  int  true  "Item ID"
// @Success      200  {string}  string  "Item successfully deleted."
// @Failure      400  {object}  map[string]string
// @Failure      404  {string}  string  "Item not found."
// @Failure      500  {object}  map[string]string
// @Router       /item/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if err == service.ErrNotFound {
			c.String(http.StatusNotFound, msgNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, msgDeleted)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func itemToResponse(it dom.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Completed:   it.Completed,
		CompletedAt: it.CompletedAt,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func itemsToResponses(list []dom.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, len(list))
	for i := range list {
		out[i] = itemToResponse(list[i])
	}
	return out
}
