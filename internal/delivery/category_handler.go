package delivery

import (
	"encoding/json"
	"net/http"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.POST("", h.CreateCategories)
		categories.GET("", h.ListCategories)
		categories.GET("/:idOrName", h.GetCategory)
		categories.PUT("/:idOrName", h.UpdateCategory)
		categories.DELETE("/:idOrName", h.DeleteCategory)
	}
}

// CreateCategories accepts either a single category object or an array of
// them in one request body.
func (h *CategoryHandler) CreateCategories(c *gin.Context) {
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		var single map[string]interface{}
		if err := json.Unmarshal(raw, &single); err != nil {
			h.log.Errorf("Failed to parse create category payload: %v", err)
			ErrorResponse(c, http.StatusBadRequest, "Invalid request body: expected an object or an array of objects")
			return
		}
		items = []map[string]interface{}{single}
	}

	created, err := h.useCase.Create(c.Request.Context(), items)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create categories: %v", err)
		ErrorResponse(c, statusCode, "Failed to create category: "+err.Error())
		return
	}

	h.log.Infof("Created %d categories", len(created))
	if len(created) == 1 {
		SuccessResponse(c, http.StatusCreated, "Category created successfully", created[0])
		return
	}
	SuccessResponse(c, http.StatusCreated, "Categories created successfully", created)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve categories: "+err.Error())
		return
	}

	h.log.Infof("Retrieved %d categories", len(categories))
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	token := c.Param("idOrName")

	category, err := h.useCase.GetByIDOrName(c.Request.Context(), token)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get category '%s': %v", token, err)
		ErrorResponse(c, statusCode, "Failed to retrieve category: "+err.Error())
		return
	}
	if category == nil {
		ErrorResponse(c, http.StatusNotFound, "Category not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	token := c.Param("idOrName")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.log.Errorf("Failed to bind JSON for update category '%s': %v", token, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), token, updates)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update category '%s': %v", token, err)
		ErrorResponse(c, statusCode, "Failed to update category: "+err.Error())
		return
	}
	if updated == nil {
		ErrorResponse(c, http.StatusNotFound, "Category not found")
		return
	}

	h.log.Infof("Category updated successfully: ID %s", updated.ID.Hex())
	SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	token := c.Param("idOrName")

	deleted, err := h.useCase.Delete(c.Request.Context(), token)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		if deleted {
			// Cascade failure after the category was removed. Products may
			// be orphaned; this must not look like a clean delete.
			statusCode = http.StatusInternalServerError
		}
		h.log.Errorf("Failed to delete category '%s': %v", token, err)
		ErrorResponse(c, statusCode, "Failed to delete category: "+err.Error())
		return
	}
	if !deleted {
		ErrorResponse(c, http.StatusNotFound, "Category not found")
		return
	}

	h.log.Infof("Category '%s' deleted successfully", token)
	c.Status(http.StatusNoContent)
}
