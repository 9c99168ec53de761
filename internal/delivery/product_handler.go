package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
	router.GET("/categories/:idOrName/products", h.ListProductsByCategory)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.Create(c.Request.Context(), data)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create product: %v", err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Product created successfully: ID %s, Name %s", created.ID.Hex(), created.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", created)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.useCase.GetByID(c.Request.Context(), id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get product by ID %s: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to retrieve product: "+err.Error())
		return
	}
	if product == nil {
		ErrorResponse(c, http.StatusNotFound, "Product not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

// ListProducts serves the paged product listing. page and page_size control
// the window, sort_by/order the ordering; the response carries the total
// count so clients can build next/prev links.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		h.log.Warnf("Invalid page parameter '%s', using default 1", c.Query("page"))
		page = usecase.DefaultPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(usecase.DefaultPageSize)))
	if err != nil || pageSize <= 0 {
		h.log.Warnf("Invalid page_size parameter '%s', using default %d", c.Query("page_size"), usecase.DefaultPageSize)
		pageSize = usecase.DefaultPageSize
	}
	if pageSize > usecase.MaxPageSize {
		pageSize = usecase.MaxPageSize
	}
	sortBy := c.Query("sort_by")
	order := c.Query("order")

	products, totalCount, listErr := h.useCase.GetAll(c.Request.Context(), page, pageSize, sortBy, order)
	if listErr != nil {
		statusCode := mapErrorToStatus(listErr)
		h.log.Errorf("Failed to list products: %v", listErr)
		ErrorResponse(c, statusCode, "Failed to retrieve products: "+listErr.Error())
		return
	}

	h.log.Infof("Retrieved %d of %d products", len(products), totalCount)
	PagedSuccessResponse(c, "Products retrieved successfully", products, Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: usecase.TotalPages(totalCount, pageSize),
	})
}

func (h *ProductHandler) ListProductsByCategory(c *gin.Context) {
	token := c.Param("idOrName")

	products, err := h.useCase.GetByCategory(c.Request.Context(), token)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to list products for category '%s': %v", token, err)
		ErrorResponse(c, statusCode, "Failed to retrieve products: "+err.Error())
		return
	}

	h.log.Infof("Retrieved %d products for category '%s'", len(products), token)
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.Update(c.Request.Context(), id, updates)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update product ID %s: %v", id, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Product updated successfully: ID %s", updated.ID.Hex())
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.useCase.Delete(c.Request.Context(), id)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to delete product ID %s: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to delete product: "+err.Error())
		return
	}
	if !deleted {
		ErrorResponse(c, http.StatusNotFound, "Product not found")
		return
	}

	h.log.Infof("Product deleted successfully: ID %s", id)
	c.Status(http.StatusNoContent)
}
