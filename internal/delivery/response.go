package delivery

import (
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

// Pagination is the listing metadata block attached to paged responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int64 `json:"total_pages"`
}

type PagedResponse struct {
	Status     string      `json:"Status"`
	Message    string      `json:"Message"`
	Data       interface{} `json:"Data"`
	Pagination Pagination  `json:"Pagination"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func PagedSuccessResponse(c *gin.Context, message string, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PagedResponse{
		Status:     "Success",
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// mapErrorToStatus translates domain error kinds to HTTP status codes:
// missing entity is 404, everything the caller can fix (validation, duplicate
// name, malformed id) is 400, the rest is 500.
func mapErrorToStatus(err error) int {
	switch {
	case domain.IsNotFoundError(err):
		return http.StatusNotFound
	case domain.IsInvalidInputError(err), domain.IsDuplicateError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
