package preferences

import (
	"net/http"

	"menuboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

type updateRequest struct {
	SortByPrice *bool `json:"sort_by_price"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sort_by_price": h.service.SortByPrice(),
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Wrap(http.StatusBadRequest, "invalid request", err))
		return
	}
	if req.SortByPrice == nil {
		_ = c.Error(apperr.BadRequest("sort_by_price is required"))
		return
	}

	h.service.SetSortByPrice(*req.SortByPrice)

	c.JSON(http.StatusOK, gin.H{
		"sort_by_price": h.service.SortByPrice(),
	})
}
