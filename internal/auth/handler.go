package auth

import (
	"errors"
	"net/http"

	"menuboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Wrap(http.StatusBadRequest, "invalid request", err))
		return
	}

	session, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) {
			_ = c.Error(apperr.Wrap(http.StatusBadRequest, err.Error(), err))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, session)
}
