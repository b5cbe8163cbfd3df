package handler

import (
	"errors"
	"net/http"

	"github.com/Malvezin/miglesMakeStore/internal/api/dto"
	"github.com/Malvezin/miglesMakeStore/internal/api/middleware"
	"github.com/Malvezin/miglesMakeStore/internal/pkg/metrics"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/gin-gonic/gin"
)

// CartHandler atende o carrinho da sessão logada.
type CartHandler struct {
	cartSvc *service.CartService
	metrics *metrics.StoreMetrics
}

func NewCartHandler(cartSvc *service.CartService, m *metrics.StoreMetrics) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, metrics: m}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	cart, err := h.cartSvc.GetCart(c.Request.Context(), identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// AddItem adiciona uma unidade do produto; produto repetido soma na linha.
func (h *CartHandler) AddItem(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cart, err := h.cartSvc.AddToCart(c.Request.Context(), identity.UserID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrProductInactive):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	h.metrics.IncCartAction("add")
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// UpdateQuantity grava a quantidade exata; zero ou negativo remove a linha.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var req dto.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cart, err := h.cartSvc.UpdateQuantity(c.Request.Context(), identity.UserID, c.Param("productId"), *req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.metrics.IncCartAction("update_quantity")
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	cart, err := h.cartSvc.RemoveFromCart(c.Request.Context(), identity.UserID, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.metrics.IncCartAction("remove")
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

func (h *CartHandler) Clear(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	if err := h.cartSvc.ClearCart(c.Request.Context(), identity.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.metrics.IncCartAction("clear")
	c.Status(http.StatusNoContent)
}
