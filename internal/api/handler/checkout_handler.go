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

// CheckoutHandler fecha o carrinho da sessão num pedido.
type CheckoutHandler struct {
	checkoutSvc *service.CheckoutService
	metrics     *metrics.StoreMetrics
}

func NewCheckoutHandler(checkoutSvc *service.CheckoutService, m *metrics.StoreMetrics) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, metrics: m}
}

// Checkout aceita os dados do cartão simulado e os descarta; o pedido nasce
// com status pago_simulado sem cobrança real.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.checkoutSvc.Checkout(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.metrics.IncOrderCreated()
	c.JSON(http.StatusCreated, order)
}
