package handler

import (
	"errors"
	"net/http"

	"github.com/Malvezin/miglesMakeStore/internal/api/dto"
	"github.com/Malvezin/miglesMakeStore/internal/api/middleware"
	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/Malvezin/miglesMakeStore/internal/pkg/metrics"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/gin-gonic/gin"
)

// OrderHandler atende os pedidos do cliente e a fila de trabalho do admin.
type OrderHandler struct {
	orderSvc    *service.OrderService
	checkoutSvc *service.CheckoutService
	metrics     *metrics.StoreMetrics
}

func NewOrderHandler(orderSvc *service.OrderService, checkoutSvc *service.CheckoutService, m *metrics.StoreMetrics) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, checkoutSvc: checkoutSvc, metrics: m}
}

// ListMine lista os pedidos da sessão logada, mais recentes primeiro.
func (h *OrderHandler) ListMine(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	orders, err := h.orderSvc.ListUserOrders(c.Request.Context(), identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListWorklist lista os pedidos não arquivados para a equipe.
func (h *OrderHandler) ListWorklist(c *gin.Context) {
	orders, err := h.orderSvc.ListWorklist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderSvc.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotExist) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateManual monta um pedido em nome de um cliente externo (balcão).
func (h *OrderHandler) CreateManual(c *gin.Context) {
	var req dto.ManualOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]service.ManualOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.ManualOrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.checkoutSvc.CreateManualOrder(c.Request.Context(), service.ManualOrderDraft{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        model.OrderStatus(req.Status),
		Items:         items,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCustomer),
			errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	h.metrics.IncOrderCreated()
	c.JSON(http.StatusCreated, order)
}

// UpdateStatus move o pedido na esteira (pago_simulado → ... → finalizado).
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.orderSvc.UpdateStatus(c.Request.Context(), c.Param("orderId"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrOrderNotExist):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Archive tira o pedido da fila de trabalho sem apagar o registro.
func (h *OrderHandler) Archive(c *gin.Context) {
	err := h.orderSvc.Archive(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotExist) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEvents devolve a trilha de eventos registrada para o pedido.
func (h *OrderHandler) ListEvents(c *gin.Context) {
	events, err := h.orderSvc.OrderEvents(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}
