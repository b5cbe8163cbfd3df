package handler

import (
	"errors"
	"net/http"

	"github.com/Malvezin/miglesMakeStore/internal/api/dto"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/gin-gonic/gin"
)

// CatalogHandler atende a vitrine pública e o CRUD de produtos do admin.
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListActive lista os produtos disponíveis na vitrine.
func (h *CatalogHandler) ListActive(c *gin.Context) {
	products, err := h.catalogSvc.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListAll lista todos os produtos, inclusive inativos (painel admin).
func (h *CatalogHandler) ListAll(c *gin.Context) {
	products, err := h.catalogSvc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogSvc.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.catalogSvc.CreateProduct(c.Request.Context(), service.ProductInput{
		Name:     req.Name,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Price:    req.Price,
		Stock:    req.Stock,
		Active:   req.Active,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidProduct) || errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.catalogSvc.UpdateProduct(c.Request.Context(), c.Param("productId"), service.ProductInput{
		Name:     req.Name,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Price:    req.Price,
		Stock:    req.Stock,
		Active:   req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrInvalidProduct), errors.Is(err, service.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogSvc.DeleteProduct(c.Request.Context(), c.Param("productId")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
