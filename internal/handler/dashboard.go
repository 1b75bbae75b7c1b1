package handler

import (
	"net/http"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/apierror"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute stats"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) InventoryStatus(c *gin.Context) {
	resp, err := h.svc.InventoryStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute inventory status"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) TransactionTrends(c *gin.Context) {
	resp, err := h.svc.TransactionTrends(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute transaction trends"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) LowStockProducts(c *gin.Context) {
	resp, err := h.svc.LowStockProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list low stock products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) CategoryDistribution(c *gin.Context) {
	resp, err := h.svc.CategoryDistribution(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute category distribution"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
