package api

import (
	"net/http"

	"github.com/Domenick1991/airinventory/internal/service/tickets"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service tickets.TicketUseCase
}

func NewTicketHandler(service tickets.TicketUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.sell)
	router.GET("/", h.list)
	router.GET("/balance/:client", h.balance)
}

func (h *TicketHandler) sell(c *gin.Context) {
	var req tickets.SellInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Sell(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *TicketHandler) list(c *gin.Context) {
	tickets, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) balance(c *gin.Context) {
	client := c.Param("client")
	balance, err := h.service.PendingBalance(c.Request.Context(), client)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_id": client, "pending_balance": balance})
}
