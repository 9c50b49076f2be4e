package api

import (
	"net/http"

	"github.com/Domenick1991/airinventory/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type scheduleFlightRequest struct {
	Date      string `json:"date"`
	RouteCode string `json:"route_code"`
	Aircraft  string `json:"aircraft"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.schedule)
	router.GET("/", h.list)
	router.GET("/:route/:date", h.get)
	router.POST("/:route/:date/complete", h.complete)
}

func (h *FlightHandler) schedule(c *gin.Context) {
	var req scheduleFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.service.Schedule(c.Request.Context(), req.Date, req.RouteCode, req.Aircraft)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, info)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	info, err := h.service.Get(c.Request.Context(), c.Param("route"), c.Param("date"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *FlightHandler) complete(c *gin.Context) {
	settlements, err := h.service.Complete(c.Request.Context(), c.Param("date"), c.Param("route"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlements": settlements})
}
