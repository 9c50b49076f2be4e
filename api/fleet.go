package api

import (
	"net/http"

	"github.com/Domenick1991/airinventory/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	service fleet.FleetUseCase
}

type registerAircraftRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func NewFleetHandler(service fleet.FleetUseCase) *FleetHandler {
	return &FleetHandler{service: service}
}

func (h *FleetHandler) RegisterAircraft(router *gin.RouterGroup) {
	router.POST("/", h.createAircraft)
	router.GET("/", h.listAircraft)
}

func (h *FleetHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/", h.createRoute)
	router.GET("/", h.listRoutes)
}

func (h *FleetHandler) RegisterClients(router *gin.RouterGroup) {
	router.POST("/", h.createClient)
	router.GET("/", h.listClients)
}

func (h *FleetHandler) createAircraft(c *gin.Context) {
	var req registerAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RegisterAircraft(c.Request.Context(), req.Name, req.Capacity); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name, "capacity": req.Capacity})
}

func (h *FleetHandler) listAircraft(c *gin.Context) {
	aircraft, err := h.service.ListAircraft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

func (h *FleetHandler) createRoute(c *gin.Context) {
	var req fleet.RegisterRouteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RegisterRoute(c.Request.Context(), req); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *FleetHandler) listRoutes(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *FleetHandler) createClient(c *gin.Context) {
	var req fleet.RegisterClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RegisterClient(c.Request.Context(), req); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *FleetHandler) listClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}
