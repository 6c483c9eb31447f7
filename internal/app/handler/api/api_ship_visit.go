package api

import (
	"net/http"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
)

type ShipVisitHandler struct {
	Service *service.ShipVisitService
}

// GetShipVisitsAPI - GET /api/ship_visits - список стоянок с фильтрацией
func (h *ShipVisitHandler) GetShipVisitsAPI(c *gin.Context) {
	filter := repository.ShipVisitFilter{
		VisitID:       intQuery(c, "visitId"),
		ShipID:        intQuery(c, "shipId"),
		PortID:        intQuery(c, "portId"),
		ArrivalDate:   timeQuery(c, "arrivalDate"),
		DepartureDate: timeQuery(c, "departureDate"),
		Purpose:       c.Query("purpose"),
	}

	visits, err := h.Service.GetAll(filter, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  visits,
		"count": len(visits),
	})
}

// GetShipVisitAPI - GET /api/ship_visits/:id
func (h *ShipVisitHandler) GetShipVisitAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	visit, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if visit == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Ship visit not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": visit,
	})
}

// CreateShipVisitAPI - POST /api/ship_visits
func (h *ShipVisitHandler) CreateShipVisitAPI(c *gin.Context) {
	var visit ds.ShipVisit
	if err := c.BindJSON(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.Service.Create(&visit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}

// UpdateShipVisitAPI - PUT /api/ship_visits/:id
func (h *ShipVisitHandler) UpdateShipVisitAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var visit ds.ShipVisit
	if err := c.BindJSON(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	updated, err := h.Service.Update(id, &visit)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Ship visit not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// DeleteShipVisitAPI - DELETE /api/ship_visits/:id
func (h *ShipVisitHandler) DeleteShipVisitAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.Service.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Ship visit not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ship visit deleted successfully",
	})
}

// GetActiveVisitsAPI - GET /api/ship_visits/active - текущие стоянки
func (h *ShipVisitHandler) GetActiveVisitsAPI(c *gin.Context) {
	visits, err := h.Service.GetActiveVisits()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  visits,
		"count": len(visits),
	})
}

// GetUpcomingVisitsAPI - GET /api/ship_visits/upcoming - будущие стоянки
func (h *ShipVisitHandler) GetUpcomingVisitsAPI(c *gin.Context) {
	visits, err := h.Service.GetUpcomingVisits()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  visits,
		"count": len(visits),
	})
}

// GetVisitsByShipAPI - GET /api/ship_visits/by_ship/:ship_id
func (h *ShipVisitHandler) GetVisitsByShipAPI(c *gin.Context) {
	shipID, ok := idParam(c, "ship_id")
	if !ok {
		return
	}

	visits, err := h.Service.GetVisitsByShip(shipID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  visits,
		"count": len(visits),
	})
}

// GetVisitsByPortAPI - GET /api/ship_visits/by_port/:port_id
func (h *ShipVisitHandler) GetVisitsByPortAPI(c *gin.Context) {
	portID, ok := idParam(c, "port_id")
	if !ok {
		return
	}

	visits, err := h.Service.GetVisitsByPort(portID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  visits,
		"count": len(visits),
	})
}
