package api

import (
	"net/http"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
)

type ShipCrewAssignmentHandler struct {
	Service *service.ShipCrewAssignmentService
}

// GetShipCrewAssignmentsAPI - GET /api/ship_crew_assignments - список с фильтрацией
func (h *ShipCrewAssignmentHandler) GetShipCrewAssignmentsAPI(c *gin.Context) {
	filter := repository.ShipCrewAssignmentFilter{
		AssignmentID:   intQuery(c, "assignmentId"),
		ShipID:         intQuery(c, "shipId"),
		CrewID:         intQuery(c, "crewId"),
		AssignmentDate: timeQuery(c, "assignmentDate"),
	}

	assignments, err := h.Service.GetAll(filter, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  assignments,
		"count": len(assignments),
	})
}

// GetShipCrewAssignmentAPI - GET /api/ship_crew_assignments/:id
func (h *ShipCrewAssignmentHandler) GetShipCrewAssignmentAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if assignment == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Assignment not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": assignment,
	})
}

// CreateShipCrewAssignmentAPI - POST /api/ship_crew_assignments
func (h *ShipCrewAssignmentHandler) CreateShipCrewAssignmentAPI(c *gin.Context) {
	var assignment ds.ShipCrewAssignment
	if err := c.BindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.Service.Create(&assignment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}

// UpdateShipCrewAssignmentAPI - PUT /api/ship_crew_assignments/:id
func (h *ShipCrewAssignmentHandler) UpdateShipCrewAssignmentAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var assignment ds.ShipCrewAssignment
	if err := c.BindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	updated, err := h.Service.Update(id, &assignment)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Assignment not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// DeleteShipCrewAssignmentAPI - DELETE /api/ship_crew_assignments/:id
func (h *ShipCrewAssignmentHandler) DeleteShipCrewAssignmentAPI(c *gin.Context) {
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
			"message": "Assignment not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment deleted successfully",
	})
}

// GetAssignmentsByShipAPI - GET /api/ship_crew_assignments/by_ship/:ship_id
func (h *ShipCrewAssignmentHandler) GetAssignmentsByShipAPI(c *gin.Context) {
	shipID, ok := idParam(c, "ship_id")
	if !ok {
		return
	}

	assignments, err := h.Service.GetAssignmentsByShip(shipID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  assignments,
		"count": len(assignments),
	})
}

// GetAssignmentsByCrewAPI - GET /api/ship_crew_assignments/by_crew/:crew_id
func (h *ShipCrewAssignmentHandler) GetAssignmentsByCrewAPI(c *gin.Context) {
	crewID, ok := idParam(c, "crew_id")
	if !ok {
		return
	}

	assignments, err := h.Service.GetAssignmentsByCrew(crewID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  assignments,
		"count": len(assignments),
	})
}
