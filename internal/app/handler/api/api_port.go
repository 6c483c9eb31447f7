package api

import (
	"net/http"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
)

type PortHandler struct {
	Service *service.PortService
}

// GetPortsAPI - GET /api/ports - список портов с фильтрацией
func (h *PortHandler) GetPortsAPI(c *gin.Context) {
	filter := repository.PortFilter{
		PortID:  intQuery(c, "portId"),
		Name:    c.Query("name"),
		Country: c.Query("country"),
		City:    c.Query("city"),
	}

	ports, err := h.Service.GetAll(filter, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  ports,
		"count": len(ports),
	})
}

// GetPortAPI - GET /api/ports/:id
func (h *PortHandler) GetPortAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	port, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if port == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Port not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": port,
	})
}

// CreatePortAPI - POST /api/ports
func (h *PortHandler) CreatePortAPI(c *gin.Context) {
	var port ds.Port
	if err := c.BindJSON(&port); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.Service.Create(&port)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}

// UpdatePortAPI - PUT /api/ports/:id
func (h *PortHandler) UpdatePortAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var port ds.Port
	if err := c.BindJSON(&port); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	updated, err := h.Service.Update(id, &port)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Port not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// DeletePortAPI - DELETE /api/ports/:id
func (h *PortHandler) DeletePortAPI(c *gin.Context) {
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
			"message": "Port not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Port deleted successfully",
	})
}
