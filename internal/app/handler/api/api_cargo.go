package api

import (
	"net/http"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
)

type CargoHandler struct {
	Service *service.CargoService
}

// GetCargoesAPI - GET /api/cargoes - список грузов с фильтрацией
func (h *CargoHandler) GetCargoesAPI(c *gin.Context) {
	filter := repository.CargoFilter{
		CargoID:     intQuery(c, "cargoId"),
		ShipID:      intQuery(c, "shipId"),
		Description: c.Query("description"),
		CargoType:   c.Query("cargoType"),
		MinWeight:   floatQuery(c, "minWeight"),
		MaxWeight:   floatQuery(c, "maxWeight"),
	}

	cargoes, err := h.Service.GetAll(filter, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  cargoes,
		"count": len(cargoes),
	})
}

// GetCargoAPI - GET /api/cargoes/:id
func (h *CargoHandler) GetCargoAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	cargo, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if cargo == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Cargo not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": cargo,
	})
}

// CreateCargoAPI - POST /api/cargoes
func (h *CargoHandler) CreateCargoAPI(c *gin.Context) {
	var cargo ds.Cargo
	if err := c.BindJSON(&cargo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.Service.Create(&cargo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}

// UpdateCargoAPI - PUT /api/cargoes/:id
func (h *CargoHandler) UpdateCargoAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var cargo ds.Cargo
	if err := c.BindJSON(&cargo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	updated, err := h.Service.Update(id, &cargo)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Cargo not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// DeleteCargoAPI - DELETE /api/cargoes/:id
func (h *CargoHandler) DeleteCargoAPI(c *gin.Context) {
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
			"message": "Cargo not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cargo deleted successfully",
	})
}
