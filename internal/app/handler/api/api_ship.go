package api

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type ShipHandler struct {
	Service     *service.ShipService
	MinioClient *minio.Client
	MinioBucket string
}

// GetShipsAPI - GET /api/ships - список кораблей с фильтрацией
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	filter := repository.ShipFilter{
		ShipID:    intQuery(c, "shipId"),
		Name:      c.Query("name"),
		IMO:       c.Query("imo"),
		Type:      c.Query("type"),
		Flag:      c.Query("flag"),
		YearBuilt: intQuery(c, "yearBuilt"),
	}

	ships, err := h.Service.GetAll(filter, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  ships,
		"count": len(ships),
	})
}

// GetShipAPI - GET /api/ships/:id - один корабль
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ship, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if ship == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Ship not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ship,
	})
}

// CreateShipAPI - POST /api/ships - создание корабля
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var ship ds.Ship
	if err := c.BindJSON(&ship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.Service.Create(&ship)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}

// UpdateShipAPI - PUT /api/ships/:id - полная замена корабля
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var ship ds.Ship
	if err := c.BindJSON(&ship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	updated, err := h.Service.Update(id, &ship)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Ship not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// DeleteShipAPI - DELETE /api/ships/:id
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
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
			"message": "Ship not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ship deleted successfully",
	})
}

// AddShipImageAPI - POST /api/ships/:id/image - фото корабля в MinIO
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	shipID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if h.MinioClient == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "MinIO client not available",
		})
		return
	}

	ship, err := h.Service.GetByID(shipID)
	if err != nil {
		respondError(c, err)
		return
	}
	if ship == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Ship not found",
		})
		return
	}

	err = c.Request.ParseMultipartForm(10 << 20) // 10 MB
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Failed to parse form data",
		})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "No image file provided",
			})
			return
		}
	}
	defer file.Close()

	fileExt := filepath.Ext(header.Filename)
	newFileName := uuid.New().String() + fileExt
	objectName := "img/" + newFileName

	_, err = h.MinioClient.PutObject(
		context.Background(),
		h.MinioBucket,
		objectName,
		file,
		header.Size,
		minio.PutObjectOptions{
			ContentType: header.Header.Get("Content-Type"),
		},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to upload image",
		})
		return
	}

	// Старое фото больше не нужно
	if ship.PhotoURL != "" {
		oldFileName := ship.PhotoURL
		if strings.Contains(oldFileName, "/") {
			parts := strings.Split(oldFileName, "/")
			oldFileName = parts[len(parts)-1]
		}
		h.MinioClient.RemoveObject(context.Background(), h.MinioBucket, "img/"+oldFileName, minio.RemoveObjectOptions{})
	}

	ship.PhotoURL = newFileName
	if _, err := h.Service.Update(shipID, ship); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update ship",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"ship_id":   shipID,
			"photo_url": newFileName,
			"message":   "Image uploaded successfully",
		},
	})
}
