package api

import (
	"net/http"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
)

type CrewMemberHandler struct {
	Service *service.CrewMemberService
}

// GetCrewMembersAPI - GET /api/crew_members - список с фильтрацией
func (h *CrewMemberHandler) GetCrewMembersAPI(c *gin.Context) {
	filter := repository.CrewMemberFilter{
		CrewID:      intQuery(c, "crewId"),
		FirstName:   c.Query("firstName"),
		LastName:    c.Query("lastName"),
		Email:       c.Query("email"),
		PhoneNumber: c.Query("phoneNumber"),
		Role:        c.Query("role"),
	}

	crewMembers, err := h.Service.GetAll(filter, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  crewMembers,
		"count": len(crewMembers),
	})
}

// GetCrewMemberAPI - GET /api/crew_members/:id
func (h *CrewMemberHandler) GetCrewMemberAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	crewMember, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if crewMember == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Crew member not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": crewMember,
	})
}

// CreateCrewMemberAPI - POST /api/crew_members
func (h *CrewMemberHandler) CreateCrewMemberAPI(c *gin.Context) {
	var crewMember ds.CrewMember
	if err := c.BindJSON(&crewMember); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.Service.Create(&crewMember)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": created,
	})
}

// UpdateCrewMemberAPI - PUT /api/crew_members/:id
func (h *CrewMemberHandler) UpdateCrewMemberAPI(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var crewMember ds.CrewMember
	if err := c.BindJSON(&crewMember); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	updated, err := h.Service.Update(id, &crewMember)
	if err != nil {
		respondError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Crew member not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": updated,
	})
}

// DeleteCrewMemberAPI - DELETE /api/crew_members/:id
func (h *CrewMemberHandler) DeleteCrewMemberAPI(c *gin.Context) {
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
			"message": "Crew member not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Crew member deleted successfully",
	})
}
