package handler

import (
	"port_tracker/internal/app/handler/api"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

type Handler struct {
	Repository               *repository.Repository
	ShipAPIHandler           *api.ShipHandler
	PortAPIHandler           *api.PortHandler
	CrewMemberAPIHandler     *api.CrewMemberHandler
	CargoAPIHandler          *api.CargoHandler
	ShipVisitAPIHandler      *api.ShipVisitHandler
	ShipCrewAssignAPIHandler *api.ShipCrewAssignmentHandler
}

func NewHandler(rep *repository.Repository, minioClient *minio.Client, minioBucket string) *Handler {
	shipService := service.NewShipService(rep)
	portService := service.NewPortService(rep)
	crewMemberService := service.NewCrewMemberService(rep)
	cargoService := service.NewCargoService(rep, shipService)
	shipVisitService := service.NewShipVisitService(rep, shipService, portService)
	assignmentService := service.NewShipCrewAssignmentService(rep, shipService, crewMemberService)

	return &Handler{
		Repository: rep,
		ShipAPIHandler: &api.ShipHandler{
			Service:     shipService,
			MinioClient: minioClient,
			MinioBucket: minioBucket,
		},
		PortAPIHandler:           &api.PortHandler{Service: portService},
		CrewMemberAPIHandler:     &api.CrewMemberHandler{Service: crewMemberService},
		CargoAPIHandler:          &api.CargoHandler{Service: cargoService},
		ShipVisitAPIHandler:      &api.ShipVisitHandler{Service: shipVisitService},
		ShipCrewAssignAPIHandler: &api.ShipCrewAssignmentHandler{Service: assignmentService},
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		// Домен кораблей
		apiGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		apiGroup.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)
		apiGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
		apiGroup.PUT("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
		apiGroup.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
		apiGroup.POST("/ships/:id/image", h.ShipAPIHandler.AddShipImageAPI)

		// Домен портов
		apiGroup.GET("/ports", h.PortAPIHandler.GetPortsAPI)
		apiGroup.GET("/ports/:id", h.PortAPIHandler.GetPortAPI)
		apiGroup.POST("/ports", h.PortAPIHandler.CreatePortAPI)
		apiGroup.PUT("/ports/:id", h.PortAPIHandler.UpdatePortAPI)
		apiGroup.DELETE("/ports/:id", h.PortAPIHandler.DeletePortAPI)

		// Домен экипажа
		apiGroup.GET("/crew_members", h.CrewMemberAPIHandler.GetCrewMembersAPI)
		apiGroup.GET("/crew_members/:id", h.CrewMemberAPIHandler.GetCrewMemberAPI)
		apiGroup.POST("/crew_members", h.CrewMemberAPIHandler.CreateCrewMemberAPI)
		apiGroup.PUT("/crew_members/:id", h.CrewMemberAPIHandler.UpdateCrewMemberAPI)
		apiGroup.DELETE("/crew_members/:id", h.CrewMemberAPIHandler.DeleteCrewMemberAPI)

		// Домен грузов
		apiGroup.GET("/cargoes", h.CargoAPIHandler.GetCargoesAPI)
		apiGroup.GET("/cargoes/:id", h.CargoAPIHandler.GetCargoAPI)
		apiGroup.POST("/cargoes", h.CargoAPIHandler.CreateCargoAPI)
		apiGroup.PUT("/cargoes/:id", h.CargoAPIHandler.UpdateCargoAPI)
		apiGroup.DELETE("/cargoes/:id", h.CargoAPIHandler.DeleteCargoAPI)

		// Домен стоянок; статические маршруты раньше :id
		apiGroup.GET("/ship_visits/active", h.ShipVisitAPIHandler.GetActiveVisitsAPI)
		apiGroup.GET("/ship_visits/upcoming", h.ShipVisitAPIHandler.GetUpcomingVisitsAPI)
		apiGroup.GET("/ship_visits/by_ship/:ship_id", h.ShipVisitAPIHandler.GetVisitsByShipAPI)
		apiGroup.GET("/ship_visits/by_port/:port_id", h.ShipVisitAPIHandler.GetVisitsByPortAPI)
		apiGroup.GET("/ship_visits", h.ShipVisitAPIHandler.GetShipVisitsAPI)
		apiGroup.GET("/ship_visits/:id", h.ShipVisitAPIHandler.GetShipVisitAPI)
		apiGroup.POST("/ship_visits", h.ShipVisitAPIHandler.CreateShipVisitAPI)
		apiGroup.PUT("/ship_visits/:id", h.ShipVisitAPIHandler.UpdateShipVisitAPI)
		apiGroup.DELETE("/ship_visits/:id", h.ShipVisitAPIHandler.DeleteShipVisitAPI)

		// Домен назначений экипажа
		apiGroup.GET("/ship_crew_assignments/by_ship/:ship_id", h.ShipCrewAssignAPIHandler.GetAssignmentsByShipAPI)
		apiGroup.GET("/ship_crew_assignments/by_crew/:crew_id", h.ShipCrewAssignAPIHandler.GetAssignmentsByCrewAPI)
		apiGroup.GET("/ship_crew_assignments", h.ShipCrewAssignAPIHandler.GetShipCrewAssignmentsAPI)
		apiGroup.GET("/ship_crew_assignments/:id", h.ShipCrewAssignAPIHandler.GetShipCrewAssignmentAPI)
		apiGroup.POST("/ship_crew_assignments", h.ShipCrewAssignAPIHandler.CreateShipCrewAssignmentAPI)
		apiGroup.PUT("/ship_crew_assignments/:id", h.ShipCrewAssignAPIHandler.UpdateShipCrewAssignmentAPI)
		apiGroup.DELETE("/ship_crew_assignments/:id", h.ShipCrewAssignAPIHandler.DeleteShipCrewAssignmentAPI)
	}
}
