package pkg

import (
	"fmt"

	"port_tracker/internal/app/config"
	"port_tracker/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, hand *handler.Handler) *App {
	return &App{
		Config:  cfg,
		Router:  router,
		Handler: hand,
	}
}

func (a *App) RunApp() {
	logrus.Info("Server start up")

	a.Handler.SetupRoutes(a.Router)

	address := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	if err := a.Router.Run(address); err != nil {
		logrus.Fatalf("server error: %v", err)
	}

	logrus.Info("Server down")
}
