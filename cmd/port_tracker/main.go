package main

// go run cmd/port_tracker/main.go

import (
	"port_tracker/internal/app/config"
	"port_tracker/internal/app/dsn"
	"port_tracker/internal/app/handler"
	"port_tracker/internal/app/pkg"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "port_tracker/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Port Tracker API
// @version 1.0
// @description Админка учёта кораблей, портов, экипажей, стоянок и грузов
// @BasePath /api
func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		logrus.Infof("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
	})

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()

	rep, errRep := repository.New(postgresString)
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}

	minioClient := utils.NewMinioClient(conf)

	hand := handler.NewHandler(rep, minioClient, conf.MinioBucket)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
