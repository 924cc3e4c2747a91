package main

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/naming-go/config"
	"github.com/linskybing/naming-go/db"
	"github.com/linskybing/naming-go/middleware"
	"github.com/linskybing/naming-go/routes"
	"github.com/linskybing/naming-go/storage"
)

// @title        Naming Platform API
// @version      1.0
// @description  Naming request review and approved-name directory service.
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	storage.InitMinio()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)
	r.Run(":" + config.ServerPort)
}
