package main

import (
	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/config"
	"github.com/hrsuite/recruit-go/db"
	"github.com/hrsuite/recruit-go/middleware"
	"github.com/hrsuite/recruit-go/minio"
	"github.com/hrsuite/recruit-go/routes"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	minio.InitMinio()

	r := gin.Default()
	routes.RegisterRoutes(r)
	r.Run(":" + config.ServerPort)
}
