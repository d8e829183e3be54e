package main

import (
	"context"
	"log"
	"net/http"

	"blogdeck/cmd/api/auth"
	"blogdeck/cmd/api/router"
	"blogdeck/cmd/internal/logger"
	"blogdeck/config"
	"blogdeck/db"
	_ "blogdeck/docs" // swag will generate this package
	"blogdeck/eventbus"
)

// @title           Blogdeck Admin API
// @version         1.0
// @description     Admin console backend for the Blogdeck blogging platform
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	bus, err := eventbus.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	r := router.New(bus, jwtManager)

	if err := r.Run(":8080"); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
