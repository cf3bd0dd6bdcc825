package main

import (
	"context"
	"log"

	"ArogyaMCVK/config"
	"ArogyaMCVK/jobs"
	"ArogyaMCVK/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var isTest = false

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if !isTest {
		if err := config.ConnectDB(context.Background()); err != nil {
			log.Fatal("MongoDB connection failed: ", err)
		}
		if err := config.EnsureIndexes(context.Background()); err != nil {
			log.Println("Error creating indexes:", err)
		}
		jobs.StartDailyScheduler()
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	if isTest {
		return
	}

	port := config.Port()
	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
