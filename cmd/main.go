package main

import (
	"os"

	"go.uber.org/zap"

	"sproutly/cache"
	"sproutly/config"
	"sproutly/routes"
	"sproutly/services"
	"sproutly/utils"
)

func main() {
	utils.InitLogger()
	log := utils.Log()
	defer log.Sync()

	if err := services.ValidateCatalog(); err != nil {
		log.Fatal("program catalog invalid", zap.Error(err))
	}

	config.InitDB()
	config.InitLocalDB()
	utils.InitS3()
	utils.InitMetrics()

	if err := cache.InitRedis(log); err != nil {
		log.Warn("redis unavailable, response cache disabled", zap.Error(err))
	}

	r := routes.SetupRouter(config.DB, config.LocalDB, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
