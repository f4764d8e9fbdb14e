package main

import (
	"log/slog"

	"Gin_redis_lending_tracker/app"
	"Gin_redis_lending_tracker/config"
	"Gin_redis_lending_tracker/routes"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	application := app.MustNew(cfg)
	defer application.Close()

	r := application.Router
	routes.RegisterRoutes(r, application)

	application.Log.Info("listening", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		application.Log.Error("server stopped", slog.Any("error", err))
	}
}
