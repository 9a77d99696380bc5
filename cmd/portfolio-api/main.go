// Command portfolio-api runs the mock resource backend the site's
// store layer talks to, seeded with the demo fixture data.
package main

import (
	"errors"
	"net/http"

	"github.com/luminastudio/portfolio-system/internal/api"
	"github.com/luminastudio/portfolio-system/internal/infrastructure/config"
	"github.com/luminastudio/portfolio-system/internal/infrastructure/db/memory"
	"github.com/luminastudio/portfolio-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	services := memory.NewServiceRepository()
	posts := memory.NewPostRepository()
	requests := memory.NewRequestRepository()
	users := memory.NewUserRepository()
	memory.Seed(services, posts, users)

	e := api.NewRouter(api.Deps{
		Services: services,
		Posts:    posts,
		Requests: requests,
		Users:    users,
		Log:      log,
	})

	log.Info().Str("port", cfg.Port).Msg("portfolio api listening")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
