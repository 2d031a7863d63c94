package main

import (
	"fmt"
	"os"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	"github.com/cppla/inkpost/config"
	"github.com/cppla/inkpost/controllers"
	"github.com/cppla/inkpost/models"
	"github.com/cppla/inkpost/routes"
	"github.com/cppla/inkpost/services"
	"github.com/cppla/inkpost/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	lg, err := utils.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer lg.Sync() //nolint:errcheck

	// InitDatabase migrates on every boot; `inkpost migrate` stops right after.
	db, err := config.InitDatabase(cfg, lg, models.All()...)
	if err != nil {
		lg.Fatal("database init failed", zap.Error(err))
	}
	defer config.CloseDatabase(db) //nolint:errcheck

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			lg.Info("migrations applied", zap.String("dialect", cfg.DBDialect))
			return
		default:
			lg.Fatal("unknown command", zap.String("command", os.Args[1]))
		}
	}

	rc := utils.NewRedis(cfg, lg)
	if rc != nil {
		defer rc.Close()
	}
	events := utils.NewPublisher(cfg, lg)
	defer events.Close()

	deps := controllers.Deps{
		Users:      services.NewUserService(db),
		Articles:   services.NewArticleService(db),
		Likes:      services.NewLikeService(db),
		Cache:      utils.NewCache(rc, cfg.CacheTTL, lg),
		Events:     events,
		Tokens:     utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpires),
		Blacklist:  utils.NewTokenBlacklist(rc),
		BcryptCost: cfg.BcryptCost,
	}
	r := routes.SetupRouter(cfg, lg, deps)

	lg.Info("starting server", zap.String("port", cfg.AppPort), zap.String("env", cfg.Env))
	if err := utils.GraceServer(":"+cfg.AppPort, handlers.CompressHandler(r), lg); err != nil {
		lg.Fatal("server stopped with error", zap.Error(err))
	}
}
