package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylohub/stylohub-api/internal/config"
	dbpkg "github.com/stylohub/stylohub-api/internal/db"
	"github.com/stylohub/stylohub-api/internal/jobs"
	"github.com/stylohub/stylohub-api/internal/routes"
	"github.com/stylohub/stylohub-api/internal/store"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	st := store.New()

	runner := jobs.NewRunner(st, cfg.JobScanSpec)
	if err := runner.Start(); err != nil {
		log.Fatalf("failed to start job runner: %v", err)
	}
	defer runner.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
