package main

import (
	"context"
	"log"

	"marketing-agent-be/internal/bootstrap"
	"marketing-agent-be/internal/config"
	"marketing-agent-be/pkg/database"

	"github.com/fatih/color"
)

// Wipes the template store and re-embeds the reference documents from
// TEMPLATE_DIR. Run after replacing any of the reference files.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)

	color.Cyan("🚀 Reloading reference templates from %s", cfg.Templates.Dir)

	if err := container.TemplateService.Reload(context.Background()); err != nil {
		color.Red("Failed: %v", err)
		log.Fatal("Error: Template reload failed")
	}

	color.Green("✅ Reference templates embedded and stored")
}
