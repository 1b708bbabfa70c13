package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hometeam/chores-back/internal/api"
	"github.com/hometeam/chores-back/internal/config"
	"github.com/hometeam/chores-back/internal/db"
	"github.com/hometeam/chores-back/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system env")
	}

	cfg := config.Load()

	gdb, err := db.Connect(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	r := api.SetupRouter(cfg, store.New(gdb))

	log.Println("Server running on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
