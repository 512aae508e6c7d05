package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/noteshare/internal/server"
	"github.com/dmitrijs2005/noteshare/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	// Missing .env is fine, config falls back to defaults.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
