package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/ideae/internal/common"
	"github.com/dmitrijs2005/ideae/internal/server"
	"github.com/dmitrijs2005/ideae/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if cfg.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			log.Fatalf("secret key generation failed: %v", err)
		}
		cfg.SecretKey = key
		log.Printf("warning: no secret key configured, using a random one; sessions will not survive a restart")
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
