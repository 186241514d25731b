package main

import (
	"github.com/sirupsen/logrus"

	"prepsquad/internal/config"
	"prepsquad/internal/server"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if cfg.Env == "dev" {
		log.SetLevel(logrus.DebugLevel)
	}

	srv := server.NewServer(":"+cfg.Port, cfg, log)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
