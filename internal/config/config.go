package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	JWTSecret     string
	JWTTTLHrs     int
	RefreshTTLHrs int
	Env           string
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     mustEnv("JWT_SECRET"),
		JWTTTLHrs:     getEnvInt("JWT_TTL_HOURS", 24),
		RefreshTTLHrs: getEnvInt("REFRESH_TTL_HOURS", 168),
		Env:           getEnv("ENV", "dev"),
	}
	log.Infof("config loaded: env=%s port=%s", c.Env, c.Port)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	n, err := strconv.Atoi(getEnv(k, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return n
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}
