package server

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

const URI_WATCH = "/watch"

type Config struct {
	Port    string
	Timeout time.Duration
}

// ConfigFromEnv reads PORT, defaulting to 8080.
func ConfigFromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	return Config{Port: port, Timeout: 200 * time.Millisecond}
}
