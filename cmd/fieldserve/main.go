// Command fieldserve renders the particle field headlessly and serves the
// current frame over HTTP, for previewing options without a window.
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"particle-field/engine"
)

const frameInterval = time.Second / 60

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("fieldserve: ignoring %s=%q", key, v)
		return def
	}
	return n
}

func main() {
	opts, err := engine.LoadOptions(os.Getenv("FIELD_CONFIG"), os.Getenv("FIELD_PRESET"), envInt("FIELD_COUNT", 0))
	if err != nil {
		log.Fatal(err)
	}

	s := newServer(opts, envInt("FIELD_WIDTH", 1280), envInt("FIELD_HEIGHT", 800), frameInterval)
	if err := s.start(); err != nil {
		log.Fatal(err)
	}
	defer s.close()

	r := gin.Default()
	s.routes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Println("fieldserve:", err)
	}
}
