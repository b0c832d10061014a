package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"lifemoves/config"
	"lifemoves/db"
	"lifemoves/handlers"
	"lifemoves/middleware"
)

func main() {
	cfg := config.Load()

	store := db.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	if store.Available() {
		log.Println("Document store connected:", cfg.DatabaseName)
	} else {
		log.Println("Document store unavailable, data routes will report errors")
	}

	log.Printf("Features: auth=%v feedback_mail=%v", cfg.AuthEnabled, cfg.SendGridAPIKey != "")

	r := gin.Default()
	r.Use(middleware.CORS())

	h := handlers.New(store, cfg)
	h.Register(r)

	fmt.Printf("Server starting on port %d\n", cfg.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
