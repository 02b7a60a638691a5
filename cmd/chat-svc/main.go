package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/di"
)

func main() {
	log.Println("Starting Chat Service...")

	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.LoadConfig()
	app, err := di.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize chat service: %v", err)
	}

	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	// Media download and the websocket endpoint sit behind auth too.
	api := router.PathPrefix("/").Subrouter()
	api.Use(common.AuthMiddleware)
	app.Messages.Register(api)
	app.Members.Register(api)
	app.Media.Register(api)
	api.Handle("/ws", app.WS).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	srv := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Chat Service running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Chat Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	app.Hub.Close()
	app.Synchronizer.Shutdown()
	if err := app.Mongo.Close(ctx); err != nil {
		log.Printf("Mongo disconnect: %v", err)
	}

	log.Println("Chat Service stopped")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("→ %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("✓ %s %s completed (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
