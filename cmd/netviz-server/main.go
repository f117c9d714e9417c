package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"netviz/internal/config"
	"netviz/internal/server"
	"netviz/internal/store"
)

func main() {
	cfg := config.Load()

	port := flag.Int("port", cfg.Port, "HTTP listen port")
	backend := flag.String("store", cfg.Store, "storage backend: gcs or file")
	dataDir := flag.String("data-dir", cfg.DataDir, "object directory for the file backend")
	flag.Parse()

	objects, err := buildStore(*backend, cfg.Bucket, *dataDir)
	if err != nil {
		log.Fatalf("Storage setup failed: %v", err)
	}

	gateway := store.NewGateway(objects)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: server.New(gateway, *backend).Router(),
	}

	go func() {
		log.Printf("Configuration server listening on :%d (store=%s)", *port, *backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if closer, ok := objects.(interface{ Close() error }); ok {
		closer.Close()
	}

	log.Println("Server stopped")
}

func buildStore(backend, bucket, dataDir string) (store.ObjectStore, error) {
	switch backend {
	case "gcs":
		return store.NewGCSStore(context.Background(), bucket)
	case "file":
		return store.NewFileStore(dataDir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
