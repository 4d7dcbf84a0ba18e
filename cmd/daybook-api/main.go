package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/avelarde/daybook/internal/adapters/http"
	firestorestore "github.com/avelarde/daybook/internal/adapters/storage/firestore"
	memstore "github.com/avelarde/daybook/internal/adapters/storage/memory"
	sqlitestore "github.com/avelarde/daybook/internal/adapters/storage/sqlite"
	"github.com/avelarde/daybook/internal/app/lifecycle"
	"github.com/avelarde/daybook/internal/app/responder"
	"github.com/avelarde/daybook/internal/config"
	"github.com/avelarde/daybook/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Storage: memory, sqlite or firestore. One store implements both
	// repository interfaces for the durable backends.
	var (
		sessions domain.SessionRepository
		statuses domain.StatusRepository
	)

	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		defer fsStore.Close()

		sessions = fsStore
		statuses = fsStore

	case "sqlite":
		log.Printf("[STORE] Using SQLite storage (path=%s)", cfg.SQLitePath)
		dbStore, err := sqlitestore.NewStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("error initializing SQLite store: %v", err)
		}
		defer dbStore.Close()

		sessions = dbStore
		statuses = dbStore

	default:
		log.Println("[STORE] Using in-memory storage")
		sessions = memstore.NewSessionStore()
		statuses = memstore.NewStatusStore()
	}

	notifier := lifecycle.NewFanOut(lifecycle.LoggingObserver{})
	tracker := lifecycle.NewTracker(sessions, statuses, notifier)

	engine := responder.New(cfg.Seed)
	scheduler := lifecycle.NewTimerScheduler(cfg.ReplyMinDelay, cfg.ReplyMaxDelay, cfg.Seed)

	svc := lifecycle.NewService(sessions, tracker, engine, notifier, scheduler, cfg.Location())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpadapter.NewServer(svc),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Daybook API listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("could not listen on %s: %v", srv.Addr, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("Server exiting gracefully")
}
