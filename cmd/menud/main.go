package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/five82/orchid/internal/menud"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "127.0.0.1:7490", "listen address")
	prefix := flag.String("prefix", "", "route prefix, e.g. /api (optional)")
	seedPath := flag.String("seed", "", "JSON file with the initial catalog (optional)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "menud: load .env: %v\n", err)
		return 1
	}

	categories := menud.DefaultCategories()
	if *seedPath != "" {
		seeded, err := menud.LoadSeed(*seedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "menud: %v\n", err)
			return 1
		}
		categories = seeded
	}

	server := menud.NewServer(categories)
	email := envOr("MENUD_EMAIL", "demo@orchid.local")
	password := envOr("MENUD_PASSWORD", "orchid")
	if err := server.AddUser("Demo", email, password); err != nil {
		fmt.Fprintf(os.Stderr, "menud: add user: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           server.NewRouter(*prefix),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("menud listening on %s%s with %d categories (user %s)", *addr, *prefix, len(categories), email)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "menud: %v\n", err)
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

