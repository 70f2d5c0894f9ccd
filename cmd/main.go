package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"MovieCatalogAPI/config"
	"MovieCatalogAPI/internal/database"
	"MovieCatalogAPI/internal/handlers"
	"MovieCatalogAPI/internal/repositories"
	"MovieCatalogAPI/internal/routes"
	"MovieCatalogAPI/internal/services"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("schema migration failed", zap.Error(err))
	}
	logger.Info("database connection pool established")

	// Dependency injection
	movieRepo := repositories.NewMovieRepository(pool)
	directorRepo := repositories.NewDirectorRepository(pool)
	genreRepo := repositories.NewGenreRepository(pool)

	movieService := services.NewMovieService(movieRepo)
	directorService := services.NewDirectorService(directorRepo)
	genreService := services.NewGenreService(genreRepo)

	movieHandler := handlers.NewMovieHandler(movieService)
	directorHandler := handlers.NewDirectorHandler(directorService)
	genreHandler := handlers.NewGenreHandler(genreService)

	router := routes.SetupRouter(logger, cfg, movieHandler, directorHandler, genreHandler)

	if err := serve(cfg.Addr, router, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// serve runs the HTTP server until SIGINT or SIGTERM, then shuts down
// gracefully with a 5 second deadline.
func serve(addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownErr := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		logger.Info("shutting down server", zap.String("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		return err
	}

	logger.Info("stopped server", zap.String("addr", addr))
	return nil
}
