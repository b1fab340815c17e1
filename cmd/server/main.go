// Command server runs the wedding planning HTTP API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juneandco/aisle/internal/config"
	"github.com/juneandco/aisle/internal/database"
	"github.com/juneandco/aisle/internal/handler"
	"github.com/juneandco/aisle/internal/middleware"
	"github.com/juneandco/aisle/internal/repository"
	"github.com/juneandco/aisle/internal/service"
	"github.com/juneandco/aisle/pkg/jwt"
	"github.com/juneandco/aisle/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logging.Setup(cfg.Server.Env)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
	})

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()
	if err := db.Connect(connectCtx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("namespace", cfg.Database.Namespace),
	)

	// Token signing
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize jwt service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	vendorRepo := repository.NewVendorRepository(db)
	weddingRepo := repository.NewWeddingRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	authService := service.NewAuthService(service.AuthServiceConfig{
		Users:  userRepo,
		Tokens: jwtService,
	})
	vendorService := service.NewVendorService(service.VendorServiceConfig{
		Vendors: vendorRepo,
	})
	weddingService := service.NewWeddingService(service.WeddingServiceConfig{
		Weddings: weddingRepo,
	})
	bookingService := service.NewBookingService(service.BookingServiceConfig{
		Vendors:  vendorRepo,
		Weddings: weddingRepo,
		Pair:     bookingRepo,
	})
	rsvpService := service.NewRSVPService(service.RSVPServiceConfig{
		Weddings: weddingRepo,
	})
	timelineService := service.NewTimelineService(service.TimelineServiceConfig{
		Weddings: weddingRepo,
	})
	taskService := service.NewTaskService(service.TaskServiceConfig{
		Weddings: weddingRepo,
	})
	registryService := service.NewRegistryService(service.RegistryServiceConfig{
		Weddings: weddingRepo,
	})

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	weddingHandler := handler.NewWeddingHandler(weddingService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	timelineHandler := handler.NewTimelineHandler(timelineService)
	taskHandler := handler.NewTaskHandler(taskService)
	registryHandler := handler.NewRegistryHandler(registryService)

	authMiddleware := middleware.Auth(authService)
	adminMiddleware := middleware.AdminAuth(authService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Vendor endpoints
	mux.Handle("POST /v1/vendors", authMiddleware(http.HandlerFunc(vendorHandler.Register)))
	mux.HandleFunc("GET /v1/vendors", vendorHandler.Search)
	mux.HandleFunc("GET /v1/vendors/{vendorId}", vendorHandler.Get)
	mux.Handle("POST /v1/vendors/{vendorId}/reviews", authMiddleware(http.HandlerFunc(vendorHandler.AddReview)))
	mux.Handle("POST /v1/admin/vendors/{vendorId}/verify", adminMiddleware(http.HandlerFunc(vendorHandler.Verify)))

	// Wedding endpoints
	mux.Handle("POST /v1/weddings", authMiddleware(http.HandlerFunc(weddingHandler.Create)))
	mux.HandleFunc("GET /v1/weddings", weddingHandler.List)
	mux.HandleFunc("GET /v1/weddings/{weddingId}", weddingHandler.Get)

	// Booking endpoints
	mux.Handle("POST /v1/weddings/{weddingId}/bookings", authMiddleware(http.HandlerFunc(bookingHandler.Book)))
	mux.Handle("PATCH /v1/vendors/{vendorId}/bookings/{bookingId}", authMiddleware(http.HandlerFunc(bookingHandler.UpdateStatus)))

	// Guest and RSVP endpoints
	mux.HandleFunc("POST /v1/weddings/{weddingId}/rsvps", rsvpHandler.Submit)
	mux.Handle("POST /v1/weddings/{weddingId}/guests/{guestId}/approve", authMiddleware(http.HandlerFunc(rsvpHandler.Approve)))
	mux.Handle("POST /v1/weddings/{weddingId}/guests/{guestId}/decline", authMiddleware(http.HandlerFunc(rsvpHandler.Decline)))
	mux.HandleFunc("GET /v1/weddings/{weddingId}/guests", rsvpHandler.Guests)
	mux.HandleFunc("GET /v1/weddings/{weddingId}/guests/lookup", rsvpHandler.Lookup)
	mux.HandleFunc("GET /v1/weddings/{weddingId}/guests/count", rsvpHandler.Count)
	mux.HandleFunc("GET /v1/weddings/{weddingId}/rsvp-status", rsvpHandler.Status)

	// Timeline endpoints
	mux.Handle("POST /v1/weddings/{weddingId}/timeline", authMiddleware(http.HandlerFunc(timelineHandler.Add)))
	mux.HandleFunc("GET /v1/weddings/{weddingId}/timeline", timelineHandler.Get)

	// Task endpoints
	mux.Handle("POST /v1/weddings/{weddingId}/tasks", authMiddleware(http.HandlerFunc(taskHandler.Add)))
	mux.Handle("PATCH /v1/weddings/{weddingId}/tasks/{taskId}", authMiddleware(http.HandlerFunc(taskHandler.UpdateStatus)))
	mux.Handle("DELETE /v1/weddings/{weddingId}/tasks/{taskId}", authMiddleware(http.HandlerFunc(taskHandler.Delete)))
	mux.HandleFunc("GET /v1/weddings/{weddingId}/tasks", taskHandler.List)
	mux.HandleFunc("GET /v1/weddings/{weddingId}/tasks/{taskId}", taskHandler.Get)

	// Registry endpoints
	mux.Handle("POST /v1/weddings/{weddingId}/registry", authMiddleware(http.HandlerFunc(registryHandler.Add)))
	mux.HandleFunc("PATCH /v1/weddings/{weddingId}/registry/{itemName}", registryHandler.UpdateStatus)
	mux.Handle("DELETE /v1/weddings/{weddingId}/registry/{itemName}", authMiddleware(http.HandlerFunc(registryHandler.Delete)))
	mux.HandleFunc("GET /v1/weddings/{weddingId}/registry", registryHandler.List)
	mux.HandleFunc("GET /v1/weddings/{weddingId}/registry/{itemName}", registryHandler.Get)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
