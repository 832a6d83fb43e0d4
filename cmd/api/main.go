package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/config"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/database"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/gateway/razorpay"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/mailer"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/middleware"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/auth"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/booking"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/catalog"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/chat"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/feedback"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/notification"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/payment"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/modules/pricing"
	jwtsvc "github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/jwt"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/repository"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatal(err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, payment deadlines fall back to in-process timers: %v", err)
			rdb = nil
		}
	}

	userRepo := repository.NewUserRepository(db)
	turfRepo := repository.NewTurfRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	pricingRepo := repository.NewPricingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom, cfg.EmailPassword)
	gateway := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	notifService := notification.NewService(notifRepo)

	var bookingService *booking.Service
	deadlines := scheduler.New(rdb, cfg.SweepInterval, func(ctx context.Context, bookingID int64) {
		bookingService.ExpireUnpaid(ctx, bookingID)
	})
	bookingService = booking.NewService(
		bookingRepo, turfRepo, slotRepo,
		notifService, mail, deadlines,
		cfg.PaymentWindow,
	)

	authService := auth.NewService(userRepo, j)
	catalogService := catalog.NewService(turfRepo, slotRepo, bookingRepo, feedbackRepo)
	paymentService := payment.NewService(paymentRepo, bookingRepo, bookingService, gateway, cfg.RazorpayKeyID)
	pricingService := pricing.NewService(pricingRepo, turfRepo)
	feedbackService := feedback.NewService(feedbackRepo, turfRepo, bookingRepo)

	hub := chat.NewHub()
	chatService := chat.NewService(chatRepo, bookingRepo, turfRepo, hub)

	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentService)
	notifHandler := notification.NewHandler(notifService)
	chatHandler := chat.NewHandler(chatService, hub)
	pricingHandler := pricing.NewHandler(pricingService)
	feedbackHandler := feedback.NewHandler(feedbackService)

	deadlines.Start()
	if err := bookingService.SweepAwaitingPayment(context.Background()); err != nil {
		log.Printf("startup payment sweep failed: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		pricingHandler.RegisterPublicRoutes(v1)
		feedbackHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			feedbackHandler.RegisterProtectedRoutes(protected)

			owner := protected.Group("/")
			owner.Use(middleware.OwnerOnly())
			{
				catalogHandler.RegisterOwnerRoutes(owner)
				bookingHandler.RegisterOwnerRoutes(owner)
				pricingHandler.RegisterOwnerRoutes(owner)
			}
		}
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		deadlines.Stop()
		hub.Close()
		os.Exit(0)
	}()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
