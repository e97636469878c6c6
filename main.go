package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/turf-booking-backend/api"
	bk "github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/clock"
	"github.com/hanksha/turf-booking-backend/config"
	"github.com/hanksha/turf-booking-backend/database"
	"github.com/hanksha/turf-booking-backend/discord"
	"github.com/hanksha/turf-booking-backend/logging"
	"github.com/hanksha/turf-booking-backend/memstore"
	"github.com/hanksha/turf-booking-backend/mq"
	"github.com/hanksha/turf-booking-backend/notify"
	"github.com/hanksha/turf-booking-backend/payment"
	"github.com/hanksha/turf-booking-backend/slot"
	"github.com/hanksha/turf-booking-backend/turf"
	"github.com/hanksha/turf-booking-backend/worker"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type storage struct {
	turfs    turf.TurfRepository
	slots    slot.SlotRepository
	reader   bk.SlotReader
	bookings bk.BookingRepository
	close    func()
}

func main() {
	logger, err := logging.New(os.Getenv("ENV") == "production")

	if err != nil {
		panic(err)
	}

	defer logger.Sync()

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("Error loading .env file", zap.Error(err))
	}

	cfg, err := config.Load()

	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, logger)

	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}

	defer store.close()

	discordClient := discord.NewClient(discord.Config{
		BotToken:     cfg.DiscordBotToken,
		ClientID:     cfg.DiscordClientID,
		ClientSecret: cfg.DiscordClientSecret,
		RedirectURI:  cfg.DiscordRedirectURI,
		ServerID:     cfg.DiscordServerID,
	})

	roles := discord.RoleIDs{
		SuperAdmin: cfg.DiscordSuperAdminRoleID,
		TurfAdmin:  cfg.DiscordTurfAdminRoleID,
	}

	publishers := notify.Multi{notify.NewLog(logger)}

	if cfg.DiscordChannelID != "" {
		publishers = append(publishers, discord.NewNotifier(discordClient, cfg.DiscordChannelID))
	}

	if cfg.RabbitURL != "" {
		bookingPub, err := mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange)

		if err != nil {
			logger.Fatal("failed to connect booking publisher", zap.Error(err))
		}

		defer bookingPub.Close()
		publishers = append(publishers, notify.NewBus(bookingPub))
	}

	var bookingOpts []bk.Option
	var redisOpt asynq.RedisClientOpt

	if cfg.RedisAddr != "" {
		redisOpt = asynq.RedisClientOpt{Addr: cfg.RedisAddr}
		client := asynq.NewClient(redisOpt)
		defer client.Close()
		bookingOpts = append(bookingOpts, bk.WithPaymentTimeouts(worker.NewScheduler(client)))
	}

	loc := cfg.Location()
	clk := clock.Real{}

	slotService := slot.NewService(store.slots, store.turfs, clk, loc, logger)
	turfService := turf.NewService(store.turfs, slotService, cfg.SlotHorizonDays, logger)
	bookingService := bk.NewService(store.bookings, store.reader, store.turfs, publishers, clk, bk.Settings{
		Location:                  loc,
		CancellationChargePercent: cfg.CancellationChargePercent,
		PlatformFee:               cfg.PlatformFee,
		PaymentTTL:                cfg.PaymentTTL,
	}, logger, bookingOpts...)

	if cfg.RedisAddr != "" {
		srv, mux := worker.NewServer(redisOpt, bookingService, logger)

		if err := srv.Start(mux); err != nil {
			logger.Fatal("failed to start payment timeout worker", zap.Error(err))
		}

		defer srv.Shutdown()
	}

	if cfg.RabbitURL != "" {
		paymentCons, err := mq.NewConsumer(cfg.RabbitURL, cfg.PaymentExchange, cfg.PaymentQueue, payment.RoutingKeys)

		if err != nil {
			logger.Fatal("failed to connect payment consumer", zap.Error(err))
		}

		defer paymentCons.Close()

		consumer := payment.NewConsumer(bookingService, paymentCons, logger)

		go func() {
			if err := consumer.Run(ctx); err != nil {
				logger.Error("payment consumer stopped", zap.Error(err))
			}
		}()
	}

	go bookingService.RunSweeper(ctx, cfg.SweepInterval)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// DISCORD API

	discordHandler := api.NewDiscordHandler(discordClient, roles)
	discordHandler.Register(r.Group("/api/discord"))

	// BOOKING API

	v1 := r.Group("/api/v1")
	v1.Use(api.DiscordAuth(discordClient, roles))

	api.NewTurfHandler(turfService).Register(v1.Group("/turfs"))
	api.NewSlotHandler(slotService, bookingService).Register(v1)
	api.NewBookingHandler(bookingService).Register(v1.Group("/bookings"))
	api.NewPaymentHandler(bookingService).Register(v1.Group("/payments"))

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("storage", cfg.StorageDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", zap.Error(err))
	}
}

func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage, error) {
	if cfg.StorageDriver == config.DriverMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		store := memstore.New()
		return storage{turfs: store, slots: store, reader: store, bookings: store, close: func() {}}, nil
	}

	logger.Info("connecting to PostgreSQL database")
	pool, err := database.Connect(ctx, cfg.DatabaseURL)

	if err != nil {
		return storage{}, err
	}

	if err := database.Setup(ctx, pool); err != nil {
		pool.Close()
		return storage{}, err
	}

	logger.Info("initialized database tables")

	slots := slot.NewRepository(pool)

	return storage{
		turfs:    turf.NewRepository(pool),
		slots:    slots,
		reader:   slots,
		bookings: bk.NewRepository(pool),
		close:    pool.Close,
	}, nil
}
