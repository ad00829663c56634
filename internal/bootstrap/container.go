package bootstrap

import (
	"context"
	"log"
	"time"

	"chatlog-admin-be/internal/config"
	"chatlog-admin-be/internal/controller"
	"chatlog-admin-be/internal/handler"
	"chatlog-admin-be/internal/pkg/logger"
	"chatlog-admin-be/internal/pkg/mailer"
	"chatlog-admin-be/internal/repository/unitofwork"
	"chatlog-admin-be/internal/service"
	"chatlog-admin-be/internal/websocket"

	pktNats "chatlog-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController  *controller.ChatController
	BlogController  *controller.BlogController
	AuthController  *controller.AuthController
	AdminController *controller.AdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	FeedHandler  *handler.FeedHandler
	WebSocketHub *websocket.Hub

	// Shared infrastructure the server layer also needs
	Redis  *redis.Client
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure. NATS and Redis are optional: without them the
	// service still runs, just single-instance and unlimited.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// Stats cache
	statsCache := gocache.New(30*time.Second, time.Minute)

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, service.ChatRecordedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		service.ChatRecordedTopic,
		wsHub,
		emailService,
		cfg.App.AdminAlertEmail,
		natsPub,
		sysLogger,
	)

	chatService := service.NewChatService(uowFactory, publisherService, statsCache, sysLogger)
	blogService := service.NewBlogService(uowFactory, cfg.Keys.GoogleGemini)
	authService := service.NewAuthService(uowFactory, cfg.Keys.JWTSecret, sysLogger)

	// 4. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService),
		BlogController:  controller.NewBlogController(blogService),
		AuthController:  controller.NewAuthController(authService),
		AdminController: controller.NewAdminController(sysLogger),
		ConsumerService: consumerService,
		FeedHandler:     handler.NewFeedHandler(wsHub, sysLogger),
		WebSocketHub:    wsHub,
		Redis:           rdb,
		Logger:          sysLogger,
	}
}
