package main

import (
	"context"
	"log"

	"autocare-service/config"
	"autocare-service/internal/module/booking/handler"
	"autocare-service/internal/module/booking/repositories"
	"autocare-service/internal/module/booking/usecases"
	"autocare-service/internal/pkg/database"
	"autocare-service/internal/pkg/gateway"
	"autocare-service/internal/pkg/http"
	"autocare-service/internal/pkg/httpclient"
	log_internal "autocare-service/internal/pkg/log"
	"autocare-service/internal/pkg/messagestream"
	"autocare-service/internal/pkg/middleware"
	"autocare-service/internal/pkg/redis"
	"autocare-service/internal/pkg/scheduler"
	router "autocare-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched, bookingHandler := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// asynq worker for the reconcile sweep
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypePaymentReconcile},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.ReconcilePaymentTask},
	)
	go sched.StartMonitoring(&cfg.Redis)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *scheduler.Scheduler, *handler.BookingHandler) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init payment gateway client
	gatewayClient := gateway.New(&cfg.Gateway, httpClient)

	ctx := context.Background()

	// fail fast on a callback URL the gateway could never reach
	if err := gatewayClient.ValidateConfig(); err != nil {
		log.Fatalf("invalid gateway configuration: %v", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)
	asynqInspector := sched.InitInspector(&cfg.Redis)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	bookingRepo := repositories.New(db, logger, httpClient, redisClient, asynqClient, asynqInspector,
		&cfg.UserService, &cfg.NotificationService, &cfg.Booking)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher, gatewayClient, &cfg.Booking)
	m := &middleware.Middleware{
		Log:  logZap,
		Repo: bookingRepo,
	}

	v := validator.New()
	bookingHandler := &handler.BookingHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	notifierRouter, err := messagestream.NewRouter(publisher, "poisoned_queue", "booking_events_handler", "booking_events", subscriber, bookingHandler.ConsumeBookingEvents)
	if err != nil {
		logger.Error(ctx, "Failed to create booking_events router", err)
	}

	messageRouters = append(messageRouters, notifierRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, bookingHandler, m)

	return r, messageRouters, sched, bookingHandler
}
