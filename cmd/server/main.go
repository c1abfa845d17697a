package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketcue/config"
	"ticketcue/internal/event"
	"ticketcue/internal/eventstatus"
	"ticketcue/internal/middleware"
	"ticketcue/internal/notify"
	"ticketcue/internal/realtime"
	"ticketcue/internal/reminder"
	"ticketcue/internal/user"
	"ticketcue/pkg/constants"
	"ticketcue/pkg/consul"
	"ticketcue/pkg/firebase"
	"ticketcue/pkg/zap"

	"github.com/gin-gonic/gin"
	consulapi "github.com/hashicorp/consul/api"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()

	logger, err := zap.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	consulConn := consul.NewConsulConn(logger, cfg)
	consulClient := consulConn.Connect()
	defer consulConn.Deregister()

	mongoClient, err := connectToMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if cfg.MainServiceName != "" {
		if err := waitPassing(consulClient, cfg.MainServiceName, 60*time.Second); err != nil {
			logger.Fatalf("Dependency not ready: %v", err)
		}
	}

	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Fatal(err)
		}
	}()

	// Setup cron
	c := cron.New(cron.WithSeconds())
	fbApp, _, err := firebase.SetUpFireBase()
	if err != nil {
		logger.Fatalf("Failed to initialize firebase: %v", err)
	}

	db := mongoClient.Database(cfg.MongoDB)
	eventRepository := event.NewEventRepository(db.Collection("events"), db.Collection("event_updates"))
	reminderRepository := reminder.NewReminderRepository(db.Collection("reminders"))
	statusRepository := eventstatus.NewStatusRepository(db.Collection("event_statuses"))

	userService := user.NewUserService(consulClient, cfg.MainServiceName)
	hub := realtime.NewHub()
	notifier := notify.NewPushNotifier(fbApp, userService, hub)

	eventService := event.NewEventService(eventRepository)
	reminderService := reminder.NewReminderService(reminderRepository, eventRepository, notifier)
	statusService := eventstatus.NewStatusService(statusRepository, eventRepository)

	eventHandler := event.NewEventHandler(eventService)
	reminderHandler := reminder.NewReminderHandler(reminderService)
	statusHandler := eventstatus.NewStatusHandler(statusService)

	secured := middleware.Secured(cfg.JWTSecret)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	event.RegisterRoutes(router, eventHandler, secured)
	reminder.RegisterRoutes(router, reminderHandler, secured)
	eventstatus.RegisterRoutes(router, statusHandler, secured)
	realtime.RegisterRoutes(router, hub, secured)

	_, err = c.AddFunc("0 */1 * * * *", func() {
		log.Println("🔄 Cron master running...")
		ctx := context.WithValue(context.Background(), constants.TokenKey, os.Getenv("CRON_SERVICE_TOKEN"))
		if err := reminderService.CronReminderNotifications(ctx); err != nil {
			log.Printf("CronReminderNotifications failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("AddFunc error: %v", err)
	}

	c.Start()
	defer c.Stop()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("Error shutting down server: %v", err)
	}
	logger.Info("Server stopped")
}

func connectToMongoDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Failed to connect to MongoDB")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("Failed to ping MongoDB")
		return nil, err
	}

	log.Println("Successfully connected to MongoDB")
	return client, nil
}

func waitPassing(cli *consulapi.Client, name string, timeout time.Duration) error {
	dl := time.Now().Add(timeout)
	for time.Now().Before(dl) {
		entries, _, err := cli.Health().Service(name, "", true, nil)
		if err == nil && len(entries) > 0 {
			return nil
		}
		time.Sleep(2 * time.Second)
	}
	return fmt.Errorf("%s not ready in consul", name)
}
