package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"recycling/cmd"
	httpin "recycling/internal/adapters/in/http"
	"recycling/internal/adapters/out/notify"
	"recycling/internal/adapters/out/postgres/appointmentrepo"
	"recycling/internal/adapters/out/postgres/conversationrepo"
	"recycling/internal/adapters/out/postgres/inventoryrepo"
	"recycling/internal/adapters/out/postgres/recyclerrepo"
	"recycling/internal/adapters/out/postgres/transportrepo"
	"recycling/internal/adapters/out/postgres/warehouserepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, nil)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app.CreateHTTPServer(), configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		ReviewReminderDelay: reminderDelay(goDotEnvVariable("REVIEW_REMINDER_DELAY")),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// reminderDelay parses the review reminder delay, defaulting to 72 hours.
func reminderDelay(raw string) time.Duration {
	if raw == "" {
		return 72 * time.Hour
	}
	delay, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid REVIEW_REMINDER_DELAY: %v", err)
	}
	return delay
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&appointmentrepo.AppointmentDTO{},
		&appointmentrepo.ItemDTO{},
		&recyclerrepo.RecyclerDTO{},
		&conversationrepo.ConversationDTO{},
		&conversationrepo.MessageDTO{},
		&transportrepo.TransportOrderDTO{},
		&transportrepo.CategoryDTO{},
		&warehouserepo.WarehouseReceiptDTO{},
		&warehouserepo.ReceiptCategoryDTO{},
		&inventoryrepo.InventoryPostingDTO{},
		&notify.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
