package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Exela-Tech/Propeerty-Management/cache"
	"github.com/Exela-Tech/Propeerty-Management/controller"
	"github.com/Exela-Tech/Propeerty-Management/kafka"
	"github.com/Exela-Tech/Propeerty-Management/middleware"
	"github.com/Exela-Tech/Propeerty-Management/model"
	"github.com/Exela-Tech/Propeerty-Management/processor"
	"github.com/Exela-Tech/Propeerty-Management/routes"
	"github.com/Exela-Tech/Propeerty-Management/service"
	"github.com/Exela-Tech/Propeerty-Management/store"
)

// ======================
// INIT DATABASE
// ======================
func initDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASS", "postgres")
	name := getEnv("DB_NAME", "rentdb")

	dsn := "host=" + host +
		" user=" + user +
		" password=" + pass +
		" dbname=" + name +
		" port=" + port +
		" sslmode=disable TimeZone=UTC"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect rent db:", err)
	}

	if err := db.AutoMigrate(&model.Property{}, &model.Payment{}); err != nil {
		log.Fatal("failed to migrate:", err)
	}

	log.Println("Connected to DB:", name)
	return db
}

func main() {
	_ = godotenv.Load()

	db := initDB()

	// kafka producer
	producer := kafka.NewProducer(getEnv("KAFKA_BROKER", "kafka:9092"))

	// redis
	rdb := cache.Connect(getEnv("REDIS_ADDR", "localhost:6379"))

	stripeClient := processor.NewStripeClient(
		os.Getenv("STRIPE_SECRET_KEY"),
		os.Getenv("STRIPE_WEBHOOK_SECRET"),
		getEnv("CHECKOUT_RETURN_URL", "http://localhost:3000/payments/return"),
	)

	svc := service.NewPaymentService(
		store.NewPaymentStore(db),
		stripeClient,
		producer,
		cache.NewPaymentCache(rdb),
	)

	app := fiber.New()
	app.Use(logger.New())

	routes.RegisterPaymentRoutes(
		app,
		middleware.AuthRequired(getEnv("JWT_SECRET", "verysecretkey")),
		controller.NewPaymentController(svc),
		controller.NewWebhookController(stripeClient, svc),
	)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Rent payments API is running"})
	})

	port := getEnv("PORT", "8080")
	log.Println("HTTP server running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("fiber error:", err)
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
