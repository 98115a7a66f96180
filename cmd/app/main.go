package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"laundry/cmd"
	httpadapter "laundry/internal/adapters/in/http"
	pgadapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}
	defer func() {
		_ = root.Close()
	}()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateExpirePromotionsCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		JWTTTL:                 goDotEnvVariable("JWT_TTL"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = pgadapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.ServerParams{
		Issuer:                        root.TokenIssuer(),
		RegisterUserHandler:           root.CreateRegisterUserCommandHandler(),
		CreateStoreHandler:            root.CreateCreateStoreCommandHandler(),
		CreatePartnerHandler:          root.CreateCreatePartnerCommandHandler(),
		CreateOrderHandler:            root.CreateCreateOrderCommandHandler(),
		AcceptOrderHandler:            root.CreateAcceptOrderCommandHandler(),
		AdvanceOrderHandler:           root.CreateAdvanceOrderCommandHandler(),
		CancelOrderHandler:            root.CreateCancelOrderCommandHandler(),
		DeleteOrderHandler:            root.CreateDeleteOrderCommandHandler(),
		SetPartnerAvailabilityHandler: root.CreateSetPartnerAvailabilityCommandHandler(),
		ApprovePartnerHandler:         root.CreateApprovePartnerCommandHandler(),
		CreatePromotionHandler:        root.CreateCreatePromotionCommandHandler(),
		LoginHandler:                  root.CreateLoginQueryHandler(),
		GetAvailableOrdersHandler:     root.CreateGetAvailableOrdersQueryHandler(),
		GetStoreOrdersHandler:         root.CreateGetStoreOrdersQueryHandler(),
		GetOrderDetailHandler:         root.CreateGetOrderDetailQueryHandler(),
		GetNearbyStoresHandler:        root.CreateGetNearbyStoresQueryHandler(),
		GetActivePromotionsHandler:    root.CreateGetActivePromotionsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
