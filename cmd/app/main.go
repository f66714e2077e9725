package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"invoicing/cmd"
	httpin "invoicing/internal/adapters/in/http"
	"invoicing/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	zapLogger, err := logger.New(logger.Config{
		Level:       configs.LogLevel,
		Development: configs.LogDevelopment,
	})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		zapLogger,
	)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		LogLevel:       goDotEnvVariable("LOG_LEVEL"),
		LogDevelopment: goDotEnvBool("LOG_DEVELOPMENT"),
	}
	return config
}

var loadDotEnv = sync.OnceFunc(func() {
	// A missing .env is fine: the process environment is used as is.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
})

func goDotEnvVariable(key string) string {
	loadDotEnv()
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	v, err := strconv.ParseBool(goDotEnvVariable(key))
	return err == nil && v
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.OFF)

	createInvoiceHandler := app.CreateCreateInvoiceCommandHandler()
	server := httpin.NewServer(
		&createInvoiceHandler,
		app.CreateGetCustomerTotalQueryHandler(),
		app.CreateGetCustomerNameQueryHandler(),
		app.CreateCountCustomersQueryHandler(),
		app.CreateCountCustomerInvoicesQueryHandler(),
		app.CreateGetCustomerQueryHandler(),
		app.CreateGetCustomersInCityQueryHandler(),
		app.Logger(),
	)
	server.Register(e)

	addr := fmt.Sprintf("0.0.0.0:%s", port)
	app.Logger().Info("starting http server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		app.Logger().Fatal("http server stopped", zap.Error(err))
	}
}
