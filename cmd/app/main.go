package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	postgrescommon "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/cartrepo"
	"restaurant/internal/adapters/out/postgres/categoryrepo"
	"restaurant/internal/adapters/out/postgres/menuitemrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/userrepo"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultCartIdleHours = 720
	tokenTTL             = 24 * time.Hour
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	migrateDB(gormDB)
	seedCategories(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		CartIdleHours: goDotEnvVariable("CART_IDLE_HOURS"),
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

func cartIdleDuration(configs cmd.Config) time.Duration {
	hours := defaultCartIdleHours
	if configs.CartIdleHours != "" {
		parsed, err := strconv.Atoi(configs.CartIdleHours)
		if err != nil || parsed < 1 {
			log.Fatalf("Invalid CART_IDLE_HOURS value: %s", configs.CartIdleHours)
		}
		hours = parsed
	}
	return time.Duration(hours) * time.Hour
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&categoryrepo.CategoryDTO{},
		&menuitemrepo.MenuItemDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedCategories inserts the default menu categories. Reruns skip slugs
// that already exist.
func seedCategories(gormDB *gorm.DB) {
	defaults := map[string]string{
		"mains":     "Mains",
		"starters":  "Starters",
		"desserts":  "Desserts",
		"beverages": "Beverages",
	}

	repo := postgrescommon.NewGormUnitOfWorkFactory(gormDB).Create().CategoryRepository()
	for slug, title := range defaults {
		var count int64
		gormDB.Model(&categoryrepo.CategoryDTO{}).Where("slug = ?", slug).Count(&count)
		if count > 0 {
			continue
		}

		category, err := catalog.NewCategory(kernel.NewUUID(), slug, title)
		if err != nil {
			log.Fatalf("Failed to build default category %s: %v", slug, err)
		}
		if err := repo.Add(context.Background(), category); err != nil {
			log.Fatalf("Failed to seed category %s: %v", slug, err)
		}
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreatePurgeAbandonedCartsCommandHandler(),
		cartIdleDuration(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	authenticator, err := httpadapter.NewAuthenticator(
		configs.JWTSecret,
		tokenTTL,
		app.CreateGetUserQueryHandler(),
		app.CreateGetUserByUsernameQueryHandler(),
	)
	if err != nil {
		log.Fatalf("Failed to create authenticator: %v", err)
	}

	server := httpadapter.NewServer(
		authenticator,
		app.CreateAddCartItemCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateClearCartCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateMenuItemCommandHandler(),
		app.CreateUpdateMenuItemCommandHandler(),
		app.CreateDeleteMenuItemCommandHandler(),
		app.CreateRegisterUserCommandHandler(),
		app.CreateAssignRoleCommandHandler(),
		app.CreateRevokeRoleCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateListMenuItemsQueryHandler(),
		app.CreateGetMenuItemQueryHandler(),
		app.CreateGetCategoryQueryHandler(),
		app.CreateGetUserQueryHandler(),
		app.CreateListGroupMembersQueryHandler(),
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
