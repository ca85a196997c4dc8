package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/natheerjardien/cldvpoe/internal/config"
	"github.com/natheerjardien/cldvpoe/internal/infra/fileshare"
	"github.com/natheerjardien/cldvpoe/internal/infra/queue"
	"github.com/natheerjardien/cldvpoe/internal/infra/repository/db"
	"github.com/natheerjardien/cldvpoe/internal/infra/repository/redis_repo"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf          *config.Config
	Logger      zerolog.Logger
	DbConn      *gorm.DB
	DbDao       *db.DbDao
	RedisClient *redis.Client
	Producer    queue.Producer
	FileShare   *fileshare.Share

	CustomerService service.ICustomerService
	ProductService  service.IProductService
	OrderService    service.IOrderService
	FileService     service.IFileService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpdbConn()
	if err != nil {
		return err
	}

	err = app.runDBMigration()
	if err != nil {
		return err
	}

	err = app.setUpRedisClient()
	if err != nil {
		return err
	}

	app.setUpProducer()

	err = app.setUpFileShare()
	if err != nil {
		return err
	}

	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	app.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup db connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return fmt.Errorf("cannot connect to db: %w", err)
	}
	app.DbConn = conn
	app.DbDao = db.NewDbDao(conn)
	log.Printf("Finish setup db connection")
	return nil
}

func (app *ApplicationContext) runDBMigration() error {
	if app.Cf.MigrationUrl == "" {
		return nil
	}
	dbSource := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName)

	migration, err := migrate.New(app.Cf.MigrationUrl, dbSource)
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}

	if err := migration.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}

	log.Printf("db migrated successfully")
	return nil
}

func (app *ApplicationContext) setUpRedisClient() error {
	log.Printf("Start setup redis client")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpProducer() {
	app.Producer = queue.New(app.Cf.KafkaBrokers, app.Cf.KafkaTopic)
}

func (app *ApplicationContext) setUpFileShare() error {
	fs := afero.NewOsFs()
	if err := fs.MkdirAll(app.Cf.FileShareRoot, 0o755); err != nil {
		return err
	}
	app.FileShare = fileshare.NewShare(fs, app.Cf.FileShareRoot)
	return nil
}

func (app *ApplicationContext) setUpServices() {
	customerRepo := db.NewCustomerRepo(app.DbDao)
	productRepo := db.NewProductRepo(app.DbDao)
	orderRepo := db.NewOrderRepo(app.DbDao)
	seqRepo := db.NewSequenceRepo(app.DbDao)
	blobRepo := redis_repo.NewBlobRepo(app.RedisClient, app.Cf.PublicBaseUrl)

	seqService := service.NewSequenceService(app.Cf.IDAllocMode, seqRepo, productRepo, orderRepo)

	app.CustomerService = service.NewCustomerService(customerRepo)
	app.ProductService = service.NewProductService(productRepo, blobRepo, seqService, app.Logger)
	app.OrderService = service.NewOrderService(orderRepo, seqService, app.Producer, app.Logger)
	app.FileService = service.NewFileService(app.FileShare)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	if app.Producer != nil {
		if err := app.Producer.Close(); err != nil {
			log.Printf("producer close error: %v", err)
		}
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}
	if app.DbConn != nil {
		sqlDB, err := app.DbConn.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	return nil
}
