package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"Yatube/cache"
	"Yatube/config"
	"Yatube/feed"
	"Yatube/models"
	"Yatube/monitoring"
	"Yatube/storage"
	"Yatube/templates"
	"Yatube/utils/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
	Config *config.Config
	Cache  cache.PageCache
	Images storage.ImageStore
	Feed   *feed.Assembler
}

// ===============================
// SERVER INITIALIZATION
// ===============================
func (server *Server) Initialize(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}
	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// Redis init (safe failure)
	if err := cache.Init(cfg); err != nil {
		logger.Logger.Warn("could not connect to redis, using in-process page cache", zap.Error(err))
	}

	images, err := storage.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("init image storage: %w", err)
	}

	built, err := NewServer(cfg, db, cache.New(cfg), images)
	if err != nil {
		return err
	}
	*server = *built
	return nil
}

// NewServer wires the router around already opened dependencies.
func NewServer(cfg *config.Config, db *gorm.DB, pageCache cache.PageCache, images storage.ImageStore) (*Server, error) {
	server := &Server{
		DB:     db,
		Config: cfg,
		Cache:  pageCache,
		Images: images,
		Feed:   feed.NewAssembler(db, cfg.PageSize),
	}

	renderer, err := templates.New(images.URL)
	if err != nil {
		return nil, err
	}

	monitoring.Register()

	server.Router = gin.New()
	server.Router.HTMLRender = renderer
	server.initializeRoutes()
	return server, nil
}

// OpenDatabase connects to Postgres, or to SQLite when DB_DRIVER=sqlite.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dsn := cfg.SQLitePath
		if !strings.Contains(dsn, "_foreign_keys") {
			if strings.Contains(dsn, "?") {
				dsn += "&_foreign_keys=1"
			} else {
				dsn += "?_foreign_keys=1"
			}
		}
		dialector = sqlite.Open(dsn)
	case "", "postgres":
		dialector = postgres.Open(postgresDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

func postgresDSN(cfg *config.Config) string {
	if dsn := cfg.DatabaseURL; dsn != "" {
		if cfg.IsProduction() && !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

func (server *Server) Run(addr string) error {
	logger.Logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, server.Router)
}
