package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "studyhub-backend/internal/auth"
	"studyhub-backend/internal/documents"
	"studyhub-backend/internal/questions"
	"studyhub-backend/internal/shared/config"
	"studyhub-backend/internal/shared/server"
	"studyhub-backend/internal/shared/storage/db"
	"studyhub-backend/internal/shared/storage/object"
	localstore "studyhub-backend/internal/shared/storage/object/local"
	s3store "studyhub-backend/internal/shared/storage/object/s3"
	"studyhub-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsRepo documents.Repo
	QuestionsRepo questions.Repo
	UsersRepo     users.Repo

	DocumentsService *documents.Service
	QuestionsService *questions.Service
	UsersService     *users.Service

	DocumentsHandler *documents.Handler
	QuestionsHandler *questions.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		DocumentsHandler:  app.DocumentsHandler,
		QuestionsHandler:  app.QuestionsHandler,
		GoogleAuth:        app.GoogleAuth,
		ServeLocalObjects: cfg.ObjectStoreType == "local",
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicBaseURL)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func buildServices(app *App) {
	var docRepo documents.Repo
	var questionRepo questions.Repo
	var userRepo users.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		questionRepo = &questions.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		questionRepo = questions.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	docSvc := &documents.Service{Store: app.Store, Repo: docRepo}
	questionSvc := &questions.Service{Store: app.Store, Repo: questionRepo}
	userSvc := users.NewService(userRepo)

	app.DocumentsRepo = docRepo
	app.QuestionsRepo = questionRepo
	app.UsersRepo = userRepo
	app.DocumentsService = docSvc
	app.QuestionsService = questionSvc
	app.UsersService = userSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.QuestionsHandler = questions.NewHandler(questionSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
