package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"geowiz-backend/internal/achievements"
	"geowiz-backend/internal/answers"
	"geowiz-backend/internal/leaderboard"
	"geowiz-backend/internal/learning"
	"geowiz-backend/internal/questions"
	"geowiz-backend/internal/sessions"
	"geowiz-backend/internal/shared/config"
	"geowiz-backend/internal/shared/server"
	"geowiz-backend/internal/shared/storage/db"
	"geowiz-backend/internal/shared/storage/object"
	localstore "geowiz-backend/internal/shared/storage/object/local"
	s3store "geowiz-backend/internal/shared/storage/object/s3"
	"geowiz-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	QuestionsRepo    questions.QuestionsRepo
	SessionsRepo     sessions.SessionsRepo
	AnswersRepo      answers.AnswersRepo
	AchievementsRepo achievements.AchievementsRepo
	UsersRepo        users.Repo

	QuestionsService    *questions.Service
	SessionsService     *sessions.Service
	AnswersService      *answers.Service
	LearningService     *learning.Service
	LeaderboardService  *leaderboard.Service
	AchievementsService *achievements.Service
	UsersService        *users.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.MediaStoreType) == "" {
		cfg.MediaStoreType = "local"
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

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		QuestionsHandler:    questions.NewHandler(app.QuestionsService),
		SessionsHandler:     sessions.NewHandler(app.SessionsService),
		AnswersHandler:      answers.NewHandler(app.AnswersService),
		LearningHandler:     learning.NewHandler(app.LearningService),
		LeaderboardHandler:  leaderboard.NewHandler(app.LeaderboardService),
		AchievementsHandler: achievements.NewHandler(app.AchievementsService),
		UsersHandler:        users.NewHandler(app.UsersService),
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
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.MediaStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("MEDIA_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, "")
	default:
		return localstore.New(cfg.LocalMediaDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(ctx context.Context, app *App) error {
	if app.DB != nil {
		app.QuestionsRepo = &questions.PGRepo{DB: app.DB}
		app.SessionsRepo = &sessions.PGRepo{DB: app.DB}
		app.AnswersRepo = &answers.PGRepo{DB: app.DB}
		app.AchievementsRepo = &achievements.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		memQuestions := questions.NewMemoryRepo()
		if app.Config.SeedQuestions {
			if err := questions.Seed(ctx, memQuestions); err != nil {
				return fmt.Errorf("seed questions: %w", err)
			}
		}
		app.QuestionsRepo = memQuestions
		app.SessionsRepo = sessions.NewMemoryRepo()
		app.AnswersRepo = answers.NewMemoryRepo()
		app.AchievementsRepo = achievements.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.QuestionsService = &questions.Service{Repo: app.QuestionsRepo, Store: app.Store}
	app.AchievementsService = &achievements.Service{Repo: app.AchievementsRepo, History: app.SessionsRepo}
	app.SessionsService = &sessions.Service{Repo: app.SessionsRepo, OnCompleted: app.AchievementsService}
	app.AnswersService = &answers.Service{
		Repo:      app.AnswersRepo,
		Sessions:  app.SessionsService,
		Questions: app.QuestionsService,
	}
	app.LearningService = &learning.Service{Sessions: app.SessionsService}
	app.UsersService = users.NewService(app.UsersRepo)
	app.LeaderboardService = &leaderboard.Service{Scores: app.SessionsService, Users: app.UsersRepo}

	return nil
}
