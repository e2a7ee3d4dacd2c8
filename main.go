package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/mazegen-api/api"
	"github.com/beka-birhanu/mazegen-api/api/evalapi"
	api_i "github.com/beka-birhanu/mazegen-api/api/i"
	"github.com/beka-birhanu/mazegen-api/api/identity"
	"github.com/beka-birhanu/mazegen-api/api/mazeapi"
	"github.com/beka-birhanu/mazegen-api/config"
	"github.com/beka-birhanu/mazegen-api/infrastruture/repo"
	"github.com/beka-birhanu/mazegen-api/infrastruture/sortedstorage"
	"github.com/beka-birhanu/mazegen-api/infrastruture/token"
	"github.com/beka-birhanu/mazegen-api/logger"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *goredis.Client
	userRepo       i.UserRepo
	mazeRepo       i.MazeRepo
	evalRepo       i.EvalRepo
	scoreboard     i.Scoreboard
	mazeService    *service.MazeService
	evalService    *service.EvalService
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	mazeController api_i.Controller
	evalController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	evalRepo = repo.NewEvalRepo(client, config.Envs.DBName, "evalRuns")
	appLogger.Info("Repositories initialized")
}

func initScoreboard() {
	var err error
	scoreboard, err = sortedstorage.NewRedisScoreboard(redisClient, config.Envs.ScoreboardKey)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating scoreboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Scoreboard initialized")
}

func initMazeService() {
	generatorLogger, err := logger.New("GENERATOR", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(service.MazeServiceConfig{
		Repo:   mazeRepo,
		Logger: generatorLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initEvalService() {
	evalLogger, err := logger.New("EVAL", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating eval logger: %v", err))
		os.Exit(1)
	}

	evalService, err = service.NewEvalService(service.EvalServiceConfig{
		Mazes:  mazeRepo,
		Runs:   evalRepo,
		Board:  scoreboard,
		Logger: evalLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating eval service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Eval service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtTokenizer(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	evalController, err = evalapi.NewEvalController(evalService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating eval controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController, evalController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initScoreboard()
	initMazeService()
	initEvalService()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
