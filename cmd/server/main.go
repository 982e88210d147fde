package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/labyrinth/api"
	api_i "github.com/beka-birhanu/labyrinth/api/i"
	"github.com/beka-birhanu/labyrinth/api/identity"
	labyrinthapi "github.com/beka-birhanu/labyrinth/api/labyrinth"
	"github.com/beka-birhanu/labyrinth/config"
	"github.com/beka-birhanu/labyrinth/infrastruture/cache"
	"github.com/beka-birhanu/labyrinth/infrastruture/repo"
	"github.com/beka-birhanu/labyrinth/infrastruture/token"
	"github.com/beka-birhanu/labyrinth/logger"
	"github.com/beka-birhanu/labyrinth/service"
	"github.com/beka-birhanu/labyrinth/service/i"
	"github.com/beka-birhanu/labyrinth/solver"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	solveTimeout = 10 * time.Second
)

// Global variables for dependencies
var (
	envs                config.ServerConfig
	mongoClient         *mongo.Client
	redisClient         *redis.Client
	solveRepo           i.SolveRepo
	resultCache         i.ResultCache
	jwtTokenizer        i.Tokenizer
	clientAuth          i.ClientAuthenticator
	labyrinthService    i.LabyrinthService
	authController      api_i.Controller
	labyrinthController api_i.Controller
	router              *api.Router
	appLogger           *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

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

func initSolveRepo(client *mongo.Client) {
	solveRepo = repo.NewSolveRepo(client, envs.DBName, "solves")
	appLogger.Info("Solve repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
		DB:       envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initResultCache() {
	var err error
	resultCache, err = cache.NewRedisResultCache(redisClient, "labyrinth", envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating result cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Result cache initialized")
}

func initLabyrinthService() {
	solveLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}

	labyrinthService, err = service.NewLabyrinthService(
		solver.New(solver.Options{MaxNodes: config.Envs.MaxNodes}),
		resultCache,
		solveRepo,
		solveLogger,
	)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating labyrinth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Labyrinth service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initClientAuth() {
	var err error
	clientAuth, err = service.NewClientAuth(envs.APIClientID, envs.APISecretHash, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating client auth: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Client auth initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(clientAuth)

	var err error
	labyrinthController, err = labyrinthapi.NewLabyrinthController(labyrinthService, solveTimeout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating labyrinth controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, labyrinthController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	envs = config.MustServerConfig()
	gin.SetMode(envs.GinMode)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initSolveRepo(mongoClient)

	initRedis(ctx)
	defer redisClient.Close()
	initResultCache()

	initLabyrinthService()
	initJWTTokenizer()
	initClientAuth()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
