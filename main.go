package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"noteful/config"
	"noteful/handler"
	"noteful/logger"
	"noteful/middleware"
	"noteful/repository"
	"noteful/services"
	"noteful/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}
}

func setupRouter(client *mongo.Client, dbName string, authCfg config.AuthConfig, serverCfg config.ServerConfig, appLog *logger.Logger) *gin.Engine {
	db := client.Database(dbName)

	userRepo := repository.GetUserRepo(db)
	notesRepo := repository.GetNotesRepo(db)
	foldersRepo := repository.GetFoldersRepo(db)
	tagsRepo := repository.GetTagsRepo(db)

	hasher := services.NewArgon2Hasher()
	tokens := services.NewTokenService([]byte(authCfg.JWTSecret), authCfg.JWTExpiry)

	userService := &usecase.UserService{UsersRepo: userRepo, Hasher: hasher}
	refs := &usecase.RefValidator{FoldersRepo: foldersRepo, TagsRepo: tagsRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo, Refs: refs}
	foldersService := &usecase.FoldersService{FoldersRepo: foldersRepo}
	tagsService := &usecase.TagsService{TagsRepo: tagsRepo}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(appLog))
	router.Use(middleware.RequestTracingMiddleware(appLog))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(serverCfg.MaxRequestSize))

	// Public routes
	router.POST("/login", func(c *gin.Context) {
		handler.LoginHandler(c, userService, tokens)
	})
	router.POST("/users", func(c *gin.Context) {
		handler.RegistrationHandler(c, userService)
	})
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/login/refresh", func(c *gin.Context) {
			handler.RefreshTokenHandler(c, tokens)
		})

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}

		folders := protected.Group("/folders")
		{
			folders.GET("", func(c *gin.Context) {
				handler.ListFoldersHandler(c, foldersService)
			})
			folders.GET("/:id", func(c *gin.Context) {
				handler.GetFolderHandler(c, foldersService)
			})
			folders.POST("", func(c *gin.Context) {
				handler.CreateFolderHandler(c, foldersService)
			})
			folders.PUT("/:id", func(c *gin.Context) {
				handler.UpdateFolderHandler(c, foldersService)
			})
			folders.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteFolderHandler(c, foldersService)
			})
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", func(c *gin.Context) {
				handler.ListTagsHandler(c, tagsService)
			})
			tags.GET("/:id", func(c *gin.Context) {
				handler.GetTagHandler(c, tagsService)
			})
			tags.POST("", func(c *gin.Context) {
				handler.CreateTagHandler(c, tagsService)
			})
			tags.PUT("/:id", func(c *gin.Context) {
				handler.UpdateTagHandler(c, tagsService)
			})
			tags.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTagHandler(c, tagsService)
			})
		}
	}

	return router
}

func main() {
	serverCfg := config.LoadServerConfig()
	authCfg := config.LoadAuthConfig()
	dbCfg := config.LoadDatabaseConfig()

	appLog := logger.New(serverCfg.LogLevel)
	defer appLog.Sync()

	ctx := context.Background()
	client, err := config.ConnectMongo(ctx, dbCfg)
	if err != nil {
		appLog.Fatalw("mongodb connection failed", "err", err)
	}
	defer client.Disconnect(ctx)

	userRepo := repository.GetUserRepo(client.Database(dbCfg.DatabaseName))
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLog.Fatalw("index creation failed", "err", err)
	}

	router := setupRouter(client, dbCfg.DatabaseName, authCfg, serverCfg, appLog)

	serverAddr := fmt.Sprintf(":%s", serverCfg.Port)
	appLog.Infow("server starting", "addr", serverAddr, "db", dbCfg.DatabaseName)
	if err := router.Run(serverAddr); err != nil {
		appLog.Fatalw("server failed", "err", err)
	}
}
