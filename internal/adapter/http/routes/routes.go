package routes

import (
	"context"
	"log"
	"os"
	"time"

	_ "interlab/docs"
	request "interlab/internal/adapter/http/dto/request"
	"interlab/internal/adapter/http/handlers"
	"interlab/internal/adapter/http/middleware"
	"interlab/internal/adapter/persistence/repository"
	"interlab/internal/domain/cycle"
	"interlab/internal/infrastructure/database"
	"interlab/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const (
	defaultPort     = "8080"
	defaultTimezone = "America/Sao_Paulo"
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	if err := request.RegisterBindings(); err != nil {
		log.Fatalf("Failed to register request validators: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	ideaRepo := repository.NewIdeaDynamoRepository(ddb)
	nominationRepo := repository.NewNominationDynamoRepository(ddb)
	cycleRepo := repository.NewCycleConfigDynamoRepository(ddb)

	if database.AutoCreateTablesEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.EnsureTables(ctx, ddb, ideaRepo.TableName(), nominationRepo.TableName(), cycleRepo.TableName())
		cancel()
		if err != nil {
			log.Fatalf("Failed to create dynamodb tables: %v", err)
		}
	}

	gate := cycle.NewGate(programLocation())

	ideaUseCase := usecase.NewIdeaUseCase(ideaRepo, cycleRepo, gate)
	evaluationUseCase := usecase.NewEvaluationUseCase(ideaRepo)
	nominationUseCase := usecase.NewNominationUseCase(nominationRepo, cycleRepo, gate)
	votingUseCase := usecase.NewVotingUseCase(ideaRepo, nominationRepo, cycleRepo, gate)
	rankingUseCase := usecase.NewRankingUseCase(ideaRepo, nominationRepo, cycleRepo)
	cycleUseCase := usecase.NewCycleUseCase(cycleRepo, gate)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("[routes] JWT_SECRET is empty; every authenticated request will be rejected")
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := v1.Group("")
	authed.Use(middleware.Auth(secret))
	addIdeaRoutes(authed, handlers.NewIdeaHandler(ideaUseCase), handlers.NewEvaluationHandler(evaluationUseCase))
	addNominationRoutes(authed, handlers.NewNominationHandler(nominationUseCase))
	addVotingRoutes(authed, handlers.NewVotingHandler(votingUseCase, rankingUseCase))
	addCycleRoutes(authed, handlers.NewCycleHandler(cycleUseCase))
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// programLocation is the single calendar every cycle window is evaluated in.
func programLocation() *time.Location {
	name := getenvDefault("PROGRAM_TIMEZONE", defaultTimezone)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[routes] unknown PROGRAM_TIMEZONE=%q; falling back to local time: %v", name, err)
		return time.Local
	}
	return loc
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
