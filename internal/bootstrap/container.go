package bootstrap

import (
	"context"
	"log"

	"yolcu-backend/internal/config"
	"yolcu-backend/internal/controller"
	"yolcu-backend/internal/handler"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/repository/unitofwork"
	"yolcu-backend/internal/service"
	"yolcu-backend/internal/websocket"
	"yolcu-backend/pkg/generator"
	"yolcu-backend/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	RoadmapController   controller.IRoadmapController
	QuizController      controller.IQuizController
	CVController        controller.ICVController
	ProjectController   controller.IProjectController
	HackathonController controller.IHackathonController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ChatWsHandler *handler.ChatWsHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Provider & Generators
	llmProvider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	roadmapGen := generator.NewRoadmapGenerator(llmProvider, sysLogger)
	summaryGen := generator.NewSummaryCreator(llmProvider, sysLogger)
	motivationGen := generator.NewMotivationGenerator(llmProvider)
	quizGen := generator.NewQuizGenerator(llmProvider, sysLogger)
	suggestionGen := generator.NewSuggestionGenerator(llmProvider, sysLogger)
	evaluator := generator.NewProjectEvaluator(llmProvider, sysLogger)
	cvAnalyzer := generator.NewCVAnalyzer(llmProvider, sysLogger)
	chatAnswerer := generator.NewChatAnswerer(llmProvider, sysLogger)

	// 4. Infrastructure
	// Redis is optional. Without it the hub delivers locally only, which is
	// fine for a single instance.
	var rdb *redis.Client
	if cfg.App.RedisEnabled {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth, sysLogger)
	userService := service.NewUserService(uowFactory)
	roadmapService := service.NewRoadmapService(uowFactory, roadmapGen, summaryGen, motivationGen, sysLogger)
	chatService := service.NewChatService(uowFactory, chatAnswerer, sysLogger)
	quizService := service.NewQuizService(uowFactory, quizGen, sysLogger)
	cvService := service.NewCVService(uowFactory, cvAnalyzer, sysLogger)
	projectService := service.NewProjectService(uowFactory, suggestionGen, evaluator, sysLogger)
	hackathonService := service.NewHackathonService(uowFactory, pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, wsHub, wsLogger)

	// 6. Handlers & Controllers
	chatWsHandler := handler.NewChatWsHandler(hackathonService, wsHub, wsLogger)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		RoadmapController:   controller.NewRoadmapController(roadmapService, chatService),
		QuizController:      controller.NewQuizController(quizService),
		CVController:        controller.NewCVController(cvService),
		ProjectController:   controller.NewProjectController(projectService),
		HackathonController: controller.NewHackathonController(hackathonService),

		ConsumerService: consumerService,

		ChatWsHandler: chatWsHandler,
		WebSocketHub:  wsHub,
	}
}
