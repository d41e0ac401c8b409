package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"dorakingdom/internal/adapter/api"
	"dorakingdom/internal/adapter/api/handler"
	apimiddleware "dorakingdom/internal/adapter/api/middleware"
	"dorakingdom/internal/adapter/api/router"
	"dorakingdom/internal/adapter/repository"
	"dorakingdom/internal/infrastructure/firebase"
	"dorakingdom/internal/infrastructure/genai"
	"dorakingdom/internal/infrastructure/ratelimit"
	"dorakingdom/internal/usecase"
	"dorakingdom/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment (production) or file (local dev)
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	} else {
		log.Printf("Using application default credentials")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	genaiClient, err := genai.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	missionRepo := repository.NewFirestoreMissionRepository(firestoreClient)
	enrollmentRepo := repository.NewFirestoreEnrollmentRepository(firestoreClient)
	commentRepo := repository.NewFirestoreCommentRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	userUseCase := usecase.NewUserUseCase(userRepo, enrollmentRepo, firebaseAuthClient)
	missionUseCase := usecase.NewMissionUseCase(missionRepo, enrollmentRepo, userRepo, cfg.WeeklyMissionID)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, missionRepo, userRepo)
	assistUseCase := usecase.NewAssistUseCase(genaiClient)
	assistUseCase.StartCleanupRoutine()

	handler.Setup(userUseCase, missionUseCase, commentUseCase, assistUseCase)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, authMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
