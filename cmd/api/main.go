package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"sombateka/internal/adapter/api"
	"sombateka/internal/adapter/api/handler"
	apimiddleware "sombateka/internal/adapter/api/middleware"
	"sombateka/internal/adapter/api/router"
	"sombateka/internal/adapter/repository"
	"sombateka/internal/domain/service"
	"sombateka/internal/infrastructure/firebase"
	"sombateka/internal/infrastructure/storage"
	"sombateka/internal/usecase"
	"sombateka/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
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

	var mediaService service.MediaUploadService
	switch cfg.MediaProvider {
	case "gcs":
		gcsClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.ServiceAccountPath)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		mediaService = gcsClient
	default:
		mediaService = storage.NewCloudinaryClient(cfg.CloudinaryCloud, cfg.CloudinaryPreset, cfg.CloudinaryTag)
	}
	defer mediaService.Close()

	sellerRepo := repository.NewFirestoreSellerRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	requestRepo := repository.NewFirestoreRequestRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(sellerRepo, firebaseAuthClient)
	sellerUseCase := usecase.NewSellerUseCase(sellerRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, sellerRepo)
	boostUseCase := usecase.NewBoostUseCase(productRepo)
	adminUseCase := usecase.NewAdminUseCase(requestRepo, productRepo, sellerRepo, firebaseAuthClient)

	handler.Setup(authUseCase, sellerUseCase, catalogUseCase, productUseCase, requestUseCase, boostUseCase, adminUseCase)
	handler.SetupFileHandler(mediaService)
	handler.SetupContactHandler(cfg)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(sellerRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
