package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-clinic-staff/internal/handler"
	"go-clinic-staff/internal/model"
	"go-clinic-staff/internal/repository"
	"go-clinic-staff/internal/service"
	"go-clinic-staff/internal/ws"
	"go-clinic-staff/pkg/database"
	"go-clinic-staff/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load env
	envErr := godotenv.Load()
	log := logger.New(os.Getenv("LOG_LEVEL"))
	if envErr != nil {
		log.Warn(".env file not found, relying on system env")
	}

	// 2. Storage
	staffRepo, patientRepo := openStorage(log)

	// 3. WebSocket hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 4. Wiring
	staffService := service.NewStaffService(staffRepo, patientRepo, wsHub, log)
	staffHandler := handler.NewStaffHandler(staffService)
	positionHandler := handler.NewPositionHandler()

	// 5. Fiber
	app := fiber.New(fiber.Config{
		AppName: "Clinic Staff v1.0",
	})
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	handler.RegisterRoutes(app, staffHandler, positionHandler, wsHub)

	// 6. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.WithError(err).Panic("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}
	log.Info("Server exited")
}

// openStorage picks the backing store from STORAGE (postgres by default).
func openStorage(log *logger.Logger) (repository.StaffRepository, repository.PatientRepository) {
	if os.Getenv("STORAGE") == "memory" {
		log.Warn("using in-memory storage; data is lost on restart")
		return repository.NewMemoryStaffRepo(), repository.NewMemoryPatientRepo(model.DemoPatients()...)
	}

	db, err := database.ConnectDB(log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	// AutoMigrate is fine for this service; use a migration tool once the schema settles.
	if err := db.AutoMigrate(&model.Staff{}, &model.Patient{}); err != nil {
		log.WithError(err).Fatal("Failed to migrate schema")
	}
	return repository.NewStaffRepo(db), repository.NewPatientRepo(db)
}
