package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/emscore/ems-backend-go/internal/config"
	appHTTP "github.com/emscore/ems-backend-go/internal/handler/http"
	"github.com/emscore/ems-backend-go/internal/pkg/cron"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/emscore/ems-backend-go/internal/pkg/email"
	"github.com/emscore/ems-backend-go/internal/pkg/facematch"
	"github.com/emscore/ems-backend-go/internal/pkg/geo"
	"github.com/emscore/ems-backend-go/internal/pkg/jwt"
	"github.com/emscore/ems-backend-go/internal/pkg/otp"
	"github.com/emscore/ems-backend-go/internal/pkg/storage"
	"github.com/emscore/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/emscore/ems-backend-go/internal/service/attendance"
	serviceAuth "github.com/emscore/ems-backend-go/internal/service/auth"
	dashboardService "github.com/emscore/ems-backend-go/internal/service/dashboard"
	employeeService "github.com/emscore/ems-backend-go/internal/service/employee"
	"github.com/emscore/ems-backend-go/internal/service/file"
	leaveService "github.com/emscore/ems-backend-go/internal/service/leave"
)

const otpTTL = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	employeeRepo := postgresql.NewEmployeeRepository(db)
	loginRepo := postgresql.NewLoginRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiration,
		cfg.JWT.RefreshExpiration,
		jwt.NewRedisRevocationStore(redisClient),
	)
	otpStore := otp.NewStore(redisClient, otpTTL)

	photoStore, err := facematch.NewObjectStore(cfg.FaceStore)
	if err != nil {
		log.Fatal("Failed to initialize face photo store:", err)
	}
	compareClient := facematch.NewCompareClient(
		cfg.FaceMatch.ServiceURL,
		cfg.FaceMatch.APIKey,
		photoStore,
		cfg.FaceMatch.RequestTimeout,
	)
	evaluator := facematch.NewEvaluator(photoStore, compareClient, cfg.FaceMatch.SimilarityThreshold)

	zone := geo.Zone{
		Center: geo.Point{
			Latitude:  cfg.Geofence.CenterLatitude,
			Longitude: cfg.Geofence.CenterLongitude,
		},
		RadiusMeters: cfg.Geofence.RadiusMeters,
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, loginRepo, JWTService, otpStore, emailService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, loginRepo, photoStore, cfg.FaceStore.FolderPrefix)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		zone,
		evaluator,
		cfg.FaceStore.FolderPrefix,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, emailService)
	dashboardSvc := dashboardService.NewDashboardService(db, dashboardRepo, employeeRepo, leaveRepo)
	fileService := file.NewFileService(fileStorage, photoStore, cfg.FaceStore.FolderPrefix)

	authHandler := appHTTP.NewAuthHandler(authService, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	uploadHandler := appHTTP.NewUploadHandler(fileService)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		dashboardHandler,
		uploadHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
