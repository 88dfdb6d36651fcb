package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/api/v1/handler"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/config"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/middleware"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/repository"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/service"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling)
	dsn := cfg.DatabaseURL
	// In a development environment, disable SSL for local testing. In
	// production the connection string carries its own SSL settings.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}

	// Ping the database to ensure connection is valid
	if err := db.Ping(); err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// Set reasonable connection pool limits
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// 2. Initialize validator
	validate := handler.NewValidator()

	// 3. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)

	userSvc := service.NewUserService(userRepo)
	courseSvc := service.NewCourseService(courseRepo)

	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)

	// 4. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(userSvc, logger)

	// 5. Create ServeMux router with the API mounted under /api
	apiMux := http.NewServeMux()
	userHandler.RegisterRoutes(apiMux, authMiddleware)
	courseHandler.RegisterRoutes(apiMux, authMiddleware)
	apiMux.Handle("/", handler.NotFoundHandler())

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	// Friendly greeting on the root route; everything else is a 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`"welcome to the school api"`))
			return
		}
		handler.RouteNotFound(w)
	})

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), db, nil
}
