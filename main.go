package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"Reforma/internal/auth"
	"Reforma/internal/calc/debris"
	"Reforma/internal/calc/demolition"
	"Reforma/internal/calc/materials"
	"Reforma/internal/calc/pipeline"
	importer "Reforma/internal/calc/premium/importer"
	"Reforma/internal/calc/reform"
	"Reforma/internal/calc/report"
	"Reforma/internal/calc/rooms"
	"Reforma/internal/config"
	"Reforma/internal/pricing"
	"Reforma/internal/project"
	"Reforma/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	var zapLevel zapcore.Level
	if err := zapLevel.Set(level); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func HandleList(router *mux.Router, cfg *config.Config, repository repo.Repository, logger *zap.Logger) {
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		logger.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: repository, Log: logger}

	var pricer pricing.Pricer
	if cfg.Pricing.BaseURL != "" {
		pricer = pricing.NewClient(cfg.Pricing.BaseURL, cfg.Pricing.APIKey, cfg.Pricing.Secret)
	}
	projectH := &project.Handler{Repo: repository, Log: logger, Defaults: cfg.Takeoff, Pricer: pricer}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	roomsH := &rooms.Handler{}
	demolitionH := &demolition.Handler{}
	debrisH := &debris.Handler{Defaults: cfg.Takeoff}
	reformH := &reform.Handler{}
	materialsH := &materials.Handler{}
	pipelineH := &pipeline.Handler{Defaults: cfg.Takeoff}
	reportH := &report.Handler{}
	importerH := &importer.Handler{}

	secureApi.HandleFunc("/takeoff/rooms/normalize", roomsH.Normalize).Methods("POST")
	secureApi.HandleFunc("/takeoff/demolition/calc", demolitionH.Calc).Methods("POST")
	secureApi.HandleFunc("/takeoff/debris/calc", debrisH.Calc).Methods("POST")
	secureApi.HandleFunc("/takeoff/reform/calc", reformH.Calc).Methods("POST")
	secureApi.HandleFunc("/takeoff/materials/calc", materialsH.Calc).Methods("POST")
	secureApi.HandleFunc("/takeoff/full/calc", pipelineH.Calc).Methods("POST")
	secureApi.HandleFunc("/takeoff/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/takeoff/import/rooms", importerH.Rooms).Methods("POST")
	secureApi.HandleFunc("/takeoff/export/xlsx", importerH.Export).Methods("POST")

	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects", projectH.Create).Methods("POST")
	secureApi.HandleFunc("/projects/{id}/takeoff", projectH.GetTakeoff).Methods("GET")
	secureApi.HandleFunc("/projects/{id}/takeoff", projectH.SaveTakeoff).Methods("PUT")
	secureApi.HandleFunc("/projects/{id}/compute", projectH.Compute).Methods("POST")
	secureApi.HandleFunc("/projects/{id}/price", projectH.Price).Methods("POST")
	secureApi.HandleFunc("/projects/{id}/budgets", projectH.CreateBudget).Methods("POST")
	secureApi.HandleFunc("/budgets/{id}", projectH.UpdateBudgetStatus).Methods("PATCH")
	secureApi.HandleFunc("/budgets/{id}/adjustments", projectH.AddAdjustment).Methods("POST")
	secureApi.HandleFunc("/budgets/{id}/adjustments", projectH.ListAdjustments).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	router.PathPrefix("/").Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// .env is optional; containers set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(err)
	}
	logger := newLogger(cfg.Log.Level)
	defer logger.Sync()

	db := auth.InitDB(logger)
	defer db.Close()
	repository := repo.NewPostgresRepository(db, logger)

	router := mux.NewRouter()
	HandleList(router, cfg, repository, logger)
	handler := CORS(router)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	certFile, keyFile := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")

	wg.Wait()
}
