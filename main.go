package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/pliu/bulletin/internal/config"
	"github.com/pliu/bulletin/internal/handlers"
	"github.com/pliu/bulletin/internal/metrics"
	"github.com/pliu/bulletin/internal/middleware"
	"github.com/pliu/bulletin/internal/service"
	"github.com/pliu/bulletin/internal/store"
	"github.com/pliu/bulletin/internal/store/sqlstore"
	"github.com/pliu/bulletin/internal/ws"
)

func main() {
	// .env is optional; real environments set the variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	s, err := sqlstore.New(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("open store")
	}
	defer s.Close()

	hub := ws.NewHub(logger)
	go hub.Run()

	r := newRouter(s, hub, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(s store.Store, hub *ws.Hub, logger zerolog.Logger) *mux.Router {
	accountHandler := &handlers.AccountHandler{Accounts: service.NewAccountService(s)}
	messageHandler := &handlers.MessageHandler{Messages: service.NewMessageService(s), Hub: hub}

	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	r.Use(metrics.Instrument)

	// API Endpoints
	r.HandleFunc("/register", accountHandler.Register).Methods("POST")
	r.HandleFunc("/login", accountHandler.Login).Methods("POST")
	r.HandleFunc("/messages", messageHandler.Create).Methods("POST")
	r.HandleFunc("/messages", messageHandler.GetAll).Methods("GET")
	r.HandleFunc("/messages/{message_id}", messageHandler.GetByID).Methods("GET")
	r.HandleFunc("/messages/{message_id}", messageHandler.DeleteByID).Methods("DELETE")
	r.HandleFunc("/messages/{message_id}", messageHandler.Update).Methods("PATCH")
	r.HandleFunc("/accounts/{account_id}/messages", messageHandler.ListByAccount).Methods("GET")

	// Operational endpoints
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	return r
}
