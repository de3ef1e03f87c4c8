package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"quizbattle-backend/internal/hub"
	"quizbattle-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, log))
	r.Get("/api/questions", Questions)
	r.Get("/api/characters", Characters)

	// Client assets, same as the public/ dir the game has always shipped.
	r.Handle("/*", http.FileServer(http.Dir("public")))

	return r
}
