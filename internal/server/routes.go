package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rewardbot/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/leaderboard", handler(s.getV1Leaderboard))
		r.Get("/stats", handler(s.getV1Stats))
		r.Get("/inventory/{kind}/stats", handler(s.getV1InventoryStats))
		r.Post("/balance/adjust", handler(s.postV1BalanceAdjust))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
