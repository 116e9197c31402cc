package handlers

import (
	"net/http"
	"time"

	"github.com/meenakannan/portfolio-api/internal/api/httpx"
)

func Health(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{
			Status:  "success",
			Message: "Portfolio API is running",
			Data: map[string]string{
				"timestamp":   time.Now().UTC().Format(time.RFC3339),
				"environment": env,
			},
		})
	}
}
