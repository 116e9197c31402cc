package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/meenakannan/portfolio-api/internal/api/httpx"
	"github.com/meenakannan/portfolio-api/internal/api/validate"
	"github.com/meenakannan/portfolio-api/internal/repository"
)

// fail maps the error taxonomy onto the wire: validation errors keep
// their message, not-found gets the resource message, anything else is
// logged and surfaced as the generic message only.
func fail(w http.ResponseWriter, err error, notFound, generic string) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, repository.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, notFound)
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, generic)
	}
}

func badBody(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
}
