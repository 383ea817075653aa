package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/gophfeed-server/internal/api/http/response"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// errBadRequest marks malformed requests rejected before reaching a service.
var errBadRequest = errors.New("bad request")

func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		_ = response.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, model.ErrUnauthorized):
		_ = response.WriteError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, model.ErrInvalidUpdate),
		errors.Is(err, model.ErrValidation),
		errors.Is(err, errBadRequest):
		_ = response.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrConflict):
		_ = response.WriteError(w, http.StatusConflict, "conflict")
	default:
		log.Error("unhandled error", "error", err.Error())
		_ = response.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
