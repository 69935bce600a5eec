package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
)

const (
	msgInvalidBody     = "Cuerpo de la solicitud inválido."
	msgInvalidToken    = "Token de sesión inválido."
	msgNoActiveSession = "No hay usuarios registrados en el log temporal."
	msgNotFound        = "Recurso no encontrado."
	msgConflict        = "El código ya está registrado."
	msgTooLarge        = "El archivo excede el tamaño permitido."
	msgInternal        = "Error interno del servidor."
)

type errorResponse struct {
	Message string `json:"message"`
}

// errorStatus maps a service error to the status and message sent to the
// client. Details of unexpected errors are never exposed.
func errorStatus(err error) (int, string) {
	var (
		verr   *model.ValidationError
		tooBig *http.MaxBytesError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge, msgTooLarge
	case errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, model.ErrNoActiveSession):
		return http.StatusNotFound, msgNoActiveSession
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, msgConflict
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func handleError(c *gin.Context, logger *logger.Logger, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("HTTP handler: request failed",
			"path", c.FullPath(),
			"error", err.Error())
	}
	c.AbortWithStatusJSON(status, errorResponse{Message: msg})
}
