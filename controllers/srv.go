// controllers/srv.go
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"Gin_redis_lending_tracker/app"
	"Gin_redis_lending_tracker/lending"
	"Gin_redis_lending_tracker/models"
	"Gin_redis_lending_tracker/report"
	"Gin_redis_lending_tracker/session"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Engine  *lending.Engine
	Reports *report.Service
	Carts   session.CartStore
	Log     *slog.Logger
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Engine:  a.Engine,
		Reports: a.Reports,
		Carts:   a.Carts,
		Log:     a.Log,
	}
}

// --- helpers ---

// fail maps engine errors onto status codes. Validation errors carry their
// code and ref so a client can point at the offending field.
func (s *Srv) fail(c *gin.Context, err error) {
	var ve *models.ValidationError
	var nf *models.NotFoundError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, app.H{"error": ve.Message, "code": ve.Code, "ref": ve.Ref})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, app.H{"error": nf.Error(), "code": "not_found", "ref": nf.ID})
	case errors.Is(err, session.ErrCartNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error(), "code": "not_found"})
	default:
		s.Log.Error("request failed", slog.String("path", c.FullPath()), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, app.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, app.H{"error": err.Error(), "code": "bad_request"})
}
