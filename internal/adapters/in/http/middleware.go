package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Identity headers set by the auth gateway in front of the service.
const (
	HeaderOwnerID  = "X-Owner-Id"
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

const actorContextKey = "actor"

// ActorMiddleware builds the acting principal from the identity headers and
// rejects the request with 401 when any of them is missing or malformed.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, err := actorFromHeaders(c.Request().Header)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid identity: " + err.Error(),
				})
			}

			c.Set(actorContextKey, a)
			return next(c)
		}
	}
}

func actorFromHeaders(h http.Header) (actor.Actor, error) {
	ownerID, ownerErr := kernel.ParseID(HeaderOwnerID, h.Get(HeaderOwnerID))
	userID, userErr := kernel.ParseID(HeaderUserID, h.Get(HeaderUserID))
	role, roleErr := actor.ParseRole(h.Get(HeaderUserRole))
	if err := errors.Join(ownerErr, userErr, roleErr); err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(ownerID, userID, role)
}

func actorFrom(c echo.Context) (actor.Actor, error) {
	a, ok := c.Get(actorContextKey).(actor.Actor)
	if !ok {
		return actor.Actor{}, actor.ErrActorIsNotConstructed
	}
	return a, nil
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError || v.Error != nil {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.RequestID != "" {
				attrs = append(attrs, slog.String("request_id", v.RequestID))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}
