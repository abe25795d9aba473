package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// contextKey is a custom type for context keys. Using a custom type prevents
// collisions with other packages' context values.
type contextKey string

const (
	// loggerKey is used for the Gin context map; loggerCtxKey for the
	// standard request context.
	loggerKey    = contextKey("logger")
	loggerCtxKey = contextKey("loggerCtx")

	// userIDKey stores the authenticated user's ID.
	userIDKey = contextKey("userID")

	// actorKey stores the authenticated actor (ID, role, base affiliation).
	actorKey = contextKey("actor")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetActorFromContext retrieves the authenticated actor from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		actorVal := c.Request.Context().Value(actorKey)
		if actorVal != nil {
			if actor, ok := actorVal.(domain.Actor); ok {
				return actor, true
			}
		}
		return domain.Actor{}, false
	}

	actor, ok := actorVal.(domain.Actor)
	if !ok {
		return domain.Actor{}, false
	}

	return actor, true
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context. It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
