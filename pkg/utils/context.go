package utils

import (
	"context"

	"github.com/cnedd11/Crypto-Bank-App/internal/data/entity"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	RequestIDKey contextKey = "request_id"
)

// GetSessionFromContext returns the probed session placed there by the
// authorization gate middleware.
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	sessVal := ctx.Value(SessionKey)
	if sessVal == nil {
		return nil, false
	}

	sess, ok := sessVal.(*entity.Session)
	if !ok || sess == nil {
		return nil, false
	}

	return sess, true
}

func SetSessionContext(ctx context.Context, sess *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	idVal := ctx.Value(RequestIDKey)
	if idVal == nil {
		return "", false
	}

	id, ok := idVal.(string)
	return id, ok
}

func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
