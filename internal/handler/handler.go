package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mindlink-api/internal/middleware"
	"mindlink-api/internal/session"
	"mindlink-api/internal/store"
)

type Handler struct {
	store  *store.Store
	engine *session.Engine
	secret string
}

func New(st *store.Store, secret string) *Handler {
	return &Handler{
		store:  st,
		engine: session.NewEngine(st, nil),
		secret: secret,
	}
}

// actor reads the authenticated identity the auth interceptor put in the
// context. Operations never trust ids supplied in request bodies.
func actor(ctx context.Context) session.Actor {
	a := session.Actor{}
	if v, ok := ctx.Value(middleware.UserIDKey).(string); ok {
		a.ID = v
	}
	if v, ok := ctx.Value(middleware.RoleKey).(string); ok {
		a.Role = session.Role(v)
	}
	return a
}

// rpcError maps engine errors onto the status codes callers key off.
func rpcError(err error) error {
	var ve *session.ValidationError
	var ise *session.IllegalStateError
	var ue *session.UnauthorizedError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Reason)
	case errors.Is(err, session.ErrNotFound):
		return status.Error(codes.NotFound, "session not found")
	case errors.As(err, &ise):
		return status.Error(codes.FailedPrecondition, ise.Error())
	case errors.As(err, &ue):
		return status.Error(codes.PermissionDenied, ue.Reason)
	case errors.Is(err, session.ErrConflict):
		return status.Error(codes.Aborted, "session changed since read, refetch and retry")
	}
	// everything else came out of the store
	return status.Error(codes.Unavailable, "service unavailable")
}
