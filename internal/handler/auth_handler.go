package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mindlink-api/internal/auth"
	"mindlink-api/internal/middleware"
	"mindlink-api/internal/model"
	"mindlink-api/internal/session"
	"mindlink-api/internal/wire"
)

const refreshTokenTTL = 7 * 24 * time.Hour

func (h *Handler) Register(ctx context.Context, req *wire.RegisterRequest) (*wire.RegisterResponse, error) {
	role := session.Role(req.Role)
	if !role.Valid() {
		return nil, status.Error(codes.InvalidArgument, "role must be doctor or patient")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name, email and password required")
	}
	if len(req.Password) < 8 {
		return nil, status.Error(codes.InvalidArgument, "password too short")
	}
	if role == session.RoleDoctor && req.Specialization == "" {
		return nil, status.Error(codes.InvalidArgument, "specialization required for doctors")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	u := &model.User{
		ID:             uuid.New().String(),
		Email:          req.Email,
		PasswordHash:   hash,
		Name:           req.Name,
		Role:           req.Role,
		Specialization: req.Specialization,
	}

	if err := h.store.CreateUser(ctx, u); err != nil {
		// unique violation = dup email, but don't reveal that
		return nil, status.Error(codes.AlreadyExists, "registration failed")
	}

	tok, refresh, err := h.issueTokens(ctx, u.ID, u.Role)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &wire.RegisterResponse{UserId: u.ID, Token: tok, RefreshToken: refresh}, nil
}

func (h *Handler) Login(ctx context.Context, req *wire.LoginRequest) (*wire.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password required")
	}

	u, err := h.store.UserByEmail(ctx, req.Email)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, refresh, err := h.issueTokens(ctx, u.ID, u.Role)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &wire.LoginResponse{
		Token:        tok,
		RefreshToken: refresh,
		UserId:       u.ID,
		Name:         u.Name,
		Role:         u.Role,
	}, nil
}

func (h *Handler) Refresh(ctx context.Context, req *wire.RefreshRequest) (*wire.RefreshResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token required")
	}

	rt, err := h.store.ConsumeRefreshToken(ctx, auth.HashRefreshToken(req.RefreshToken), time.Now())
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	u, err := h.store.UserByID(ctx, rt.UserID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	rawNew, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	if _, err := h.store.RotateRefreshToken(ctx, rt, newHash, time.Now().Add(refreshTokenTTL)); err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	tok, err := auth.MakeToken(u.ID, u.Role, h.secret)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &wire.RefreshResponse{Token: tok, RefreshToken: rawNew}, nil
}

func (h *Handler) Logout(ctx context.Context, _ *wire.LogoutRequest) (*wire.LogoutResponse, error) {
	uid, ok := ctx.Value(middleware.UserIDKey).(string)
	if !ok || uid == "" {
		return nil, status.Error(codes.Unauthenticated, "no token")
	}
	if err := h.store.RevokeAllRefreshTokens(ctx, uid); err != nil {
		return nil, status.Error(codes.Unavailable, "service unavailable")
	}
	return &wire.LogoutResponse{}, nil
}

func (h *Handler) issueTokens(ctx context.Context, uid, role string) (access, refresh string, err error) {
	access, err = auth.MakeToken(uid, role, h.secret)
	if err != nil {
		return "", "", err
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return "", "", err
	}
	if _, err := h.store.CreateRefreshToken(ctx, uid, hash, time.Now().Add(refreshTokenTTL)); err != nil {
		return "", "", err
	}
	return access, raw, nil
}
