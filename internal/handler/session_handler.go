package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/timestamppb"

	"mindlink-api/internal/model"
	"mindlink-api/internal/session"
	"mindlink-api/internal/wire"
)

func (h *Handler) CreateSession(ctx context.Context, req *wire.CreateSessionRequest) (*wire.SessionResponse, error) {
	s, err := h.engine.Create(ctx, actor(ctx), req.CounterpartyId, req.Date, req.Time)
	if err != nil {
		return nil, rpcError(err)
	}
	return &wire.SessionResponse{Session: toWire(s)}, nil
}

func (h *Handler) ListSessions(ctx context.Context, _ *wire.ListSessionsRequest) (*wire.ListSessionsResponse, error) {
	sessions, err := h.engine.List(ctx, actor(ctx))
	if err != nil {
		return nil, rpcError(err)
	}
	resp := &wire.ListSessionsResponse{Sessions: make([]*wire.Session, 0, len(sessions))}
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, toWire(&sessions[i]))
	}
	return resp, nil
}

func (h *Handler) GetSession(ctx context.Context, req *wire.GetSessionRequest) (*wire.SessionResponse, error) {
	s, err := h.engine.Get(ctx, actor(ctx), req.Id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &wire.SessionResponse{Session: toWire(s)}, nil
}

func (h *Handler) UpdateSessionStatus(ctx context.Context, req *wire.UpdateSessionStatusRequest) (*wire.SessionResponse, error) {
	s, err := h.engine.UpdateStatus(ctx, actor(ctx), req.Id, session.Status(req.Status))
	if err != nil {
		return nil, rpcError(err)
	}
	return &wire.SessionResponse{Session: toWire(s)}, nil
}

func (h *Handler) RequestSessionEdit(ctx context.Context, req *wire.RequestSessionEditRequest) (*wire.SessionResponse, error) {
	s, err := h.engine.RequestEdit(ctx, actor(ctx), req.Id, req.NewDate, req.NewTime)
	if err != nil {
		return nil, rpcError(err)
	}
	return &wire.SessionResponse{Session: toWire(s)}, nil
}

func (h *Handler) DecideSessionEdit(ctx context.Context, req *wire.DecideSessionEditRequest) (*wire.SessionResponse, error) {
	s, err := h.engine.DecideEdit(ctx, actor(ctx), req.Id, session.Decision(req.Decision))
	if err != nil {
		return nil, rpcError(err)
	}
	return &wire.SessionResponse{Session: toWire(s)}, nil
}

func (h *Handler) CheckJoin(ctx context.Context, req *wire.CheckJoinRequest) (*wire.CheckJoinResponse, error) {
	js, s, err := h.engine.Join(ctx, actor(ctx), req.Id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &wire.CheckJoinResponse{
		Eligible: js.Eligible,
		Expired:  js.Expired,
		Status:   s.Status,
	}, nil
}

func toWire(s *model.Session) *wire.Session {
	w := &wire.Session{
		Id:        s.ID,
		DoctorId:  s.DoctorID,
		PatientId: s.PatientID,
		Date:      s.Date,
		Time:      s.Time,
		Status:    s.Status,
		CreatedBy: s.CreatedBy,
		Version:   s.Version,
	}
	if s.EditRequest != nil {
		w.Edit = &wire.EditRequest{
			NewDate:     s.EditRequest.NewDate,
			NewTime:     s.EditRequest.NewTime,
			RequestedBy: s.EditRequest.RequestedBy,
		}
	}
	if !s.CreatedAt.IsZero() {
		w.CreatedAt = timestamppb.New(s.CreatedAt)
	}
	if !s.UpdatedAt.IsZero() {
		w.UpdatedAt = timestamppb.New(s.UpdatedAt)
	}
	return w
}
