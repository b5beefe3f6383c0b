package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mindlink-api/internal/session"
	"mindlink-api/internal/wire"
)

func (h *Handler) ListDoctors(ctx context.Context, _ *wire.ListDoctorsRequest) (*wire.ListDoctorsResponse, error) {
	docs, err := h.store.ListDoctors(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "service unavailable")
	}
	resp := &wire.ListDoctorsResponse{Doctors: make([]*wire.Doctor, 0, len(docs))}
	for _, d := range docs {
		resp.Doctors = append(resp.Doctors, &wire.Doctor{
			Id:             d.ID,
			Name:           d.Name,
			Specialization: d.Specialization,
			Email:          d.Email,
		})
	}
	return resp, nil
}

func (h *Handler) ListPatients(ctx context.Context, _ *wire.ListPatientsRequest) (*wire.ListPatientsResponse, error) {
	a := actor(ctx)
	if a.Role != session.RoleDoctor {
		return nil, status.Error(codes.PermissionDenied, "doctors only")
	}

	patients, err := h.store.ListPatientsFor(ctx, a.ID)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "service unavailable")
	}
	resp := &wire.ListPatientsResponse{Patients: make([]*wire.Patient, 0, len(patients))}
	for _, p := range patients {
		resp.Patients = append(resp.Patients, &wire.Patient{Id: p.ID, Name: p.Name, Email: p.Email})
	}
	return resp, nil
}

func (h *Handler) RequestAssignment(ctx context.Context, req *wire.RequestAssignmentRequest) (*wire.RequestAssignmentResponse, error) {
	a := actor(ctx)
	if a.Role != session.RolePatient {
		return nil, status.Error(codes.PermissionDenied, "patients only")
	}
	if req.DoctorId == "" {
		return nil, status.Error(codes.InvalidArgument, "doctor id required")
	}

	doc, err := h.store.UserByID(ctx, req.DoctorId)
	if err != nil || doc.Role != string(session.RoleDoctor) {
		return nil, status.Error(codes.NotFound, "doctor not found")
	}

	id, err := h.store.CreateAssignmentRequest(ctx, doc.ID, a.ID)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "service unavailable")
	}
	return &wire.RequestAssignmentResponse{RequestId: id}, nil
}

func (h *Handler) ListAssignmentRequests(ctx context.Context, _ *wire.ListAssignmentRequestsRequest) (*wire.ListAssignmentRequestsResponse, error) {
	a := actor(ctx)
	if a.Role != session.RoleDoctor {
		return nil, status.Error(codes.PermissionDenied, "doctors only")
	}

	reqs, err := h.store.ListAssignmentRequests(ctx, a.ID)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "service unavailable")
	}

	resp := &wire.ListAssignmentRequestsResponse{Requests: make([]*wire.AssignmentRequest, 0, len(reqs))}
	for _, r := range reqs {
		item := &wire.AssignmentRequest{Id: r.ID, PatientId: r.PatientID}
		if p, err := h.store.UserByID(ctx, r.PatientID); err == nil {
			item.PatientName = p.Name
			item.PatientEmail = p.Email
		}
		resp.Requests = append(resp.Requests, item)
	}
	return resp, nil
}

func (h *Handler) DecideAssignment(ctx context.Context, req *wire.DecideAssignmentRequest) (*wire.DecideAssignmentResponse, error) {
	a := actor(ctx)
	if a.Role != session.RoleDoctor {
		return nil, status.Error(codes.PermissionDenied, "doctors only")
	}
	if req.RequestId == "" {
		return nil, status.Error(codes.InvalidArgument, "request id required")
	}

	r, err := h.store.GetAssignmentRequest(ctx, req.RequestId)
	if err != nil {
		return nil, status.Error(codes.NotFound, "request not found")
	}
	// hide other doctors' requests
	if r.DoctorID != a.ID {
		return nil, status.Error(codes.NotFound, "request not found")
	}
	if r.Status != "pending" {
		return nil, status.Error(codes.FailedPrecondition, "request already decided")
	}

	switch req.Decision {
	case "approve":
		err = h.store.ApproveAssignmentRequest(ctx, r.ID)
	case "reject":
		err = h.store.RejectAssignmentRequest(ctx, r.ID)
	default:
		return nil, status.Error(codes.InvalidArgument, "decision must be approve or reject")
	}
	if err != nil {
		return nil, status.Error(codes.Unavailable, "service unavailable")
	}
	return &wire.DecideAssignmentResponse{}, nil
}
