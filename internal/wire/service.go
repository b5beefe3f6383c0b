package wire

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "mindlink.v1.SessionService"

// SessionServiceServer is implemented by internal/handler.
type SessionServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)

	ListDoctors(context.Context, *ListDoctorsRequest) (*ListDoctorsResponse, error)
	ListPatients(context.Context, *ListPatientsRequest) (*ListPatientsResponse, error)
	RequestAssignment(context.Context, *RequestAssignmentRequest) (*RequestAssignmentResponse, error)
	ListAssignmentRequests(context.Context, *ListAssignmentRequestsRequest) (*ListAssignmentRequestsResponse, error)
	DecideAssignment(context.Context, *DecideAssignmentRequest) (*DecideAssignmentResponse, error)

	CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error)
	ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error)
	UpdateSessionStatus(context.Context, *UpdateSessionStatusRequest) (*SessionResponse, error)
	RequestSessionEdit(context.Context, *RequestSessionEditRequest) (*SessionResponse, error)
	DecideSessionEdit(context.Context, *DecideSessionEditRequest) (*SessionResponse, error)
	CheckJoin(context.Context, *CheckJoinRequest) (*CheckJoinResponse, error)
}

// unary builds the grpc.MethodDesc handler for one method, threading the
// chained interceptors the same way generated code does.
func unary[Req any](method string, call func(SessionServiceServer, context.Context, *Req) (Message, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	full := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SessionServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
		h := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SessionServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, h)
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SessionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary("Register", func(s SessionServiceServer, ctx context.Context, r *RegisterRequest) (Message, error) {
			return s.Register(ctx, r)
		})},
		{MethodName: "Login", Handler: unary("Login", func(s SessionServiceServer, ctx context.Context, r *LoginRequest) (Message, error) {
			return s.Login(ctx, r)
		})},
		{MethodName: "Refresh", Handler: unary("Refresh", func(s SessionServiceServer, ctx context.Context, r *RefreshRequest) (Message, error) {
			return s.Refresh(ctx, r)
		})},
		{MethodName: "Logout", Handler: unary("Logout", func(s SessionServiceServer, ctx context.Context, r *LogoutRequest) (Message, error) {
			return s.Logout(ctx, r)
		})},
		{MethodName: "ListDoctors", Handler: unary("ListDoctors", func(s SessionServiceServer, ctx context.Context, r *ListDoctorsRequest) (Message, error) {
			return s.ListDoctors(ctx, r)
		})},
		{MethodName: "ListPatients", Handler: unary("ListPatients", func(s SessionServiceServer, ctx context.Context, r *ListPatientsRequest) (Message, error) {
			return s.ListPatients(ctx, r)
		})},
		{MethodName: "RequestAssignment", Handler: unary("RequestAssignment", func(s SessionServiceServer, ctx context.Context, r *RequestAssignmentRequest) (Message, error) {
			return s.RequestAssignment(ctx, r)
		})},
		{MethodName: "ListAssignmentRequests", Handler: unary("ListAssignmentRequests", func(s SessionServiceServer, ctx context.Context, r *ListAssignmentRequestsRequest) (Message, error) {
			return s.ListAssignmentRequests(ctx, r)
		})},
		{MethodName: "DecideAssignment", Handler: unary("DecideAssignment", func(s SessionServiceServer, ctx context.Context, r *DecideAssignmentRequest) (Message, error) {
			return s.DecideAssignment(ctx, r)
		})},
		{MethodName: "CreateSession", Handler: unary("CreateSession", func(s SessionServiceServer, ctx context.Context, r *CreateSessionRequest) (Message, error) {
			return s.CreateSession(ctx, r)
		})},
		{MethodName: "ListSessions", Handler: unary("ListSessions", func(s SessionServiceServer, ctx context.Context, r *ListSessionsRequest) (Message, error) {
			return s.ListSessions(ctx, r)
		})},
		{MethodName: "GetSession", Handler: unary("GetSession", func(s SessionServiceServer, ctx context.Context, r *GetSessionRequest) (Message, error) {
			return s.GetSession(ctx, r)
		})},
		{MethodName: "UpdateSessionStatus", Handler: unary("UpdateSessionStatus", func(s SessionServiceServer, ctx context.Context, r *UpdateSessionStatusRequest) (Message, error) {
			return s.UpdateSessionStatus(ctx, r)
		})},
		{MethodName: "RequestSessionEdit", Handler: unary("RequestSessionEdit", func(s SessionServiceServer, ctx context.Context, r *RequestSessionEditRequest) (Message, error) {
			return s.RequestSessionEdit(ctx, r)
		})},
		{MethodName: "DecideSessionEdit", Handler: unary("DecideSessionEdit", func(s SessionServiceServer, ctx context.Context, r *DecideSessionEditRequest) (Message, error) {
			return s.DecideSessionEdit(ctx, r)
		})},
		{MethodName: "CheckJoin", Handler: unary("CheckJoin", func(s SessionServiceServer, ctx context.Context, r *CheckJoinRequest) (Message, error) {
			return s.CheckJoin(ctx, r)
		})},
	},
	Metadata: "mindlink/v1/session.proto",
}

func RegisterSessionServiceServer(s grpc.ServiceRegistrar, srv SessionServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
