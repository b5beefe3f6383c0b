package grpcweb

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"mindlink-api/internal/auth"
	"mindlink-api/internal/handler"
	"mindlink-api/internal/middleware"
	"mindlink-api/internal/wire"
)

// Bridge translates gRPC-Web (browser HTTP/1.1) → native gRPC via TCP.
type Bridge struct {
	conn   *grpc.ClientConn
	direct *handler.Handler
	secret string
	rpcs   map[string]rpc
}

// rpc binds one method name to its request type and handler call.
type rpc struct {
	open   bool // no bearer token needed
	newReq func() wire.Message
	call   func(ctx context.Context, req wire.Message) (wire.Message, error)
}

// New dials the gRPC server at addr (e.g. "localhost:50051").
// If directHandler is provided, it bypasses the network entirely.
func New(addr string, directHandler *handler.Handler, secret string) (*Bridge, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	b := &Bridge{conn: conn, direct: directHandler, secret: secret}
	b.rpcs = dispatch(directHandler)
	return b, nil
}

func (b *Bridge) Close() { b.conn.Close() }

func dispatch(h *handler.Handler) map[string]rpc {
	if h == nil {
		return nil
	}
	return map[string]rpc{
		"Register": {open: true,
			newReq: func() wire.Message { return &wire.RegisterRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.Register(ctx, m.(*wire.RegisterRequest))
			}},
		"Login": {open: true,
			newReq: func() wire.Message { return &wire.LoginRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.Login(ctx, m.(*wire.LoginRequest))
			}},
		"Refresh": {open: true,
			newReq: func() wire.Message { return &wire.RefreshRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.Refresh(ctx, m.(*wire.RefreshRequest))
			}},
		"Logout": {
			newReq: func() wire.Message { return &wire.LogoutRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.Logout(ctx, m.(*wire.LogoutRequest))
			}},
		"ListDoctors": {
			newReq: func() wire.Message { return &wire.ListDoctorsRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.ListDoctors(ctx, m.(*wire.ListDoctorsRequest))
			}},
		"ListPatients": {
			newReq: func() wire.Message { return &wire.ListPatientsRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.ListPatients(ctx, m.(*wire.ListPatientsRequest))
			}},
		"RequestAssignment": {
			newReq: func() wire.Message { return &wire.RequestAssignmentRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.RequestAssignment(ctx, m.(*wire.RequestAssignmentRequest))
			}},
		"ListAssignmentRequests": {
			newReq: func() wire.Message { return &wire.ListAssignmentRequestsRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.ListAssignmentRequests(ctx, m.(*wire.ListAssignmentRequestsRequest))
			}},
		"DecideAssignment": {
			newReq: func() wire.Message { return &wire.DecideAssignmentRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.DecideAssignment(ctx, m.(*wire.DecideAssignmentRequest))
			}},
		"CreateSession": {
			newReq: func() wire.Message { return &wire.CreateSessionRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.CreateSession(ctx, m.(*wire.CreateSessionRequest))
			}},
		"ListSessions": {
			newReq: func() wire.Message { return &wire.ListSessionsRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.ListSessions(ctx, m.(*wire.ListSessionsRequest))
			}},
		"GetSession": {
			newReq: func() wire.Message { return &wire.GetSessionRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.GetSession(ctx, m.(*wire.GetSessionRequest))
			}},
		"UpdateSessionStatus": {
			newReq: func() wire.Message { return &wire.UpdateSessionStatusRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.UpdateSessionStatus(ctx, m.(*wire.UpdateSessionStatusRequest))
			}},
		"RequestSessionEdit": {
			newReq: func() wire.Message { return &wire.RequestSessionEditRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.RequestSessionEdit(ctx, m.(*wire.RequestSessionEditRequest))
			}},
		"DecideSessionEdit": {
			newReq: func() wire.Message { return &wire.DecideSessionEditRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.DecideSessionEdit(ctx, m.(*wire.DecideSessionEditRequest))
			}},
		"CheckJoin": {
			newReq: func() wire.Message { return &wire.CheckJoinRequest{} },
			call: func(ctx context.Context, m wire.Message) (wire.Message, error) {
				return h.CheckJoin(ctx, m.(*wire.CheckJoinRequest))
			}},
	}
}

// Handler returns an http.Handler that translates gRPC-Web → gRPC.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, X-Grpc-Web, X-User-Agent, Authorization, x-grpc-web")
		w.Header().Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ct := r.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "application/grpc-web") {
			http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
			return
		}

		log.Printf("grpc-web → %s", r.URL.Path)
		b.forward(w, r)
	})
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, codes.Internal, "read body failed")
		return
	}
	payload, err := decodeFrame(body)
	if err != nil {
		writeError(w, codes.InvalidArgument, err.Error())
		return
	}

	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	// direct path: decode, auth, call the handler in-process
	if rpc, ok := b.rpcs[method]; ok {
		ctx := r.Context()
		if !rpc.open {
			ctx, err = b.authenticate(ctx, r.Header.Get("Authorization"))
			if err != nil {
				st, _ := status.FromError(err)
				writeError(w, st.Code(), st.Message())
				return
			}
		}

		req := rpc.newReq()
		if err := req.UnmarshalWire(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}

		resp, err := rpc.call(ctx, req)
		if err != nil {
			st, _ := status.FromError(err)
			log.Printf("grpc-web error: %s: %s", st.Code(), st.Message())
			writeError(w, st.Code(), st.Message())
			return
		}
		writeSuccess(w, resp.MarshalWire())
		return
	}

	// fallback: raw pass-through to the grpc server
	md := metadata.MD{}
	if vals := r.Header.Values("Authorization"); len(vals) > 0 {
		md.Set("authorization", vals...)
	}
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	resp := &rawMsg{}
	err = b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st, _ := status.FromError(err)
		log.Printf("grpc-web error: %s: %s", st.Code(), st.Message())
		writeError(w, st.Code(), st.Message())
		return
	}

	writeSuccess(w, resp.data)
}

func (b *Bridge) authenticate(ctx context.Context, authHeader string) (context.Context, error) {
	if authHeader == "" {
		return nil, status.Error(codes.Unauthenticated, "no token")
	}
	raw := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := auth.ParseToken(raw, b.secret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "bad token")
	}
	ctx = context.WithValue(ctx, middleware.UserIDKey, claims.UserID)
	return context.WithValue(ctx, middleware.RoleKey, claims.Role), nil
}

// rawMsg wraps raw protobuf bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}
func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}
func (rawCodec) Name() string { return "raw" }

// decodeFrame strips the grpc-web envelope:
// 1-byte flag + 4-byte big-endian length + protobuf payload.
func decodeFrame(body []byte) ([]byte, error) {
	if len(body) < 5 {
		return nil, fmt.Errorf("body too short")
	}
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if int(msgLen)+5 > len(body) {
		return nil, fmt.Errorf("incomplete frame")
	}
	return body[5 : 5+msgLen], nil
}

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	trailer := fmt.Sprintf("grpc-status:%d\r\ngrpc-message:%s\r\n", code, msg)
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	// data frame
	df := make([]byte, 5+len(data))
	df[0] = 0x00
	binary.BigEndian.PutUint32(df[1:5], uint32(len(data)))
	copy(df[5:], data)
	w.Write(df)
	// trailer frame
	trailer := "grpc-status:0\r\n"
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}
