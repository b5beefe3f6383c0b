package wire

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func roundTrip(t *testing.T, in Message, out Message) {
	t.Helper()
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	in := &Session{
		Id:        "sess-1",
		DoctorId:  "doc-1",
		PatientId: "pat-1",
		Date:      "2026-03-15",
		Time:      "10:00",
		Status:    "edit_requested",
		CreatedBy: "patient",
		Edit: &EditRequest{
			NewDate:     "2026-03-16",
			NewTime:     "14:30",
			RequestedBy: "doctor",
		},
		Version:   3,
		CreatedAt: timestamppb.New(now),
		UpdatedAt: timestamppb.New(now.Add(time.Hour)),
	}

	out := &Session{}
	if err := out.UnmarshalWire(in.MarshalWire()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Id != in.Id || out.DoctorId != in.DoctorId || out.PatientId != in.PatientId ||
		out.Date != in.Date || out.Time != in.Time || out.Status != in.Status ||
		out.CreatedBy != in.CreatedBy || out.Version != in.Version {
		t.Errorf("scalar fields mismatch:\n in: %+v\nout: %+v", in, out)
	}
	if out.Edit == nil || *out.Edit != *in.Edit {
		t.Errorf("edit mismatch: %+v", out.Edit)
	}
	if out.CreatedAt == nil || !out.CreatedAt.AsTime().Equal(now) {
		t.Errorf("created_at mismatch: %v", out.CreatedAt)
	}
	if out.UpdatedAt == nil || !out.UpdatedAt.AsTime().Equal(now.Add(time.Hour)) {
		t.Errorf("updated_at mismatch: %v", out.UpdatedAt)
	}
}

func TestSessionZeroValuesOmitted(t *testing.T) {
	if got := (&Session{}).MarshalWire(); len(got) != 0 {
		t.Errorf("zero session encoded to %d bytes", len(got))
	}
	if got := (&ListSessionsRequest{}).MarshalWire(); len(got) != 0 {
		t.Errorf("empty request encoded to %d bytes", len(got))
	}
}

func TestSessionWithoutEdit(t *testing.T) {
	in := &Session{Id: "sess-1", Status: "accepted", Version: 1}
	out := &Session{}
	roundTrip(t, in, out)
	if out.Edit != nil {
		t.Error("absent edit field decoded as non-nil")
	}
}

func TestCheckJoinResponseRoundTrip(t *testing.T) {
	roundTrip(t, &CheckJoinResponse{Eligible: true, Status: "accepted"}, &CheckJoinResponse{})
	roundTrip(t, &CheckJoinResponse{Expired: true, Status: "accepted"}, &CheckJoinResponse{})
}

func TestListSessionsResponseRoundTrip(t *testing.T) {
	in := &ListSessionsResponse{Sessions: []*Session{
		{Id: "a", Status: "pending", Version: 1},
		{Id: "b", Status: "accepted", Version: 2},
	}}
	roundTrip(t, in, &ListSessionsResponse{})
}

// Decoders must skip fields they do not know so the schema can grow.
func TestUnknownFieldsIgnored(t *testing.T) {
	data := (&GetSessionRequest{Id: "sess-1"}).MarshalWire()
	data = protowire.AppendTag(data, 99, protowire.BytesType)
	data = protowire.AppendString(data, "future")
	data = protowire.AppendTag(data, 100, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)

	out := &GetSessionRequest{}
	if err := out.UnmarshalWire(data); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if out.Id != "sess-1" {
		t.Errorf("known field lost: %q", out.Id)
	}
}

func TestTruncatedDataErrors(t *testing.T) {
	data := (&Session{Id: "sess-1", Date: "2026-03-15"}).MarshalWire()
	if err := (&Session{}).UnmarshalWire(data[:len(data)-3]); err == nil {
		t.Error("truncated payload accepted")
	}
}

func TestCodec(t *testing.T) {
	c := Codec{}
	if c.Name() != "proto" {
		t.Errorf("codec name: %q", c.Name())
	}

	in := &CreateSessionRequest{CounterpartyId: "doc-1", Date: "2026-03-15", Time: "10:00"}
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(data, in.MarshalWire()) {
		t.Error("codec output differs from MarshalWire")
	}

	out := &CreateSessionRequest{}
	if err := c.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("codec round trip: %+v vs %+v", in, out)
	}

	if _, err := c.Marshal(struct{}{}); err == nil {
		t.Error("codec accepted a non-wire value")
	}
}

func TestAuthMessagesRoundTrip(t *testing.T) {
	roundTrip(t, &RegisterRequest{
		Role:           "doctor",
		Name:           "Dr. Ada",
		Email:          "ada@example.com",
		Password:       "hunter2hunter2",
		Specialization: "psychiatry",
	}, &RegisterRequest{})

	roundTrip(t, &LoginResponse{
		Token:        "jwt",
		RefreshToken: "refresh",
		UserId:       "u-1",
		Name:         "Ada",
		Role:         "doctor",
	}, &LoginResponse{})
}
