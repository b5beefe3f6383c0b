package grpcweb

import (
	"bytes"
	"encoding/binary"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
)

func frame(flag byte, payload []byte) []byte {
	f := make([]byte, 5+len(payload))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:5], uint32(len(payload)))
	copy(f[5:], payload)
	return f
}

func TestDecodeFrame(t *testing.T) {
	payload := []byte("hello")
	got, err := decodeFrame(frame(0x00, payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload: %q", got)
	}

	// empty message is a valid frame
	got, err = decodeFrame(frame(0x00, nil))
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty payload: %q", got)
	}
}

func TestDecodeFrameMalformed(t *testing.T) {
	if _, err := decodeFrame(nil); err == nil {
		t.Error("nil body accepted")
	}
	if _, err := decodeFrame([]byte{0, 0, 0}); err == nil {
		t.Error("short body accepted")
	}

	// header claims more bytes than the body carries
	f := frame(0x00, []byte("hello"))
	if _, err := decodeFrame(f[:len(f)-2]); err == nil {
		t.Error("truncated frame accepted")
	}
}

func TestWriteSuccessFraming(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(rec, []byte("payload"))

	if ct := rec.Header().Get("Content-Type"); ct != "application/grpc-web+proto" {
		t.Errorf("content type: %s", ct)
	}

	body := rec.Body.Bytes()
	data, err := decodeFrame(body)
	if err != nil {
		t.Fatalf("data frame: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("data: %q", data)
	}

	trailer := body[5+len(data):]
	if trailer[0] != 0x80 {
		t.Fatalf("trailer flag: %#x", trailer[0])
	}
	if !strings.Contains(string(trailer[5:]), "grpc-status:0") {
		t.Errorf("trailer: %q", trailer[5:])
	}
}

func TestWriteErrorFraming(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, codes.PermissionDenied, "not yours")

	body := rec.Body.Bytes()
	if body[0] != 0x80 {
		t.Fatalf("flag: %#x", body[0])
	}
	trailer := string(body[5:])
	if !strings.Contains(trailer, "grpc-status:7") {
		t.Errorf("missing status: %q", trailer)
	}
	if !strings.Contains(trailer, "grpc-message:not yours") {
		t.Errorf("missing message: %q", trailer)
	}
}
