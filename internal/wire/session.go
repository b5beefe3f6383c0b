package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type EditRequest struct {
	NewDate     string
	NewTime     string
	RequestedBy string
}

func (m *EditRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.NewDate)
	out = appendString(out, 2, m.NewTime)
	out = appendString(out, 3, m.RequestedBy)
	return out
}

func (m *EditRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		v, n, err := consumeString(data)
		if err != nil {
			return 0, err
		}
		switch num {
		case 1:
			m.NewDate = v
		case 2:
			m.NewTime = v
		case 3:
			m.RequestedBy = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type Session struct {
	Id        string
	DoctorId  string
	PatientId string
	Date      string
	Time      string
	Status    string
	CreatedBy string
	Edit      *EditRequest
	Version   int64
	CreatedAt *timestamppb.Timestamp
	UpdatedAt *timestamppb.Timestamp
}

func (m *Session) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.DoctorId)
	out = appendString(out, 3, m.PatientId)
	out = appendString(out, 4, m.Date)
	out = appendString(out, 5, m.Time)
	out = appendString(out, 6, m.Status)
	out = appendString(out, 7, m.CreatedBy)
	if m.Edit != nil {
		out = appendMessage(out, 8, m.Edit)
	}
	out = appendInt64(out, 9, m.Version)
	out = appendTimestamp(out, 10, m.CreatedAt)
	out = appendTimestamp(out, 11, m.UpdatedAt)
	return out
}

func (m *Session) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		switch {
		case num >= 1 && num <= 7 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return 0, err
			}
			switch num {
			case 1:
				m.Id = v
			case 2:
				m.DoctorId = v
			case 3:
				m.PatientId = v
			case 4:
				m.Date = v
			case 5:
				m.Time = v
			case 6:
				m.Status = v
			case 7:
				m.CreatedBy = v
			}
			return n, nil
		case num == 8 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, errParse
			}
			m.Edit = &EditRequest{}
			if err := m.Edit.UnmarshalWire(v); err != nil {
				return 0, err
			}
			return n, nil
		case num == 9 && typ == protowire.VarintType:
			v, n, err := consumeInt64(data)
			if err != nil {
				return 0, err
			}
			m.Version = v
			return n, nil
		case (num == 10 || num == 11) && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, errParse
			}
			if num == 10 {
				m.CreatedAt = parseTimestamp(v)
			} else {
				m.UpdatedAt = parseTimestamp(v)
			}
			return n, nil
		}
		return 0, nil
	})
}

type CreateSessionRequest struct {
	CounterpartyId string
	Date           string
	Time           string
}

func (m *CreateSessionRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.CounterpartyId)
	out = appendString(out, 2, m.Date)
	out = appendString(out, 3, m.Time)
	return out
}

func (m *CreateSessionRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		v, n, err := consumeString(data)
		if err != nil {
			return 0, err
		}
		switch num {
		case 1:
			m.CounterpartyId = v
		case 2:
			m.Date = v
		case 3:
			m.Time = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

// SessionResponse wraps the session returned by every mutating operation
// and by GetSession.
type SessionResponse struct {
	Session *Session
}

func (m *SessionResponse) MarshalWire() []byte {
	if m.Session == nil {
		return nil
	}
	return appendMessage(nil, 1, m.Session)
}

func (m *SessionResponse) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, errParse
			}
			m.Session = &Session{}
			if err := m.Session.UnmarshalWire(v); err != nil {
				return 0, err
			}
			return n, nil
		}
		return 0, nil
	})
}

type GetSessionRequest struct {
	Id string
}

func (m *GetSessionRequest) MarshalWire() []byte { return appendString(nil, 1, m.Id) }

func (m *GetSessionRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeString(data)
			if err != nil {
				return 0, err
			}
			m.Id = v
			return n, nil
		}
		return 0, nil
	})
}

type ListSessionsRequest struct{}

func (m *ListSessionsRequest) MarshalWire() []byte          { return nil }
func (m *ListSessionsRequest) UnmarshalWire(_ []byte) error { return nil }

type ListSessionsResponse struct {
	Sessions []*Session
}

func (m *ListSessionsResponse) MarshalWire() []byte {
	var out []byte
	for _, s := range m.Sessions {
		out = appendMessage(out, 1, s)
	}
	return out
}

func (m *ListSessionsResponse) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, errParse
			}
			s := &Session{}
			if err := s.UnmarshalWire(v); err != nil {
				return 0, err
			}
			m.Sessions = append(m.Sessions, s)
			return n, nil
		}
		return 0, nil
	})
}

type UpdateSessionStatusRequest struct {
	Id     string
	Status string // "accepted" or "rejected"
}

func (m *UpdateSessionStatusRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.Status)
	return out
}

func (m *UpdateSessionStatusRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		v, n, err := consumeString(data)
		if err != nil {
			return 0, err
		}
		switch num {
		case 1:
			m.Id = v
		case 2:
			m.Status = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type RequestSessionEditRequest struct {
	Id      string
	NewDate string
	NewTime string
}

func (m *RequestSessionEditRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.NewDate)
	out = appendString(out, 3, m.NewTime)
	return out
}

func (m *RequestSessionEditRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		v, n, err := consumeString(data)
		if err != nil {
			return 0, err
		}
		switch num {
		case 1:
			m.Id = v
		case 2:
			m.NewDate = v
		case 3:
			m.NewTime = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type DecideSessionEditRequest struct {
	Id       string
	Decision string // "accept" or "reject"
}

func (m *DecideSessionEditRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.Decision)
	return out
}

func (m *DecideSessionEditRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		v, n, err := consumeString(data)
		if err != nil {
			return 0, err
		}
		switch num {
		case 1:
			m.Id = v
		case 2:
			m.Decision = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type CheckJoinRequest struct {
	Id string
}

func (m *CheckJoinRequest) MarshalWire() []byte { return appendString(nil, 1, m.Id) }

func (m *CheckJoinRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeString(data)
			if err != nil {
				return 0, err
			}
			m.Id = v
			return n, nil
		}
		return 0, nil
	})
}

type CheckJoinResponse struct {
	Eligible bool
	Expired  bool
	Status   string
}

func (m *CheckJoinResponse) MarshalWire() []byte {
	var out []byte
	out = appendBool(out, 1, m.Eligible)
	out = appendBool(out, 2, m.Expired)
	out = appendString(out, 3, m.Status)
	return out
}

func (m *CheckJoinResponse) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		switch {
		case (num == 1 || num == 2) && typ == protowire.VarintType:
			v, n, err := consumeBool(data)
			if err != nil {
				return 0, err
			}
			if num == 1 {
				m.Eligible = v
			} else {
				m.Expired = v
			}
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n, err := consumeString(data)
			if err != nil {
				return 0, err
			}
			m.Status = v
			return n, nil
		}
		return 0, nil
	})
}
