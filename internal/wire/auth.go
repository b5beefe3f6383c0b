package wire

import "google.golang.org/protobuf/encoding/protowire"

type RegisterRequest struct {
	Role           string
	Name           string
	Email          string
	Password       string
	Specialization string
}

func (m *RegisterRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Role)
	out = appendString(out, 2, m.Name)
	out = appendString(out, 3, m.Email)
	out = appendString(out, 4, m.Password)
	out = appendString(out, 5, m.Specialization)
	return out
}

func (m *RegisterRequest) UnmarshalWire(data []byte) error {
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
			m.Role = v
		case 2:
			m.Name = v
		case 3:
			m.Email = v
		case 4:
			m.Password = v
		case 5:
			m.Specialization = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type RegisterResponse struct {
	UserId       string
	Token        string
	RefreshToken string
}

func (m *RegisterResponse) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.UserId)
	out = appendString(out, 2, m.Token)
	out = appendString(out, 3, m.RefreshToken)
	return out
}

func (m *RegisterResponse) UnmarshalWire(data []byte) error {
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
			m.UserId = v
		case 2:
			m.Token = v
		case 3:
			m.RefreshToken = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type LoginRequest struct {
	Email    string
	Password string
}

func (m *LoginRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Email)
	out = appendString(out, 2, m.Password)
	return out
}

func (m *LoginRequest) UnmarshalWire(data []byte) error {
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
			m.Email = v
		case 2:
			m.Password = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type LoginResponse struct {
	Token        string
	RefreshToken string
	UserId       string
	Name         string
	Role         string
}

func (m *LoginResponse) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Token)
	out = appendString(out, 2, m.RefreshToken)
	out = appendString(out, 3, m.UserId)
	out = appendString(out, 4, m.Name)
	out = appendString(out, 5, m.Role)
	return out
}

func (m *LoginResponse) UnmarshalWire(data []byte) error {
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
			m.Token = v
		case 2:
			m.RefreshToken = v
		case 3:
			m.UserId = v
		case 4:
			m.Name = v
		case 5:
			m.Role = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type RefreshRequest struct {
	RefreshToken string
}

func (m *RefreshRequest) MarshalWire() []byte {
	return appendString(nil, 1, m.RefreshToken)
}

func (m *RefreshRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeString(data)
			if err != nil {
				return 0, err
			}
			m.RefreshToken = v
			return n, nil
		}
		return 0, nil
	})
}

type RefreshResponse struct {
	Token        string
	RefreshToken string
}

func (m *RefreshResponse) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Token)
	out = appendString(out, 2, m.RefreshToken)
	return out
}

func (m *RefreshResponse) UnmarshalWire(data []byte) error {
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
			m.Token = v
		case 2:
			m.RefreshToken = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type LogoutRequest struct{}

func (m *LogoutRequest) MarshalWire() []byte          { return nil }
func (m *LogoutRequest) UnmarshalWire(_ []byte) error { return nil }

type LogoutResponse struct{}

func (m *LogoutResponse) MarshalWire() []byte          { return nil }
func (m *LogoutResponse) UnmarshalWire(_ []byte) error { return nil }
