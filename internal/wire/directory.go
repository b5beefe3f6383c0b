package wire

import "google.golang.org/protobuf/encoding/protowire"

type Doctor struct {
	Id             string
	Name           string
	Specialization string
	Email          string
}

func (m *Doctor) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.Name)
	out = appendString(out, 3, m.Specialization)
	out = appendString(out, 4, m.Email)
	return out
}

func (m *Doctor) UnmarshalWire(data []byte) error {
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
			m.Name = v
		case 3:
			m.Specialization = v
		case 4:
			m.Email = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type ListDoctorsRequest struct{}

func (m *ListDoctorsRequest) MarshalWire() []byte          { return nil }
func (m *ListDoctorsRequest) UnmarshalWire(_ []byte) error { return nil }

type ListDoctorsResponse struct {
	Doctors []*Doctor
}

func (m *ListDoctorsResponse) MarshalWire() []byte {
	var out []byte
	for _, d := range m.Doctors {
		out = appendMessage(out, 1, d)
	}
	return out
}

func (m *ListDoctorsResponse) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, errParse
			}
			d := &Doctor{}
			if err := d.UnmarshalWire(v); err != nil {
				return 0, err
			}
			m.Doctors = append(m.Doctors, d)
			return n, nil
		}
		return 0, nil
	})
}

type Patient struct {
	Id    string
	Name  string
	Email string
}

func (m *Patient) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.Name)
	out = appendString(out, 3, m.Email)
	return out
}

func (m *Patient) UnmarshalWire(data []byte) error {
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
			m.Name = v
		case 3:
			m.Email = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type ListPatientsRequest struct{}

func (m *ListPatientsRequest) MarshalWire() []byte          { return nil }
func (m *ListPatientsRequest) UnmarshalWire(_ []byte) error { return nil }

type ListPatientsResponse struct {
	Patients []*Patient
}

func (m *ListPatientsResponse) MarshalWire() []byte {
	var out []byte
	for _, p := range m.Patients {
		out = appendMessage(out, 1, p)
	}
	return out
}

func (m *ListPatientsResponse) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, errParse
			}
			p := &Patient{}
			if err := p.UnmarshalWire(v); err != nil {
				return 0, err
			}
			m.Patients = append(m.Patients, p)
			return n, nil
		}
		return 0, nil
	})
}

type RequestAssignmentRequest struct {
	DoctorId string
}

func (m *RequestAssignmentRequest) MarshalWire() []byte {
	return appendString(nil, 1, m.DoctorId)
}

func (m *RequestAssignmentRequest) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeString(data)
			if err != nil {
				return 0, err
			}
			m.DoctorId = v
			return n, nil
		}
		return 0, nil
	})
}

type RequestAssignmentResponse struct {
	RequestId string
}

func (m *RequestAssignmentResponse) MarshalWire() []byte {
	return appendString(nil, 1, m.RequestId)
}

func (m *RequestAssignmentResponse) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n, err := consumeString(data)
			if err != nil {
				return 0, err
			}
			m.RequestId = v
			return n, nil
		}
		return 0, nil
	})
}

type AssignmentRequest struct {
	Id           string
	PatientId    string
	PatientName  string
	PatientEmail string
}

func (m *AssignmentRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.Id)
	out = appendString(out, 2, m.PatientId)
	out = appendString(out, 3, m.PatientName)
	out = appendString(out, 4, m.PatientEmail)
	return out
}

func (m *AssignmentRequest) UnmarshalWire(data []byte) error {
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
			m.PatientId = v
		case 3:
			m.PatientName = v
		case 4:
			m.PatientEmail = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type ListAssignmentRequestsRequest struct{}

func (m *ListAssignmentRequestsRequest) MarshalWire() []byte          { return nil }
func (m *ListAssignmentRequestsRequest) UnmarshalWire(_ []byte) error { return nil }

type ListAssignmentRequestsResponse struct {
	Requests []*AssignmentRequest
}

func (m *ListAssignmentRequestsResponse) MarshalWire() []byte {
	var out []byte
	for _, r := range m.Requests {
		out = appendMessage(out, 1, r)
	}
	return out
}

func (m *ListAssignmentRequestsResponse) UnmarshalWire(data []byte) error {
	return walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return 0, errParse
			}
			r := &AssignmentRequest{}
			if err := r.UnmarshalWire(v); err != nil {
				return 0, err
			}
			m.Requests = append(m.Requests, r)
			return n, nil
		}
		return 0, nil
	})
}

type DecideAssignmentRequest struct {
	RequestId string
	Decision  string // "approve" or "reject"
}

func (m *DecideAssignmentRequest) MarshalWire() []byte {
	var out []byte
	out = appendString(out, 1, m.RequestId)
	out = appendString(out, 2, m.Decision)
	return out
}

func (m *DecideAssignmentRequest) UnmarshalWire(data []byte) error {
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
			m.RequestId = v
		case 2:
			m.Decision = v
		default:
			return 0, nil
		}
		return n, nil
	})
}

type DecideAssignmentResponse struct{}

func (m *DecideAssignmentResponse) MarshalWire() []byte          { return nil }
func (m *DecideAssignmentResponse) UnmarshalWire(_ []byte) error { return nil }
