package bookingv1

import "google.golang.org/protobuf/encoding/protowire"

type Teacher struct {
	Id             string
	Name           string
	Subject        string
	AvailableTimes []string
}

func (m *Teacher) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Subject)
	return appendStrings(b, 4, m.AvailableTimes)
}

func (m *Teacher) UnmarshalWire(b []byte) error {
	*m = Teacher{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Name)
		case 3:
			return consumeString(typ, b, &m.Subject)
		case 4:
			return consumeStrings(typ, b, &m.AvailableTimes)
		}
		return 0, nil
	})
}

type Appointment struct {
	Id          string
	StudentName string
	TeacherName string
	Slot        string
}

func (m *Appointment) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.StudentName)
	b = appendString(b, 3, m.TeacherName)
	return appendString(b, 4, m.Slot)
}

func (m *Appointment) UnmarshalWire(b []byte) error {
	*m = Appointment{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.StudentName)
		case 3:
			return consumeString(typ, b, &m.TeacherName)
		case 4:
			return consumeString(typ, b, &m.Slot)
		}
		return 0, nil
	})
}

type ListTeachersRequest struct{}

func (m *ListTeachersRequest) AppendWire(b []byte) []byte { return b }

func (m *ListTeachersRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type ListTeachersResponse struct {
	Teachers []*Teacher
}

func (m *ListTeachersResponse) AppendWire(b []byte) []byte {
	for _, t := range m.Teachers {
		b = appendMessage(b, 1, t)
	}
	return b
}

func (m *ListTeachersResponse) UnmarshalWire(b []byte) error {
	*m = ListTeachersResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		t := &Teacher{}
		n, err := consumeMessage(typ, b, t)
		if n > 0 && err == nil {
			m.Teachers = append(m.Teachers, t)
		}
		return n, err
	})
}

type FreeSlotsRequest struct {
	TeacherName string
}

func (m *FreeSlotsRequest) AppendWire(b []byte) []byte { return appendString(b, 1, m.TeacherName) }

func (m *FreeSlotsRequest) UnmarshalWire(b []byte) error {
	*m = FreeSlotsRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.TeacherName)
		}
		return 0, nil
	})
}

type FreeSlotsResponse struct {
	Slots []string
}

func (m *FreeSlotsResponse) AppendWire(b []byte) []byte { return appendStrings(b, 1, m.Slots) }

func (m *FreeSlotsResponse) UnmarshalWire(b []byte) error {
	*m = FreeSlotsResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeStrings(typ, b, &m.Slots)
		}
		return 0, nil
	})
}

type ListAppointmentsRequest struct{}

func (m *ListAppointmentsRequest) AppendWire(b []byte) []byte { return b }

func (m *ListAppointmentsRequest) UnmarshalWire(b []byte) error {
	return decode(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type ListAppointmentsResponse struct {
	Appointments []*Appointment
}

func (m *ListAppointmentsResponse) AppendWire(b []byte) []byte {
	for _, a := range m.Appointments {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ListAppointmentsResponse) UnmarshalWire(b []byte) error {
	*m = ListAppointmentsResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		a := &Appointment{}
		n, err := consumeMessage(typ, b, a)
		if n > 0 && err == nil {
			m.Appointments = append(m.Appointments, a)
		}
		return n, err
	})
}

type BookAppointmentRequest struct {
	StudentName string
	TeacherName string
	Slot        string
}

func (m *BookAppointmentRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.StudentName)
	b = appendString(b, 2, m.TeacherName)
	return appendString(b, 3, m.Slot)
}

func (m *BookAppointmentRequest) UnmarshalWire(b []byte) error {
	*m = BookAppointmentRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.StudentName)
		case 2:
			return consumeString(typ, b, &m.TeacherName)
		case 3:
			return consumeString(typ, b, &m.Slot)
		}
		return 0, nil
	})
}

type BookAppointmentResponse struct {
	Appointment *Appointment
}

func (m *BookAppointmentResponse) AppendWire(b []byte) []byte {
	if m.Appointment == nil {
		return b
	}
	return appendMessage(b, 1, m.Appointment)
}

func (m *BookAppointmentResponse) UnmarshalWire(b []byte) error {
	*m = BookAppointmentResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		m.Appointment = &Appointment{}
		return consumeMessage(typ, b, m.Appointment)
	})
}

type CancelAppointmentRequest struct {
	Id string
}

func (m *CancelAppointmentRequest) AppendWire(b []byte) []byte { return appendString(b, 1, m.Id) }

func (m *CancelAppointmentRequest) UnmarshalWire(b []byte) error {
	*m = CancelAppointmentRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Id)
		}
		return 0, nil
	})
}

type CancelAppointmentResponse struct{}

func (m *CancelAppointmentResponse) AppendWire(b []byte) []byte { return b }

func (m *CancelAppointmentResponse) UnmarshalWire(b []byte) error {
	return decode(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

type SignupRequest struct {
	Username string
	Password string
}

func (m *SignupRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	return appendString(b, 2, m.Password)
}

func (m *SignupRequest) UnmarshalWire(b []byte) error {
	*m = SignupRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Username)
		case 2:
			return consumeString(typ, b, &m.Password)
		}
		return 0, nil
	})
}

type SignupResponse struct {
	Token    string
	Username string
	Role     string
}

func (m *SignupResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Token)
	b = appendString(b, 2, m.Username)
	return appendString(b, 3, m.Role)
}

func (m *SignupResponse) UnmarshalWire(b []byte) error {
	*m = SignupResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Token)
		case 2:
			return consumeString(typ, b, &m.Username)
		case 3:
			return consumeString(typ, b, &m.Role)
		}
		return 0, nil
	})
}

type LoginRequest struct {
	Username string
	Password string
}

func (m *LoginRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	*m = LoginRequest{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Username)
		case 2:
			return consumeString(typ, b, &m.Password)
		}
		return 0, nil
	})
}

type LoginResponse struct {
	Token       string
	Username    string
	Role        string
	TeacherName string
}

func (m *LoginResponse) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Token)
	b = appendString(b, 2, m.Username)
	b = appendString(b, 3, m.Role)
	return appendString(b, 4, m.TeacherName)
}

func (m *LoginResponse) UnmarshalWire(b []byte) error {
	*m = LoginResponse{}
	return decode(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Token)
		case 2:
			return consumeString(typ, b, &m.Username)
		case 3:
			return consumeString(typ, b, &m.Role)
		case 4:
			return consumeString(typ, b, &m.TeacherName)
		}
		return 0, nil
	})
}
