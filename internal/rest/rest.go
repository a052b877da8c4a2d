// Package rest serves the booking operations as JSON over HTTP. Every route
// calls the same handler methods the gRPC server registers.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "teacher-booking-api/api/booking/v1"
	"teacher-booking-api/internal/auth"
	"teacher-booking-api/internal/handler"
	"teacher-booking-api/internal/middleware"
)

const maxBody = 1 << 16

type Server struct {
	h      *handler.Handler
	gate   *auth.Gate
	rl     *middleware.RateLimiter
	logger *zap.Logger
}

// New builds the gateway. rl may be nil to disable limiting on the account
// routes.
func New(h *handler.Handler, gate *auth.Gate, rl *middleware.RateLimiter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{h: h, gate: gate, rl: rl, logger: logger}
}

func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", s.home).Methods("GET")
	router.HandleFunc("/teachers", s.listTeachers).Methods("GET")
	router.HandleFunc("/teachers/{teacherName}/free-slots", s.freeSlots).Methods("GET")
	router.HandleFunc("/appointments", s.listAppointments).Methods("GET")
	router.HandleFunc("/appointments", s.bookAppointment).Methods("POST")
	router.HandleFunc("/appointments/{id}", s.cancelAppointment).Methods("DELETE")
	router.HandleFunc("/student/signup", s.limited(s.signup)).Methods("POST")
	router.HandleFunc("/login", s.limited(s.login)).Methods("POST")
}

// Handler returns the routed gateway wrapped with CORS and panic recovery.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	s.RegisterRoutes(router)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger}))(cors(router))
}

type teacherJSON struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Subject        string   `json:"subject"`
	AvailableTimes []string `json:"availableTimes"`
}

type appointmentJSON struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	TeacherName string `json:"teacherName"`
	Time        string `json:"time"`
}

type userJSON struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	TeacherName string `json:"teacherName,omitempty"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Teacher Appointment API", "status": "Running"})
}

func (s *Server) listTeachers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.h.ListTeachers(r.Context(), &pb.ListTeachersRequest{})
	if err != nil {
		writeStatus(w, err)
		return
	}
	out := make([]teacherJSON, len(resp.Teachers))
	for i, t := range resp.Teachers {
		out[i] = teacherJSON{ID: t.Id, Name: t.Name, Subject: t.Subject, AvailableTimes: nonNil(t.AvailableTimes)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) freeSlots(w http.ResponseWriter, r *http.Request) {
	resp, err := s.h.FreeSlots(r.Context(), &pb.FreeSlotsRequest{TeacherName: mux.Vars(r)["teacherName"]})
	if err != nil {
		writeStatus(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(resp.Slots))
}

func (s *Server) listAppointments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.h.ListAppointments(r.Context(), &pb.ListAppointmentsRequest{})
	if err != nil {
		writeStatus(w, err)
		return
	}
	out := make([]appointmentJSON, len(resp.Appointments))
	for i, a := range resp.Appointments {
		out[i] = appointmentFromProto(a)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) bookAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentName string `json:"studentName"`
		TeacherName string `json:"teacherName"`
		Time        string `json:"time"`
	}
	if !decode(w, r, &req) {
		return
	}
	resp, err := s.h.BookAppointment(r.Context(), &pb.BookAppointmentRequest{
		StudentName: req.StudentName, TeacherName: req.TeacherName, Slot: req.Time,
	})
	if err != nil {
		writeStatus(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Appointment booked successfully!",
		"appointment": appointmentFromProto(resp.Appointment),
	})
}

func (s *Server) cancelAppointment(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if header == "" {
		writeMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}
	id, err := s.gate.Authenticate(header)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	ctx := middleware.WithIdentity(r.Context(), id)
	if _, err := s.h.CancelAppointment(ctx, &pb.CancelAppointmentRequest{Id: mux.Vars(r)["id"]}); err != nil {
		writeStatus(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Appointment cancelled successfully")
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !decode(w, r, &req) {
		return
	}
	resp, err := s.h.Signup(r.Context(), &pb.SignupRequest{Username: req.Username, Password: req.Password})
	if err != nil {
		writeStatus(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Student registered successfully!",
		"token":   resp.Token,
		"user":    userJSON{Username: resp.Username, Role: resp.Role},
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !decode(w, r, &req) {
		return
	}
	resp, err := s.h.Login(r.Context(), &pb.LoginRequest{Username: req.Username, Password: req.Password})
	if err != nil {
		writeStatus(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful!",
		"token":   resp.Token,
		"user":    userJSON{Username: resp.Username, Role: resp.Role, TeacherName: resp.TeacherName},
	})
}

// limited applies the account rate limit keyed by client host.
func (s *Server) limited(next http.HandlerFunc) http.HandlerFunc {
	if s.rl == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rl.Allow(middleware.HostKey(r.RemoteAddr)) {
			writeMessage(w, http.StatusTooManyRequests, "too many requests, slow down")
			return
		}
		next(w, r)
	}
}

func appointmentFromProto(a *pb.Appointment) appointmentJSON {
	return appointmentJSON{ID: a.Id, StudentName: a.StudentName, TeacherName: a.TeacherName, Time: a.Slot}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// httpStatus maps a grpc code to the HTTP status the routes answer with.
func httpStatus(c codes.Code) int {
	switch c {
	case codes.InvalidArgument, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func writeStatus(w http.ResponseWriter, err error) {
	st, _ := status.FromError(err)
	writeMessage(w, httpStatus(st.Code()), st.Message())
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type recoveryLogger struct{ l *zap.Logger }

func (r recoveryLogger) Println(v ...any) {
	r.l.Error("rest panic", zap.Any("recovered", v))
}
