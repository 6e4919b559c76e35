package devapi

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/fletes/internal/client/api"
	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/common"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

const dateLayout = "2006-01-02"

type Server struct {
	store    *Store
	secret   []byte
	validity time.Duration
	logger   logging.Logger
	now      func() time.Time
}

type Option func(*Server)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func NewServer(store *Store, secretKey string, validity time.Duration, logger logging.Logger, opts ...Option) *Server {
	s := &Server{
		store:    store,
		secret:   []byte(secretKey),
		validity: validity,
		logger:   logger.With("module", "devapi"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router wires every route of the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/Auth/Login", s.login)
	r.Post("/api/Auth/Logout", s.logout)

	r.Get("/api/GeneralLists/GetFletes", s.listFletes)
	r.Get("/api/GeneralLists/GetSuppliers", s.listSuppliers)
	r.Get("/api/GeneralLists/GetDestination", s.listDestinations)

	r.Get("/api/Fletes/GeMonthsWithData", s.months)
	r.Get("/api/Fletes/GetFletesById{id:[0-9]+}", s.getFlete)
	r.Post("/api/Fletes/GenerateMonthlyReport", s.monthlyReport)
	r.Post("/api/Fletes/GenerateReportByDateRange", s.rangeReport)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Use(requireRole(common.AdminRole))

		r.Post("/api/Fletes/Create", s.createFlete)
		r.Put("/api/Fletes/Update/{id:[0-9]+}", s.updateFlete)
		r.Delete("/api/Fletes/Delete/{id:[0-9]+}", s.deleteFlete)
	})

	return r
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	u, ok := s.store.Authenticate(req.PayRollNumber, req.Password)
	if !ok {
		s.logger.Info(r.Context(), "login rejected", "payroll", req.PayRollNumber)
		writeJSON(w, http.StatusUnauthorized, models.LoginResponse{Success: ptr(false), Message: "Credenciales incorrectas"})
		return
	}

	token, err := GenerateToken(u, s.secret, s.validity, s.now())
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Success:      ptr(true),
		AccessToken:  token,
		RefreshToken: s.store.IssueRefreshToken(u.ID),
	})
}

// logout revokes the caller's refresh tokens when it presents a valid
// token; it always answers 200.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if claims, err := s.claimsFrom(r); err == nil {
		if id, err := strconv.Atoi(claims.Subject); err == nil {
			n := s.store.RevokeRefreshTokens(id)
			s.logger.Info(r.Context(), "logged out", "user", id, "revoked", n)
		}
	}
	writeJSON(w, http.StatusOK, models.LogoutResponse{Message: "Sesión cerrada"})
}

func (s *Server) listFletes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) listSuppliers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Suppliers())
}

func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Destinations())
}

func (s *Server) months(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Months())
}

func (s *Server) getFlete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	f, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Flete no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) createFlete(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeFlete(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if in.RegisteredAt.IsZero() {
		in.RegisteredAt = s.now()
	}
	id, ok := s.store.Create(in)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.MutationResponse{Success: ptr(false), Message: "Proveedor o ruta inválidos"})
		return
	}
	s.logger.Info(r.Context(), "flete created", "id", id)
	writeJSON(w, http.StatusOK, models.MutationResponse{Success: ptr(true), Message: "Flete creado", ID: id})
}

func (s *Server) updateFlete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	in, err := s.decodeFlete(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, ok := s.store.Update(id, in)
	switch {
	case !found:
		writeError(w, http.StatusNotFound, "Flete no encontrado")
	case !ok:
		writeJSON(w, http.StatusBadRequest, models.MutationResponse{Success: ptr(false), Message: "Proveedor o ruta inválidos"})
	default:
		s.logger.Info(r.Context(), "flete updated", "id", id)
		writeJSON(w, http.StatusOK, models.MutationResponse{Success: ptr(true), Message: "Flete actualizado", ID: id})
	}
}

func (s *Server) deleteFlete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, "Flete no encontrado")
		return
	}
	s.logger.Info(r.Context(), "flete deleted", "id", id)
	writeJSON(w, http.StatusOK, models.MutationResponse{Success: ptr(true), Message: "Flete eliminado", ID: id})
}

func (s *Server) decodeFlete(r *http.Request) (FleteInput, error) {
	var req models.FleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return FleteInput{}, errors.New("Solicitud inválida")
	}

	in := FleteInput{
		SupplierID:    req.IDSupplier,
		DestinationID: req.IDDestination,
		Highway:       req.HighwayExpenseCost,
		Stay:          req.CostOfStay,
	}
	if req.RegistrationDate.IsSpecified() && !req.RegistrationDate.IsNull() {
		raw, _ := req.RegistrationDate.Get()
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return FleteInput{}, errors.New("Fecha de registro inválida")
		}
		in.RegisteredAt = d
	}
	if in.Highway < 0 || in.Stay < 0 {
		return FleteInput{}, errors.New("Los costos no pueden ser negativos")
	}
	return in, nil
}

func (s *Server) monthlyReport(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Month < 1 || req.Month > 12 {
		writeError(w, http.StatusBadRequest, "Mes inválido")
		return
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	s.writeReport(w, r, s.store.Between(from, to), api.MonthlyReportFilename(req.Year, req.Month))
}

func (s *Server) rangeReport(w http.ResponseWriter, r *http.Request) {
	var req models.RangeReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	from, err1 := time.Parse(dateLayout, req.StartDate)
	to, err2 := time.Parse(dateLayout, req.EndDate)
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "Formato de fecha inválido")
		return
	}
	if from.After(to) {
		writeError(w, http.StatusBadRequest, "La fecha inicial no puede ser mayor que la final")
		return
	}
	s.writeReport(w, r, s.store.Between(from, to), api.RangeReportFilename(req.StartDate, req.EndDate))
}

// writeReport streams rows as CSV under an .xlsx attachment name.
func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, rows []models.Flete, filename string) {
	if len(rows) == 0 {
		writeError(w, http.StatusNotFound, "No hay fletes en el periodo")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Id", "Proveedor", "Destino", "Fecha", "Gastos de autopista", "Estadía", "Costo individual"})
	for _, f := range rows {
		_ = cw.Write([]string{
			strconv.Itoa(f.ID),
			f.Supplier,
			f.Destination,
			f.RegistrationDate,
			strconv.FormatFloat(f.HighwayExpenseCost, 'f', 2, 64),
			strconv.FormatFloat(f.CostOfStay, 'f', 2, 64),
			strconv.FormatFloat(f.IndividualCost, 'f', 2, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.logger.Error(r.Context(), "report write failed", "error", err)
	}
}

type ctxKey string

const claimsKey ctxKey = "claims"

func (s *Server) claimsFrom(r *http.Request) (*Claims, error) {
	authz := r.Header.Get(common.AuthorizationHeaderName)
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return nil, ErrInvalidToken
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
	if raw == "" {
		return nil, ErrInvalidToken
	}
	return ParseToken(raw, s.secret)
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.claimsFrom(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "No autorizado")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// requireRole answers 401 unless the authenticated caller has role.
func requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := r.Context().Value(claimsKey).(*Claims)
			if claims == nil || claims.Role != role {
				writeError(w, http.StatusUnauthorized, "No autorizado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", r.Header.Get(common.RequestIDHeaderName),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func ptr[T any](v T) *T {
	return &v
}
