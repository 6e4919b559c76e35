package devapi

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/cryptox"
)

type User struct {
	ID            int
	PayrollNumber int
	Name          string
	Role          string
	salt          []byte
	hash          []byte
}

type flete struct {
	id            int
	supplierID    int
	destinationID int
	highway       float64
	stay          float64
	registeredAt  time.Time
}

// Store holds users, reference lists and fletes in memory.
type Store struct {
	mu            sync.RWMutex
	users         map[int]*User
	suppliers     []models.Supplier
	destinations  []models.Destination
	fletes        map[int]*flete
	nextID        int
	refreshTokens map[string]int
}

func NewStore() *Store {
	return &Store{
		users:         map[int]*User{},
		fletes:        map[int]*flete{},
		nextID:        1,
		refreshTokens: map[string]int{},
	}
}

// AddUser registers a user that can log in with payroll and password.
func (s *Store) AddUser(payroll int, password, name, role string) (*User, error) {
	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := &User{
		ID:            len(s.users) + 1,
		PayrollNumber: payroll,
		Name:          name,
		Role:          role,
		salt:          salt,
		hash:          cryptox.HashPassword([]byte(password), salt),
	}
	s.users[payroll] = u
	return u, nil
}

// Authenticate returns the user when payroll and password match.
func (s *Store) Authenticate(payroll int, password string) (*User, bool) {
	s.mu.RLock()
	u, ok := s.users[payroll]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !cryptox.VerifyPassword([]byte(password), u.salt, u.hash) {
		return nil, false
	}
	return u, true
}

// IssueRefreshToken records an opaque refresh token for the user.
func (s *Store) IssueRefreshToken(userID int) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.refreshTokens[token] = userID
	s.mu.Unlock()
	return token
}

// RevokeRefreshTokens drops every refresh token of the user and returns how
// many there were.
func (s *Store) RevokeRefreshTokens(userID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for tok, id := range s.refreshTokens {
		if id == userID {
			delete(s.refreshTokens, tok)
			n++
		}
	}
	return n
}

func (s *Store) SetSuppliers(list []models.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append([]models.Supplier(nil), list...)
}

func (s *Store) SetDestinations(list []models.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations = append([]models.Destination(nil), list...)
}

func (s *Store) Suppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Supplier{}, s.suppliers...)
}

func (s *Store) Destinations() []models.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Destination{}, s.destinations...)
}

// FleteInput is what create and update accept.
type FleteInput struct {
	SupplierID    int
	DestinationID int
	Highway       float64
	Stay          float64
	RegisteredAt  time.Time
}

// Create stores a new flete and returns its id. ok is false when the
// supplier or destination does not exist.
func (s *Store) Create(in FleteInput) (id int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.validRefs(in) {
		return 0, false
	}
	id = s.nextID
	s.nextID++
	s.fletes[id] = newFlete(id, in)
	return id, true
}

// Update replaces the flete. A zero RegisteredAt keeps the stored date.
// found is false for an unknown id; ok is false for unknown references.
func (s *Store) Update(id int, in FleteInput) (found, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, exists := s.fletes[id]
	if !exists {
		return false, false
	}
	if !s.validRefs(in) {
		return true, false
	}
	if in.RegisteredAt.IsZero() {
		in.RegisteredAt = old.registeredAt
	}
	s.fletes[id] = newFlete(id, in)
	return true, true
}

func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fletes[id]; !ok {
		return false
	}
	delete(s.fletes, id)
	return true
}

func (s *Store) Get(id int) (models.Flete, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.fletes[id]
	if !ok {
		return models.Flete{}, false
	}
	return s.render(f), true
}

// List returns every flete, newest first.
func (s *Store) List() []models.Flete {
	return s.Between(time.Time{}, time.Time{})
}

// Between returns fletes registered in [from, to] (dates, inclusive), newest
// first. Zero bounds are open.
func (s *Store) Between(from, to time.Time) []models.Flete {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*flete, 0, len(s.fletes))
	for _, f := range s.fletes {
		day := truncateDay(f.registeredAt)
		if !from.IsZero() && day.Before(truncateDay(from)) {
			continue
		}
		if !to.IsZero() && day.After(truncateDay(to)) {
			continue
		}
		rows = append(rows, f)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].registeredAt.Equal(rows[j].registeredAt) {
			return rows[i].registeredAt.After(rows[j].registeredAt)
		}
		return rows[i].id > rows[j].id
	})

	out := make([]models.Flete, 0, len(rows))
	for _, f := range rows {
		out = append(out, s.render(f))
	}
	return out
}

// Months lists the months that have fletes, newest first.
func (s *Store) Months() []models.MonthSummary {
	s.mu.RLock()
	seen := map[string]models.MonthSummary{}
	for _, f := range s.fletes {
		y, m := f.registeredAt.Year(), int(f.registeredAt.Month())
		seen[models.MonthKey(y, m)] = models.MonthSummary{Year: y, Month: m, Description: monthDescription(y, m)}
	}
	s.mu.RUnlock()

	out := make([]models.MonthSummary, 0, len(seen))
	for _, m := range seen {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out
}

func (s *Store) validRefs(in FleteInput) bool {
	return s.supplier(in.SupplierID) != nil && s.destination(in.DestinationID) != nil
}

func (s *Store) supplier(id int) *models.Supplier {
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			return &s.suppliers[i]
		}
	}
	return nil
}

func (s *Store) destination(id int) *models.Destination {
	for i := range s.destinations {
		if s.destinations[i].ID == id {
			return &s.destinations[i]
		}
	}
	return nil
}

// render joins a flete with its reference rows. The individual cost is the
// route cost plus both extra costs.
func (s *Store) render(f *flete) models.Flete {
	out := models.Flete{
		ID:                 f.id,
		HighwayExpenseCost: f.highway,
		CostOfStay:         f.stay,
		Date:               f.registeredAt.Format("2006-01-02"),
		RegistrationDate:   f.registeredAt.Format("02/01/2006"),
		IDSupplier:         f.supplierID,
		IDDestination:      f.destinationID,
	}
	if sup := s.supplier(f.supplierID); sup != nil {
		out.Supplier = sup.Name
	}
	if d := s.destination(f.destinationID); d != nil {
		out.Destination = d.Name
		out.IndividualCost = d.Cost
	}
	out.IndividualCost += f.highway + f.stay
	return out
}

func newFlete(id int, in FleteInput) *flete {
	return &flete{
		id:            id,
		supplierID:    in.SupplierID,
		destinationID: in.DestinationID,
		highway:       in.Highway,
		stay:          in.Stay,
		registeredAt:  in.RegisteredAt,
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
