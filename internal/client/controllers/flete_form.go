package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

// DefaultSuccessDelay is how long the success message stays up before
// OnSuccess runs.
const DefaultSuccessDelay = 500 * time.Millisecond

const dateLayout = "2006-01-02"

type ReferenceLister interface {
	Suppliers(ctx context.Context) ([]models.Supplier, error)
	Destinations(ctx context.Context) ([]models.Destination, error)
}

type FleteSaver interface {
	Create(ctx context.Context, req models.FleteRequest) (*models.MutationResponse, error)
	Update(ctx context.Context, id int, req models.FleteRequest) (*models.MutationResponse, error)
}

type FormOptions struct {
	// NoCostSuppliers never carry highway or stay costs.
	NoCostSuppliers []string
	SuccessDelay    time.Duration
	// AfterFunc schedules f after d. Defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func())
	OnSuccess func()
	OnCancel  func()
}

// FleteForm creates a flete, or updates one bound with Edit.
type FleteForm struct {
	lists  ReferenceLister
	saver  FleteSaver
	logger logging.Logger
	opts   FormOptions

	mu           sync.Mutex
	suppliers    []models.Supplier
	destinations []models.Destination

	editingID        int
	supplierID       int
	destinationID    int
	highwayExpense   float64
	costOfStay       float64
	registrationDate string
	tripNumber       int

	errMsg     string
	successMsg string
	saving     bool
}

func NewFleteForm(lists ReferenceLister, saver FleteSaver, logger logging.Logger, opts FormOptions) *FleteForm {
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if opts.SuccessDelay <= 0 {
		opts.SuccessDelay = DefaultSuccessDelay
	}
	return &FleteForm{
		lists:        lists,
		saver:        saver,
		logger:       logger.With("component", "flete_form"),
		opts:         opts,
		suppliers:    []models.Supplier{},
		destinations: []models.Destination{},
	}
}

// Load fetches suppliers and destinations. If either call fails both lists
// are left empty.
func (f *FleteForm) Load(ctx context.Context) {
	suppliers, err := f.lists.Suppliers(ctx)
	var destinations []models.Destination
	if err == nil {
		destinations, err = f.lists.Destinations(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.logger.Error(ctx, "failed to load reference lists", "error", err)
		f.suppliers = []models.Supplier{}
		f.destinations = []models.Destination{}
		return
	}
	f.suppliers = suppliers
	f.destinations = destinations
}

func (f *FleteForm) Suppliers() []models.Supplier {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Supplier(nil), f.suppliers...)
}

func (f *FleteForm) Destinations() []models.Destination {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Destination(nil), f.destinations...)
}

// Edit binds fl to the form. Supplier and destination are matched by name
// because the list rows carry names only; an unmatched name leaves the
// selection empty.
func (f *FleteForm) Edit(ctx context.Context, fl models.Flete) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.editingID = fl.ID
	f.supplierID = supplierIDByName(f.suppliers, fl.Supplier)
	f.destinationID = destinationIDByName(f.destinations, fl.Destination)
	f.highwayExpense = fl.HighwayExpenseCost
	f.costOfStay = fl.CostOfStay
	f.registrationDate = ""
	f.tripNumber = 0
	f.clearMessages()

	if f.supplierID == 0 && fl.Supplier != "" {
		f.logger.Warn(ctx, "supplier name not found in reference list", "id", fl.ID, "supplier", fl.Supplier)
	}
	if f.destinationID == 0 && fl.Destination != "" {
		f.logger.Warn(ctx, "destination name not found in reference list", "id", fl.ID, "destination", fl.Destination)
	}
	f.applyNoCost()
}

// EditingID is the id of the bound flete, 0 when creating.
func (f *FleteForm) EditingID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editingID
}

func (f *FleteForm) SelectSupplier(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != 0 && supplierByID(f.suppliers, id) == nil {
		return invalid(MsgUnknownSupplier)
	}
	f.supplierID = id
	f.clearMessages()
	f.applyNoCost()
	return nil
}

func (f *FleteForm) SelectDestination(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != 0 && destinationByID(f.destinations, id) == nil {
		return invalid(MsgUnknownDestination)
	}
	f.destinationID = id
	f.clearMessages()
	return nil
}

func (f *FleteForm) SetHighwayExpense(v float64) error {
	return f.setCost(&f.highwayExpense, v)
}

func (f *FleteForm) SetCostOfStay(v float64) error {
	return f.setCost(&f.costOfStay, v)
}

func (f *FleteForm) setCost(field *float64, v float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.costsLocked() {
		return ErrCostsLocked
	}
	if v < 0 {
		return invalid(MsgNegativeCost)
	}
	*field = v
	f.clearMessages()
	return nil
}

// SetRegistrationDate sets the optional date (YYYY-MM-DD); "" unsets it.
func (f *FleteForm) SetRegistrationDate(d string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d != "" {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return invalid(MsgBadDate)
		}
	}
	f.registrationDate = d
	f.clearMessages()
	return nil
}

// SetTripNumber sets the optional trip number; n <= 0 unsets it.
func (f *FleteForm) SetTripNumber(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tripNumber = max(n, 0)
	f.clearMessages()
}

// CostsLocked reports whether the selected supplier is a no-cost one.
func (f *FleteForm) CostsLocked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.costsLocked()
}

func (f *FleteForm) costsLocked() bool {
	s := supplierByID(f.suppliers, f.supplierID)
	if s == nil {
		return false
	}
	for _, name := range f.opts.NoCostSuppliers {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

func (f *FleteForm) applyNoCost() {
	if f.costsLocked() {
		f.highwayExpense = 0
		f.costOfStay = 0
	}
}

// PreviewCost is the destination's base cost plus the entered costs. The
// server computes the stored figure.
func (f *FleteForm) PreviewCost() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var base float64
	if d := destinationByID(f.destinations, f.destinationID); d != nil {
		base = d.Cost
	}
	return base + f.highwayExpense + f.costOfStay
}

// Payload is the body Submit would send.
func (f *FleteForm) Payload() models.FleteRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payload()
}

func (f *FleteForm) payload() models.FleteRequest {
	req := models.FleteRequest{
		IDSupplier:         f.supplierID,
		IDDestination:      f.destinationID,
		HighwayExpenseCost: f.highwayExpense,
		CostOfStay:         f.costOfStay,
	}
	if f.costsLocked() {
		req.HighwayExpenseCost = 0
		req.CostOfStay = 0
	}
	if f.registrationDate != "" {
		req.RegistrationDate = nullable.NewNullableWithValue(f.registrationDate)
	}
	if f.tripNumber > 0 {
		req.TripNumber = nullable.NewNullableWithValue(f.tripNumber)
	}
	return req
}

// Submit validates the form and creates or updates the flete. On success
// the form shows a confirmation, resets when creating, and schedules
// OnSuccess after SuccessDelay.
func (f *FleteForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.saving {
		f.mu.Unlock()
		return ErrBusy
	}
	f.clearMessages()
	if f.supplierID == 0 || f.destinationID == 0 {
		f.errMsg = MsgSelectSupplierAndRoute
		f.mu.Unlock()
		return invalid(MsgSelectSupplierAndRoute)
	}
	f.saving = true
	id := f.editingID
	req := f.payload()
	f.mu.Unlock()

	var (
		resp *models.MutationResponse
		err  error
	)
	if id != 0 {
		resp, err = f.saver.Update(ctx, id, req)
	} else {
		resp, err = f.saver.Create(ctx, req)
	}

	f.mu.Lock()
	f.saving = false
	if err != nil {
		f.logger.Error(ctx, "failed to save flete", "id", id, "error", err)
		f.errMsg = FriendlyError(err, MsgSaveFailed)
		f.mu.Unlock()
		return err
	}
	if !resp.Succeeded() {
		f.errMsg = MsgSaveFailed
		if resp != nil && resp.Message != "" {
			f.errMsg = "Error: " + resp.Message
		}
		f.mu.Unlock()
		return ErrRejected
	}

	if id != 0 {
		f.successMsg = MsgFleteUpdated
	} else {
		f.successMsg = MsgFleteSaved
		f.resetFields()
	}
	onSuccess := f.opts.OnSuccess
	f.mu.Unlock()

	f.logger.Info(ctx, "flete saved", "id", id, "created", id == 0)
	if onSuccess != nil {
		f.opts.AfterFunc(f.opts.SuccessDelay, onSuccess)
	}
	return nil
}

// Cancel abandons the form without submitting.
func (f *FleteForm) Cancel() {
	if f.opts.OnCancel != nil {
		f.opts.OnCancel()
	}
}

// Reset clears the selection, the costs and the bound flete.
func (f *FleteForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editingID = 0
	f.resetFields()
	f.clearMessages()
}

func (f *FleteForm) resetFields() {
	f.supplierID = 0
	f.destinationID = 0
	f.highwayExpense = 0
	f.costOfStay = 0
	f.registrationDate = ""
	f.tripNumber = 0
}

func (f *FleteForm) Saving() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saving
}

// Messages returns the current error and success messages.
func (f *FleteForm) Messages() (errMsg, success string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg, f.successMsg
}

// Selection returns the selected supplier and destination ids and the
// entered costs.
func (f *FleteForm) Selection() (supplierID, destinationID int, highway, stay float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.supplierID, f.destinationID, f.highwayExpense, f.costOfStay
}

func (f *FleteForm) clearMessages() {
	f.errMsg = ""
	f.successMsg = ""
}

func supplierByID(list []models.Supplier, id int) *models.Supplier {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func destinationByID(list []models.Destination, id int) *models.Destination {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

func supplierIDByName(list []models.Supplier, name string) int {
	for _, s := range list {
		if s.Name == name {
			return s.ID
		}
	}
	return 0
}

func destinationIDByName(list []models.Destination, name string) int {
	for _, d := range list {
		if d.Name == name {
			return d.ID
		}
	}
	return 0
}
