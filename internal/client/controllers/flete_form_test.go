package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fletes/internal/client/client"
	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

const noCostSupplier = "Alejandro Cruz Sosa"

func refs() *fakeRefs {
	return &fakeRefs{
		suppliers: []models.Supplier{
			{ID: 1, Name: "Transportes Ruiz"},
			{ID: 2, Name: noCostSupplier},
		},
		destinations: []models.Destination{
			{ID: 10, Name: "Monterrey", Cost: 1500},
			{ID: 11, Name: "Puebla", Cost: 500},
		},
	}
}

type formFixture struct {
	form      *FleteForm
	saver     *fakeSaver
	timer     *scheduled
	successes int
	cancels   int
}

func newForm(t *testing.T, saver *fakeSaver) *formFixture {
	t.Helper()
	fx := &formFixture{saver: saver, timer: &scheduled{}}
	fx.form = NewFleteForm(refs(), saver, logging.NewNop(), FormOptions{
		NoCostSuppliers: []string{noCostSupplier},
		AfterFunc:       fx.timer.AfterFunc,
		OnSuccess:       func() { fx.successes++ },
		OnCancel:        func() { fx.cancels++ },
	})
	fx.form.Load(context.Background())
	return fx
}

func okSaver() *fakeSaver {
	return &fakeSaver{resp: &models.MutationResponse{Success: boolPtr(true), ID: 77}}
}

func TestFleteForm_Load(t *testing.T) {
	fx := newForm(t, okSaver())
	assert.Len(t, fx.form.Suppliers(), 2)
	assert.Len(t, fx.form.Destinations(), 2)
}

func TestFleteForm_LoadErrorEmptiesBoth(t *testing.T) {
	r := refs()
	r.destErr = client.ErrUnavailable
	f := NewFleteForm(r, okSaver(), logging.NewNop(), FormOptions{})

	f.Load(context.Background())

	assert.Empty(t, f.Suppliers())
	assert.Empty(t, f.Destinations())
}

func TestFleteForm_SubmitRequiresSelection(t *testing.T) {
	tests := []struct {
		name        string
		supplier    int
		destination int
	}{
		{"nothing selected", 0, 0},
		{"supplier only", 1, 0},
		{"destination only", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newForm(t, okSaver())
			require.NoError(t, fx.form.SelectSupplier(tt.supplier))
			require.NoError(t, fx.form.SelectDestination(tt.destination))

			err := fx.form.Submit(context.Background())

			require.ErrorIs(t, err, ErrValidation)
			errMsg, _ := fx.form.Messages()
			assert.Equal(t, MsgSelectSupplierAndRoute, errMsg)
			assert.Empty(t, fx.saver.creates)
			assert.Empty(t, fx.saver.updates)
		})
	}
}

func TestFleteForm_CreateSuccess(t *testing.T) {
	fx := newForm(t, okSaver())
	f := fx.form
	require.NoError(t, f.SelectSupplier(1))
	require.NoError(t, f.SelectDestination(10))
	require.NoError(t, f.SetHighwayExpense(200))
	require.NoError(t, f.SetCostOfStay(50))
	require.NoError(t, f.SetRegistrationDate("2025-10-03"))
	f.SetTripNumber(4)

	assert.Equal(t, 1750.0, f.PreviewCost())
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, fx.saver.creates, 1)
	req := fx.saver.creates[0]
	assert.Equal(t, 1, req.IDSupplier)
	assert.Equal(t, 10, req.IDDestination)
	assert.Equal(t, 200.0, req.HighwayExpenseCost)
	assert.Equal(t, 50.0, req.CostOfStay)
	date, err := req.RegistrationDate.Get()
	require.NoError(t, err)
	assert.Equal(t, "2025-10-03", date)
	trip, err := req.TripNumber.Get()
	require.NoError(t, err)
	assert.Equal(t, 4, trip)

	_, success := f.Messages()
	assert.Equal(t, MsgFleteSaved, success)

	sup, dest, hw, stay := f.Selection()
	assert.Zero(t, sup)
	assert.Zero(t, dest)
	assert.Zero(t, hw)
	assert.Zero(t, stay)

	require.Len(t, fx.timer.fns, 1)
	assert.Equal(t, DefaultSuccessDelay, fx.timer.delays[0])
	assert.Zero(t, fx.successes)
	fx.timer.fns[0]()
	assert.Equal(t, 1, fx.successes)
}

func TestFleteForm_OptionalFieldsOmittedWhenUnset(t *testing.T) {
	fx := newForm(t, okSaver())
	require.NoError(t, fx.form.SelectSupplier(1))
	require.NoError(t, fx.form.SelectDestination(11))

	req := fx.form.Payload()
	assert.False(t, req.RegistrationDate.IsSpecified())
	assert.False(t, req.TripNumber.IsSpecified())
}

func TestFleteForm_UpdateUsesBoundID(t *testing.T) {
	fx := newForm(t, okSaver())
	f := fx.form
	f.Edit(context.Background(), models.Flete{
		ID:                 42,
		Supplier:           "Transportes Ruiz",
		Destination:        "Puebla",
		HighwayExpenseCost: 120,
		CostOfStay:         30,
	})

	sup, dest, hw, stay := f.Selection()
	assert.Equal(t, 1, sup)
	assert.Equal(t, 11, dest)
	assert.Equal(t, 120.0, hw)
	assert.Equal(t, 30.0, stay)

	require.NoError(t, f.Submit(context.Background()))

	assert.Empty(t, fx.saver.creates)
	require.Len(t, fx.saver.updates, 1)
	assert.Equal(t, 42, fx.saver.updates[0].id)
	_, success := f.Messages()
	assert.Equal(t, MsgFleteUpdated, success)

	sup, _, _, _ = f.Selection()
	assert.Equal(t, 1, sup, "update keeps the form filled")
}

func TestFleteForm_EditUnknownNamesLeaveSelectionEmpty(t *testing.T) {
	fx := newForm(t, okSaver())
	fx.form.Edit(context.Background(), models.Flete{ID: 5, Supplier: "Renombrado", Destination: "Monterrey"})

	sup, dest, _, _ := fx.form.Selection()
	assert.Zero(t, sup)
	assert.Equal(t, 10, dest)
	require.ErrorIs(t, fx.form.Submit(context.Background()), ErrValidation)
}

func TestFleteForm_NoCostSupplier(t *testing.T) {
	fx := newForm(t, okSaver())
	f := fx.form
	require.NoError(t, f.SelectSupplier(1))
	require.NoError(t, f.SelectDestination(11))
	require.NoError(t, f.SetHighwayExpense(200))
	require.NoError(t, f.SetCostOfStay(80))
	assert.False(t, f.CostsLocked())

	require.NoError(t, f.SelectSupplier(2))

	assert.True(t, f.CostsLocked())
	require.ErrorIs(t, f.SetHighwayExpense(300), ErrCostsLocked)
	require.ErrorIs(t, f.SetCostOfStay(10), ErrCostsLocked)
	assert.Equal(t, 500.0, f.PreviewCost())

	require.NoError(t, f.Submit(context.Background()))
	req := fx.saver.creates[0]
	assert.Zero(t, req.HighwayExpenseCost)
	assert.Zero(t, req.CostOfStay)
}

func TestFleteForm_NoCostMatchIgnoresCase(t *testing.T) {
	r := refs()
	r.suppliers[1].Name = "ALEJANDRO CRUZ SOSA"
	f := NewFleteForm(r, okSaver(), logging.NewNop(), FormOptions{NoCostSuppliers: []string{noCostSupplier}})
	f.Load(context.Background())

	require.NoError(t, f.SelectSupplier(2))
	assert.True(t, f.CostsLocked())
}

func TestFleteForm_EditNoCostStripsCosts(t *testing.T) {
	fx := newForm(t, okSaver())
	fx.form.Edit(context.Background(), models.Flete{ID: 8, Supplier: noCostSupplier, Destination: "Puebla", HighwayExpenseCost: 90})

	_, _, hw, _ := fx.form.Selection()
	assert.Zero(t, hw)
	assert.True(t, fx.form.CostsLocked())
}

func TestFleteForm_UnlockAfterSwitchingSupplier(t *testing.T) {
	fx := newForm(t, okSaver())
	require.NoError(t, fx.form.SelectSupplier(2))
	require.NoError(t, fx.form.SelectSupplier(1))

	assert.False(t, fx.form.CostsLocked())
	assert.NoError(t, fx.form.SetHighwayExpense(10))
}

func TestFleteForm_SetterValidation(t *testing.T) {
	fx := newForm(t, okSaver())
	f := fx.form

	assert.ErrorIs(t, f.SelectSupplier(99), ErrValidation)
	assert.ErrorIs(t, f.SelectDestination(99), ErrValidation)
	assert.ErrorIs(t, f.SetHighwayExpense(-1), ErrValidation)
	assert.ErrorIs(t, f.SetRegistrationDate("03/10/2025"), ErrValidation)
	assert.NoError(t, f.SetRegistrationDate(""))
}

func TestFleteForm_ChangesClearMessages(t *testing.T) {
	fx := newForm(t, okSaver())
	require.Error(t, fx.form.Submit(context.Background()))
	errMsg, _ := fx.form.Messages()
	require.NotEmpty(t, errMsg)

	require.NoError(t, fx.form.SelectSupplier(1))
	errMsg, success := fx.form.Messages()
	assert.Empty(t, errMsg)
	assert.Empty(t, success)
}

func TestFleteForm_SubmitErrors(t *testing.T) {
	tests := []struct {
		name    string
		saver   *fakeSaver
		wantErr error
		wantMsg string
	}{
		{
			name:    "server error",
			saver:   &fakeSaver{err: &client.APIError{Status: 500}},
			wantErr: client.ErrServer,
			wantMsg: MsgServerError,
		},
		{
			name:    "server message",
			saver:   &fakeSaver{err: &client.APIError{Status: 400, Message: "Ruta inactiva"}},
			wantMsg: "Error: Ruta inactiva",
		},
		{
			name:    "declared failure",
			saver:   &fakeSaver{resp: &models.MutationResponse{Success: boolPtr(false), Message: "Duplicado"}},
			wantErr: ErrRejected,
			wantMsg: "Error: Duplicado",
		},
		{
			name:    "success not declared",
			saver:   &fakeSaver{resp: &models.MutationResponse{}},
			wantErr: ErrRejected,
			wantMsg: MsgSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newForm(t, tt.saver)
			require.NoError(t, fx.form.SelectSupplier(1))
			require.NoError(t, fx.form.SelectDestination(10))

			err := fx.form.Submit(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			errMsg, success := fx.form.Messages()
			assert.Equal(t, tt.wantMsg, errMsg)
			assert.Empty(t, success)
			assert.Empty(t, fx.timer.fns)
			assert.False(t, fx.form.Saving())

			sup, _, _, _ := fx.form.Selection()
			assert.Equal(t, 1, sup, "failed submit keeps the input")
		})
	}
}

func TestFleteForm_SecondSubmitWhileSaving(t *testing.T) {
	saver := okSaver()
	saver.block = make(chan struct{})
	saver.entered = make(chan struct{})
	fx := newForm(t, saver)
	require.NoError(t, fx.form.SelectSupplier(1))
	require.NoError(t, fx.form.SelectDestination(10))

	errc := make(chan error, 1)
	go func() { errc <- fx.form.Submit(context.Background()) }()
	<-saver.entered

	assert.True(t, fx.form.Saving())
	assert.ErrorIs(t, fx.form.Submit(context.Background()), ErrBusy)

	close(saver.block)
	require.NoError(t, <-errc)
	assert.Len(t, saver.creates, 1)
}

func TestFleteForm_CustomDelay(t *testing.T) {
	timer := &scheduled{}
	f := NewFleteForm(refs(), okSaver(), logging.NewNop(), FormOptions{
		SuccessDelay: 2 * time.Second,
		AfterFunc:    timer.AfterFunc,
		OnSuccess:    func() {},
	})
	f.Load(context.Background())
	require.NoError(t, f.SelectSupplier(1))
	require.NoError(t, f.SelectDestination(10))
	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, []time.Duration{2 * time.Second}, timer.delays)
}

func TestFleteForm_Cancel(t *testing.T) {
	fx := newForm(t, okSaver())
	fx.form.Cancel()
	assert.Equal(t, 1, fx.cancels)
	assert.Empty(t, fx.saver.creates)
}

func TestFleteForm_DefaultAfterFuncRunsCallback(t *testing.T) {
	done := make(chan struct{})
	f := NewFleteForm(refs(), okSaver(), logging.NewNop(), FormOptions{
		SuccessDelay: time.Millisecond,
		OnSuccess:    func() { close(done) },
	})
	f.Load(context.Background())
	require.NoError(t, f.SelectSupplier(1))
	require.NoError(t, f.SelectDestination(10))
	require.NoError(t, f.Submit(context.Background()))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("OnSuccess was not called")
	}
}
