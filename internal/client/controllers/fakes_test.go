package controllers

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/fletes/internal/client/api"
	"github.com/dmitrijs2005/fletes/internal/client/models"
)

func boolPtr(b bool) *bool { return &b }

type fakeLister struct {
	mu    sync.Mutex
	list  []models.Flete
	err   error
	calls int
	// gate, when set, blocks the first call until it is closed.
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeLister) Fletes(ctx context.Context) ([]models.Flete, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	list, err := f.list, f.err
	f.mu.Unlock()

	if first && f.gate != nil {
		close(f.entered)
		<-f.gate
		return []models.Flete{{ID: 999, Supplier: "stale"}}, nil
	}
	return list, err
}

type fakeDeleter struct {
	ids  []int
	resp *models.MutationResponse
	err  error
}

func (f *fakeDeleter) Delete(ctx context.Context, id int) (*models.MutationResponse, error) {
	f.ids = append(f.ids, id)
	return f.resp, f.err
}

type fakeRefs struct {
	suppliers    []models.Supplier
	destinations []models.Destination
	supErr       error
	destErr      error
}

func (f *fakeRefs) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	return f.suppliers, f.supErr
}

func (f *fakeRefs) Destinations(ctx context.Context) ([]models.Destination, error) {
	return f.destinations, f.destErr
}

type savedCall struct {
	id  int
	req models.FleteRequest
}

type fakeSaver struct {
	creates []models.FleteRequest
	updates []savedCall
	resp    *models.MutationResponse
	err     error
	// block, when set, holds the request until closed.
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeSaver) wait() {
	if f.block != nil {
		close(f.entered)
		<-f.block
	}
}

func (f *fakeSaver) Create(ctx context.Context, req models.FleteRequest) (*models.MutationResponse, error) {
	f.creates = append(f.creates, req)
	f.wait()
	return f.resp, f.err
}

func (f *fakeSaver) Update(ctx context.Context, id int, req models.FleteRequest) (*models.MutationResponse, error) {
	f.updates = append(f.updates, savedCall{id, req})
	f.wait()
	return f.resp, f.err
}

// scheduled records AfterFunc calls without running them.
type scheduled struct {
	delays []time.Duration
	fns    []func()
}

func (s *scheduled) AfterFunc(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.fns = append(s.fns, f)
}

type fakeReports struct {
	months    []models.MonthSummary
	err       error
	where     string
	monthsErr error

	// gates holds a month's download until its channel is closed; entered
	// receives the month key once the download is in flight.
	gates   map[string]chan struct{}
	entered chan string

	mu      sync.Mutex
	monthly []string
	ranges  [][2]string
}

func (f *fakeReports) monthlyCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.monthly...)
}

func (f *fakeReports) Months(ctx context.Context) ([]models.MonthSummary, error) {
	return f.months, f.monthsErr
}

func (f *fakeReports) MonthlyReport(ctx context.Context, year, month int, saver api.Saver) (string, error) {
	key := models.MonthKey(year, month)
	f.mu.Lock()
	f.monthly = append(f.monthly, key)
	f.mu.Unlock()
	if gate, ok := f.gates[key]; ok {
		f.entered <- key
		<-gate
	}
	if f.err != nil {
		return "", f.err
	}
	return saver.Save(ctx, api.MonthlyReportFilename(year, month), nil)
}

func (f *fakeReports) RangeReport(ctx context.Context, start, end string, saver api.Saver) (string, error) {
	f.mu.Lock()
	f.ranges = append(f.ranges, [2]string{start, end})
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return saver.Save(ctx, api.RangeReportFilename(start, end), nil)
}

type nameSaver struct {
	mu    sync.Mutex
	names []string
}

func (n *nameSaver) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.names = append(n.names, name)
	return "/tmp/reports/" + name, nil
}

type fakeAuth struct {
	resp     *models.LoginResponse
	err      error
	payrolls []int
}

func (f *fakeAuth) Login(ctx context.Context, payrollNumber int, password string) (*models.LoginResponse, error) {
	f.payrolls = append(f.payrolls, payrollNumber)
	return f.resp, f.err
}

type fakeSession struct {
	accept  bool
	token   string
	refresh string
}

func (f *fakeSession) Login(ctx context.Context, token string) bool {
	if !f.accept {
		return false
	}
	f.token = token
	return true
}

func (f *fakeSession) SaveRefreshToken(ctx context.Context, token string) {
	f.refresh = token
}
