package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/fletes/internal/client/api"
	"github.com/dmitrijs2005/fletes/internal/client/client"
	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

type ReportSource interface {
	Months(ctx context.Context) ([]models.MonthSummary, error)
	MonthlyReport(ctx context.Context, year, month int, saver api.Saver) (string, error)
	RangeReport(ctx context.Context, start, end string, saver api.Saver) (string, error)
}

// ReportsPage lists the months with data and downloads their reports.
// Downloads are not serialized; Downloading reports only the most recently
// started one.
type ReportsPage struct {
	src    ReportSource
	saver  api.Saver
	logger logging.Logger

	mu          sync.Mutex
	state       LoadState
	gen         uint64
	months      []models.MonthSummary
	downloading string
	errMsg      string
	lastSaved   string
}

func NewReportsPage(src ReportSource, saver api.Saver, logger logging.Logger) *ReportsPage {
	return &ReportsPage{
		src:    src,
		saver:  saver,
		logger: logger.With("component", "reports_page"),
		months: []models.MonthSummary{},
	}
}

func (r *ReportsPage) Load(ctx context.Context) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.state = StateLoading
	r.errMsg = ""
	r.mu.Unlock()

	months, err := r.src.Months(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	r.state = StateReady
	if err != nil {
		r.logger.Error(ctx, "failed to load months", "error", err)
		r.months = []models.MonthSummary{}
		r.errMsg = MsgLoadMonths
		return
	}
	r.months = months
}

func (r *ReportsPage) Months() []models.MonthSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.MonthSummary(nil), r.months...)
}

func (r *ReportsPage) State() LoadState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Downloading returns the key of the month being downloaded, or "".
func (r *ReportsPage) Downloading() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.downloading
}

func (r *ReportsPage) IsDownloading(year, month int) bool {
	return r.Downloading() == models.MonthKey(year, month)
}

// Messages returns the current error and the location of the last saved
// report.
func (r *ReportsPage) Messages() (errMsg, saved string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg, r.lastSaved
}

// Download fetches the monthly report and saves it.
func (r *ReportsPage) Download(ctx context.Context, year, month int) (string, error) {
	key := models.MonthKey(year, month)
	r.begin(key)

	where, err := r.src.MonthlyReport(ctx, year, month, r.saver)
	if err != nil {
		r.logger.Error(ctx, "failed to download report", "month", key, "error", err)
	}
	r.finish(key, where, err, MsgDownloadFailed)
	return where, err
}

// DownloadRange fetches the report for [start, end], both YYYY-MM-DD. The
// dates are checked before anything is sent.
func (r *ReportsPage) DownloadRange(ctx context.Context, start, end string) (string, error) {
	if err := validateRange(start, end); err != nil {
		r.mu.Lock()
		r.errMsg = FriendlyError(err, MsgRangeFailed)
		r.mu.Unlock()
		return "", err
	}

	key := start + ".." + end
	r.begin(key)

	where, err := r.src.RangeReport(ctx, start, end, r.saver)
	if err != nil {
		r.logger.Error(ctx, "failed to generate range report", "start", start, "end", end, "error", err)
	}
	msg := MsgRangeFailed
	if m, ok := client.ServerMessage(err); ok {
		msg = m
	}
	r.finish(key, where, err, msg)
	return where, err
}

func (r *ReportsPage) begin(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.downloading = key
	r.errMsg = ""
}

// finish clears the busy key only if no later download has replaced it.
func (r *ReportsPage) finish(key, where string, err error, failMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.downloading == key {
		r.downloading = ""
	}
	if err != nil {
		r.errMsg = failMsg
		return
	}
	r.lastSaved = where
}

func validateRange(start, end string) error {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return invalid(MsgBadDate)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return invalid(MsgBadDate)
	}
	if s.After(e) {
		return invalid(MsgStartAfterEnd)
	}
	return nil
}
