package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/fletes/internal/client/client"
	"github.com/dmitrijs2005/fletes/internal/client/models"
)

// Saver stores a downloaded report under name and returns where it went.
type Saver interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

type Fletes struct {
	c client.Client
}

func NewFletes(c client.Client) *Fletes {
	return &Fletes{c: c}
}

func (f *Fletes) Months(ctx context.Context) ([]models.MonthSummary, error) {
	return getList[models.MonthSummary](ctx, f.c, pathMonthsWithData)
}

func (f *Fletes) Get(ctx context.Context, id int) (*models.Flete, error) {
	var out models.Flete
	if err := f.c.Do(ctx, http.MethodGet, withID(pathFleteByID, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *Fletes) Create(ctx context.Context, req models.FleteRequest) (*models.MutationResponse, error) {
	var out models.MutationResponse
	if err := f.c.Do(ctx, http.MethodPost, pathCreate, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *Fletes) Update(ctx context.Context, id int, req models.FleteRequest) (*models.MutationResponse, error) {
	var out models.MutationResponse
	if err := f.c.Do(ctx, http.MethodPut, withID(pathUpdate, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *Fletes) Delete(ctx context.Context, id int) (*models.MutationResponse, error) {
	var out models.MutationResponse
	if err := f.c.Do(ctx, http.MethodDelete, withID(pathDelete, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MonthlyReport generates the report for year/month and hands the stream to
// saver as Reporte_<mes>_<year>.xlsx.
func (f *Fletes) MonthlyReport(ctx context.Context, year, month int, saver Saver) (string, error) {
	body := models.ReportRequest{Year: year, Month: month}
	return f.download(ctx, pathMonthlyReport, body, MonthlyReportFilename(year, month), saver)
}

// RangeReport generates the report for [start, end] (YYYY-MM-DD).
func (f *Fletes) RangeReport(ctx context.Context, start, end string, saver Saver) (string, error) {
	body := models.RangeReportRequest{StartDate: start, EndDate: end}
	return f.download(ctx, pathRangeReport, body, RangeReportFilename(start, end), saver)
}

func (f *Fletes) download(ctx context.Context, path string, body any, filename string, saver Saver) (string, error) {
	d, err := f.c.Download(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}
	defer d.Close()

	where, err := saver.Save(ctx, filename, d.Body)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", filename, err)
	}
	return where, nil
}
