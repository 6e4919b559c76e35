package controllers

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

type FletesLister interface {
	Fletes(ctx context.Context) ([]models.Flete, error)
}

type FleteDeleter interface {
	Delete(ctx context.Context, id int) (*models.MutationResponse, error)
}

type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateReady
)

// DeleteModal is the confirmation step in front of a delete.
type DeleteModal struct {
	Open     bool
	Flete    *models.Flete
	Deleting bool
}

// FletesPage is the list of fletes: full fetch, client-side search, paging
// and delete confirmation.
type FletesPage struct {
	lister  FletesLister
	deleter FleteDeleter
	logger  logging.Logger

	mu      sync.Mutex
	state   LoadState
	gen     uint64
	all     []models.Flete
	term    string
	pager   *Pager[models.Flete]
	errMsg  string
	notice  string
	confirm DeleteModal
}

func NewFletesPage(lister FletesLister, deleter FleteDeleter, logger logging.Logger) *FletesPage {
	return &FletesPage{
		lister:  lister,
		deleter: deleter,
		logger:  logger.With("component", "fletes_page"),
		all:     []models.Flete{},
		pager:   NewPager([]models.Flete{}),
	}
}

// Load fetches the full list and goes back to page 1.
func (p *FletesPage) Load(ctx context.Context) {
	p.fetch(ctx, true)
}

// Refresh re-fetches the list keeping the search term and, when it still
// exists, the current page.
func (p *FletesPage) Refresh(ctx context.Context) {
	p.fetch(ctx, false)
}

func (p *FletesPage) fetch(ctx context.Context, reset bool) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.state = StateLoading
	p.errMsg = ""
	p.mu.Unlock()

	list, err := p.lister.Fletes(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		p.logger.Debug(ctx, "dropping stale fletes response", "generation", gen)
		return
	}

	p.state = StateReady
	if err != nil {
		p.logger.Error(ctx, "failed to load fletes", "error", err)
		p.all = []models.Flete{}
		p.errMsg = MsgLoadFletes
		p.pager.Reset(p.all)
		return
	}

	p.all = list
	filtered := FilterFletes(p.all, p.term)
	if reset {
		p.pager.Reset(filtered)
	} else {
		p.pager.Replace(filtered)
	}
	p.logger.Debug(ctx, "fletes loaded", "count", len(list))
}

// Search filters the loaded list and returns to page 1.
func (p *FletesPage) Search(term string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.term = term
	p.pager.Reset(FilterFletes(p.all, term))
}

func (p *FletesPage) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pager.Next()
}

func (p *FletesPage) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pager.Prev()
}

func (p *FletesPage) Goto(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pager.Goto(n)
}

// Items returns the fletes on the current page.
func (p *FletesPage) Items() []models.Flete {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Flete(nil), p.pager.Slice()...)
}

// All returns every loaded flete, ignoring the search term.
func (p *FletesPage) All() []models.Flete {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Flete(nil), p.all...)
}

// Find returns the loaded flete with id.
func (p *FletesPage) Find(id int) (models.Flete, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, f := range p.all {
		if f.ID == id {
			return f, true
		}
	}
	return models.Flete{}, false
}

// PageInfo reports the current page, the page count, the visible page
// window and the number of fletes matching the search.
func (p *FletesPage) PageInfo() (current, pages int, window []int, matches int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pager.Current(), p.pager.Pages(), p.pager.Window(), p.pager.Len()
}

func (p *FletesPage) State() LoadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *FletesPage) Term() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.term
}

// Messages returns the current error and notice.
func (p *FletesPage) Messages() (errMsg, notice string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg, p.notice
}

func (p *FletesPage) DeleteModal() DeleteModal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.confirm
}

// OpenDelete asks for confirmation before deleting f. It is refused while
// the list is loading or another delete is running.
func (p *FletesPage) OpenDelete(f models.Flete) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateLoading || p.confirm.Deleting {
		return false
	}
	p.confirm = DeleteModal{Open: true, Flete: &f}
	p.notice = ""
	return true
}

// CloseDelete dismisses the confirmation unless the delete is already
// running.
func (p *FletesPage) CloseDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.confirm.Deleting {
		return
	}
	p.confirm = DeleteModal{}
}

// ConfirmDelete deletes the flete held by the open confirmation, closes it
// and refreshes the list. On failure the confirmation stays open.
func (p *FletesPage) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	if !p.confirm.Open || p.confirm.Flete == nil {
		p.mu.Unlock()
		return invalid(MsgDeleteFailed)
	}
	if p.confirm.Deleting || p.state == StateLoading {
		p.mu.Unlock()
		return ErrBusy
	}
	p.confirm.Deleting = true
	p.errMsg = ""
	id := p.confirm.Flete.ID
	p.mu.Unlock()

	resp, err := p.deleter.Delete(ctx, id)

	p.mu.Lock()
	p.confirm.Deleting = false
	if err != nil {
		p.logger.Error(ctx, "failed to delete flete", "id", id, "error", err)
		p.errMsg = FriendlyError(err, MsgDeleteFailed)
		p.mu.Unlock()
		return err
	}
	if resp != nil && resp.Success != nil && !*resp.Success {
		p.errMsg = MsgDeleteFailed
		if resp.Message != "" {
			p.errMsg = "Error: " + resp.Message
		}
		p.mu.Unlock()
		return ErrRejected
	}
	p.confirm = DeleteModal{}
	p.notice = MsgFleteDeleted
	p.mu.Unlock()

	p.logger.Info(ctx, "flete deleted", "id", id)
	p.Refresh(ctx)
	return nil
}
