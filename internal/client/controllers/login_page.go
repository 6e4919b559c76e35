package controllers

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/common"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

const minPasswordLength = 4

type Authenticator interface {
	Login(ctx context.Context, payrollNumber int, password string) (*models.LoginResponse, error)
}

// SessionWriter is the part of the session the login form drives.
type SessionWriter interface {
	Login(ctx context.Context, token string) bool
	SaveRefreshToken(ctx context.Context, token string)
}

type LoginPage struct {
	auth    Authenticator
	session SessionWriter
	logger  logging.Logger

	mu         sync.Mutex
	submitting bool
	errMsg     string
	successMsg string
}

func NewLoginPage(auth Authenticator, session SessionWriter, logger logging.Logger) *LoginPage {
	return &LoginPage{
		auth:    auth,
		session: session,
		logger:  logger.With("component", "login_page"),
	}
}

// Submit checks the credentials locally, signs in remotely and hands the
// issued tokens to the session.
func (l *LoginPage) Submit(ctx context.Context, payroll, password string) error {
	l.mu.Lock()
	if l.submitting {
		l.mu.Unlock()
		return ErrBusy
	}
	l.errMsg, l.successMsg = "", ""

	number, ok := common.PositiveInt(payroll)
	if !ok {
		l.errMsg = MsgInvalidPayroll
		l.mu.Unlock()
		return invalid(MsgInvalidPayroll)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		l.errMsg = MsgShortPassword
		l.mu.Unlock()
		return invalid(MsgShortPassword)
	}
	l.submitting = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.submitting = false
		l.mu.Unlock()
	}()

	resp, err := l.auth.Login(ctx, number, password)
	if err != nil {
		l.logger.Warn(ctx, "login failed", "payroll", number, "error", err)
		l.setError(FriendlyError(err, MsgUnexpected))
		return err
	}
	if resp.Rejected() {
		msg := resp.Message
		if msg == "" {
			msg = MsgRejected
		}
		l.setError(msg)
		return ErrRejected
	}
	if resp.AccessToken == "" || !l.session.Login(ctx, resp.AccessToken) {
		l.logger.Error(ctx, "login response carried no usable access token", "payroll", number)
		l.setError(MsgInternal)
		return ErrRejected
	}
	l.session.SaveRefreshToken(ctx, resp.RefreshToken)

	l.mu.Lock()
	l.successMsg = MsgLoginSucceeded
	l.mu.Unlock()
	return nil
}

func (l *LoginPage) setError(msg string) {
	l.mu.Lock()
	l.errMsg = msg
	l.mu.Unlock()
}

func (l *LoginPage) Submitting() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.submitting
}

// Messages returns the current error and success messages.
func (l *LoginPage) Messages() (errMsg, success string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg, l.successMsg
}
