// Package errs provides types and support related to web v1 functionality.
package errs

import (
	"context"
	"errors"
	"net/http"

	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
	"github.com/ardanlabs/coinledger/foundation/blockchain/state"
)

// Response is the form used for API responses from failures in the API.
type Response struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted is used to pass an error during the request through the
// application with web specific context.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (te *Trusted) Error() string {
	return te.Err.Error()
}

// Unwrap provides access to the wrapped ledger error.
func (te *Trusted) Unwrap() error {
	return te.Err
}

// IsTrusted checks if an error of type Trusted exists.
func IsTrusted(err error) bool {
	var te *Trusted
	return errors.As(err, &te)
}

// GetTrusted returns a copy of the Trusted pointer.
func GetTrusted(err error) *Trusted {
	var te *Trusted
	if !errors.As(err, &te) {
		return nil
	}
	return te
}

// =============================================================================

// statuses maps the known ledger errors to the status a client receives.
var statuses = []struct {
	err    error
	status int
}{
	{database.ErrWalletNotFound, http.StatusNotFound},
	{database.ErrInvalidFromAddress, http.StatusNotFound},
	{database.ErrInvalidToAddress, http.StatusNotFound},
	{state.ErrInvalidRewardAddress, http.StatusNotFound},
	{database.ErrWrongPassword, http.StatusUnauthorized},
	{database.ErrWalletAlreadyExists, http.StatusConflict},
	{database.ErrEmptyAddress, http.StatusBadRequest},
	{database.ErrMiningAddress, http.StatusBadRequest},
	{database.ErrNegativeBalance, http.StatusBadRequest},
	{database.ErrEmptyPassword, http.StatusBadRequest},
	{database.ErrNegativeAmount, http.StatusBadRequest},
	{database.ErrEmptyFromAddress, http.StatusBadRequest},
	{database.ErrEmptyToAddress, http.StatusBadRequest},
	{database.ErrInvalidAmount, http.StatusBadRequest},
	{database.ErrNotEnoughCoins, http.StatusBadRequest},
	{database.ErrBalanceOverflow, http.StatusBadRequest},
	{state.ErrNoTransactions, http.StatusBadRequest},
	{context.Canceled, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusServiceUnavailable},
}

// Ledger converts an error returned by the ledger into a Trusted error
// carrying the matching status. Errors the ledger doesn't document are
// returned untouched and end up as a 500.
func Ledger(err error) error {
	if err == nil {
		return nil
	}

	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return NewTrusted(err, s.status)
		}
	}

	return err
}
