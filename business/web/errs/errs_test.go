package errs_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ardanlabs/coinledger/business/web/errs"
	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
	"github.com/ardanlabs/coinledger/foundation/blockchain/state"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Ledger(t *testing.T) {
	type table struct {
		name   string
		err    error
		status int
	}

	tt := []table{
		{name: "notfound", err: database.ErrWalletNotFound, status: http.StatusNotFound},
		{name: "reward", err: state.ErrInvalidRewardAddress, status: http.StatusNotFound},
		{name: "password", err: database.ErrWrongPassword, status: http.StatusUnauthorized},
		{name: "exists", err: database.ErrWalletAlreadyExists, status: http.StatusConflict},
		{name: "overflow", err: database.ErrBalanceOverflow, status: http.StatusBadRequest},
		{name: "cancelled", err: fmt.Errorf("mining cancelled: %w", context.Canceled), status: http.StatusServiceUnavailable},
	}

	t.Log("Given the need to give ledger errors an http status.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				err := errs.Ledger(tst.err)

				te := errs.GetTrusted(err)
				if te == nil || te.Status != tst.status {
					t.Fatalf("\t%s\tTest %d:\tShould get back status %d, got %+v.", failed, testID, tst.status, te)
				}
				t.Logf("\t%s\tTest %d:\tShould get back status %d.", success, testID, tst.status)

				if !errors.Is(err, tst.err) {
					t.Fatalf("\t%s\tTest %d:\tShould keep the ledger error reachable.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould keep the ledger error reachable.", success, testID)
			}

			t.Run(tst.name, f)
		}

		if errs.IsTrusted(errs.Ledger(errors.New("boom"))) {
			t.Fatalf("\t%s\tShould leave unknown errors untrusted.", failed)
		}
		t.Logf("\t%s\tShould leave unknown errors untrusted.", success)
	}
}
