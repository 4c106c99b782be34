package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/coinledger/app/services/node/handlers"
	"github.com/ardanlabs/coinledger/business/web/errs"
	"github.com/ardanlabs/coinledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/coinledger/foundation/blockchain/state"
	"github.com/ardanlabs/coinledger/foundation/events"
	"github.com/ardanlabs/coinledger/foundation/logger"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func newMux(t *testing.T) http.Handler {
	st, err := state.New(state.Config{
		Genesis: genesis.Genesis{Difficulty: 1, MiningReward: 100},
	})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the ledger: %v", failed, err)
	}

	return handlers.PublicMux(handlers.MuxConfig{
		Shutdown: make(chan os.Signal, 1),
		Log:      logger.NewNop(),
		State:    st,
		Evts:     events.New(),
	})
}

func call(t *testing.T, mux http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	var r *http.Request
	switch body {
	case "":
		r = httptest.NewRequest(method, path, nil)
	default:
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	return w
}

// =============================================================================

func Test_Routes(t *testing.T) {
	type table struct {
		name   string
		method string
		path   string
		body   string
		status int
		errMsg string
	}

	tt := []table{
		{name: "createA", method: http.MethodPost, path: "/v1/wallet/new", body: `{"address":"A","balance":100,"password":"p"}`, status: http.StatusCreated},
		{name: "createB", method: http.MethodPost, path: "/v1/wallet/new", body: `{"address":"B","balance":0,"password":"p"}`, status: http.StatusCreated},
		{name: "duplicate", method: http.MethodPost, path: "/v1/wallet/new", body: `{"address":"A","balance":5,"password":"p"}`, status: http.StatusConflict, errMsg: "a wallet with this address already exists"},
		{name: "mining", method: http.MethodPost, path: "/v1/wallet/new", body: `{"address":"MINING","balance":5,"password":"p"}`, status: http.StatusBadRequest},
		{name: "unknownfield", method: http.MethodPost, path: "/v1/wallet/new", body: `{"addr":"C"}`, status: http.StatusBadRequest},
		{name: "longaddress", method: http.MethodPost, path: "/v1/wallet/new", body: `{"address":"` + strings.Repeat("x", 300) + `","balance":5,"password":"p"}`, status: http.StatusBadRequest, errMsg: "data validation error"},
		{name: "wrongpassword", method: http.MethodPost, path: "/v1/wallet/balance", body: `{"address":"A","password":"x"}`, status: http.StatusUnauthorized, errMsg: "wrong password"},
		{name: "notfound", method: http.MethodPost, path: "/v1/wallet/balance", body: `{"address":"Z","password":"p"}`, status: http.StatusNotFound},
		{name: "nofrom", method: http.MethodPost, path: "/v1/transaction/new", body: `{"from":"","password":"p","to":"","amount":0}`, status: http.StatusBadRequest, errMsg: "'from' address is empty"},
		{name: "unknownto", method: http.MethodPost, path: "/v1/transaction/new", body: `{"from":"A","password":"p","to":"Z","amount":10}`, status: http.StatusNotFound},
		{name: "overdraw", method: http.MethodPost, path: "/v1/transaction/new", body: `{"from":"A","password":"p","to":"B","amount":500}`, status: http.StatusBadRequest, errMsg: "not enough coins"},
		{name: "transfer", method: http.MethodPost, path: "/v1/transaction/new", body: `{"from":"A","password":"p","to":"B","amount":50}`, status: http.StatusOK},
		{name: "badreward", method: http.MethodPost, path: "/v1/transaction/mine", body: `{"reward_address":"Z"}`, status: http.StatusNotFound},
		{name: "mine", method: http.MethodPost, path: "/v1/transaction/mine", body: `{"reward_address":"A"}`, status: http.StatusOK},
		{name: "chain", method: http.MethodGet, path: "/v1/blockchain/get", status: http.StatusOK},
		{name: "validate", method: http.MethodGet, path: "/v1/blockchain/validate", status: http.StatusOK},
		{name: "genesis", method: http.MethodGet, path: "/v1/genesis/list", status: http.StatusOK},
		{name: "mempool", method: http.MethodGet, path: "/v1/tx/uncommitted/list", status: http.StatusOK},
		{name: "coins", method: http.MethodPost, path: "/v1/wallet/coins", body: `{"address":"B","password":"p","amount":25}`, status: http.StatusOK},
		{name: "password", method: http.MethodPost, path: "/v1/wallet/password", body: `{"address":"B","old_password":"p","new_password":"q"}`, status: http.StatusOK},
		{name: "history", method: http.MethodPost, path: "/v1/wallet/transactions", body: `{"address":"A","password":"p"}`, status: http.StatusOK},
	}

	t.Log("Given the need to drive the ledger over http.")
	{
		mux := newMux(t)

		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen calling %s %s for %s.", testID, tst.method, tst.path, tst.name)
			{
				w := call(t, mux, tst.method, tst.path, tst.body)
				if w.Code != tst.status {
					t.Fatalf("\t%s\tTest %d:\tShould receive status %d, got %d: %s", failed, testID, tst.status, w.Code, w.Body.String())
				}
				t.Logf("\t%s\tTest %d:\tShould receive status %d.", success, testID, tst.status)

				if tst.errMsg != "" {
					var er errs.Response
					if err := json.NewDecoder(w.Body).Decode(&er); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to decode the error: %v", failed, testID, err)
					}

					if er.Error != tst.errMsg {
						t.Fatalf("\t%s\tTest %d:\tShould receive error %q, got %q.", failed, testID, tst.errMsg, er.Error)
					}
					t.Logf("\t%s\tTest %d:\tShould receive error %q.", success, testID, tst.errMsg)
				}
			}
		}
	}
}

func Test_MineResponse(t *testing.T) {
	t.Log("Given the need to read mined blocks over http.")
	{
		mux := newMux(t)

		call(t, mux, http.MethodPost, "/v1/wallet/new", `{"address":"A","balance":100,"password":"p"}`)
		call(t, mux, http.MethodPost, "/v1/wallet/new", `{"address":"B","balance":0,"password":"p"}`)
		call(t, mux, http.MethodPost, "/v1/transaction/new", `{"from":"A","password":"p","to":"B","amount":50}`)

		w := call(t, mux, http.MethodPost, "/v1/transaction/mine", `{"reward_address":"B"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("\t%s\tShould be able to mine: %d %s", failed, w.Code, w.Body.String())
		}

		var blk struct {
			Index        uint64 `json:"index"`
			Hash         string `json:"hash"`
			PrevHash     string `json:"previous_hash"`
			Transactions []struct {
				From   string `json:"from"`
				To     string `json:"to"`
				Amount uint64 `json:"amount"`
			} `json:"transactions"`
		}
		if err := json.NewDecoder(w.Body).Decode(&blk); err != nil {
			t.Fatalf("\t%s\tShould be able to decode the block: %v", failed, err)
		}

		if blk.Index != 1 || len(blk.Transactions) != 1 || blk.Transactions[0].Amount != 50 || !strings.HasPrefix(blk.Hash, "0") {
			t.Fatalf("\t%s\tShould receive the mined block, got %+v.", failed, blk)
		}
		t.Logf("\t%s\tShould receive the mined block.", success)

		w = call(t, mux, http.MethodPost, "/v1/wallet/balance", `{"address":"B","password":"p"}`)

		var bal struct {
			Balance uint64 `json:"balance"`
		}
		if err := json.NewDecoder(w.Body).Decode(&bal); err != nil || bal.Balance != 50 {
			t.Fatalf("\t%s\tShould have credited the receiver, got %d %v.", failed, bal.Balance, err)
		}
		t.Logf("\t%s\tShould have credited the receiver.", success)

		w = call(t, mux, http.MethodGet, "/v1/tx/uncommitted/list", "")

		var pending []struct {
			From   string `json:"from"`
			To     string `json:"to"`
			Amount uint64 `json:"amount"`
		}
		if err := json.NewDecoder(w.Body).Decode(&pending); err != nil {
			t.Fatalf("\t%s\tShould be able to decode the mempool: %v", failed, err)
		}

		if len(pending) != 1 || pending[0].From != "MINING" || pending[0].To != "B" || pending[0].Amount != 100 {
			t.Fatalf("\t%s\tShould leave only the reward in the mempool, got %+v.", failed, pending)
		}
		t.Logf("\t%s\tShould leave only the reward in the mempool.", success)

		w = call(t, mux, http.MethodGet, "/v1/blockchain/validate", "")

		var val struct {
			Valid       bool   `json:"valid"`
			Blocks      int    `json:"blocks"`
			LatestBlock string `json:"latest_block"`
		}
		if err := json.NewDecoder(w.Body).Decode(&val); err != nil || !val.Valid || val.Blocks != 2 || val.LatestBlock != blk.Hash {
			t.Fatalf("\t%s\tShould report a valid chain of 2 blocks, got %+v %v.", failed, val, err)
		}
		t.Logf("\t%s\tShould report a valid chain of 2 blocks.", success)
	}
}
