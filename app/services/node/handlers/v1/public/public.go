// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/coinledger/business/sys/validate"
	"github.com/ardanlabs/coinledger/business/web/errs"
	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
	"github.com/ardanlabs/coinledger/foundation/blockchain/state"
	"github.com/ardanlabs/coinledger/foundation/events"
	"github.com/ardanlabs/coinledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client. The optional
// prefix query parameter restricts the events that are delivered.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID, r.URL.Query().Get("prefix"))
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// CreateWallet registers a new wallet with an opening balance.
func (h Handlers) CreateWallet(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var nw newWallet
	if err := decode(r, &nw); err != nil {
		return err
	}

	h.Log.Infow("create wallet", "traceid", v.TraceID, "address", nw.Address, "balance", nw.Balance)

	if err := h.State.CreateWallet(nw.Address, nw.Balance, nw.Password); err != nil {
		return errs.Ledger(err)
	}

	return web.Respond(ctx, w, status{Status: "wallet created"}, http.StatusCreated)
}

// Balance returns the balance of the authenticated wallet.
func (h Handlers) Balance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var cred credentials
	if err := decode(r, &cred); err != nil {
		return err
	}

	bal, err := h.State.QueryBalance(cred.Address, cred.Password)
	if err != nil {
		return errs.Ledger(err)
	}

	return web.Respond(ctx, w, balance{Address: cred.Address, Balance: bal}, http.StatusOK)
}

// Transactions returns the history of the authenticated wallet.
func (h Handlers) Transactions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var cred credentials
	if err := decode(r, &cred); err != nil {
		return err
	}

	recs, err := h.State.QueryTransactions(cred.Address, cred.Password)
	if err != nil {
		return errs.Ledger(err)
	}

	return web.Respond(ctx, w, toRecords(recs), http.StatusOK)
}

// AddCoins increases the balance of the authenticated wallet.
func (h Handlers) AddCoins(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var ac addCoins
	if err := decode(r, &ac); err != nil {
		return err
	}

	h.Log.Infow("add coins", "traceid", v.TraceID, "address", ac.Address, "amount", ac.Amount)

	if err := h.State.AddCoins(ac.Address, ac.Password, ac.Amount); err != nil {
		return errs.Ledger(err)
	}

	return web.Respond(ctx, w, status{Status: "coins added"}, http.StatusOK)
}

// ChangePassword replaces the password of the authenticated wallet.
func (h Handlers) ChangePassword(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var cp changePassword
	if err := decode(r, &cp); err != nil {
		return err
	}

	if err := h.State.ChangePassword(cp.Address, cp.OldPassword, cp.NewPassword); err != nil {
		return errs.Ledger(err)
	}

	return web.Respond(ctx, w, status{Status: "password changed"}, http.StatusOK)
}

// SubmitTransaction validates a transfer, debits the sender and adds the
// transfer to the mempool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var tr transfer
	if err := decode(r, &tr); err != nil {
		return err
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "from", tr.From, "to", tr.To, "amount", tr.Amount)

	req := database.TransferRequest{
		FromAddress:  tr.From,
		FromPassword: tr.Password,
		ToAddress:    tr.To,
		Amount:       tr.Amount,
	}

	if err := h.State.SubmitTransaction(req); err != nil {
		return errs.Ledger(err)
	}

	return web.Respond(ctx, w, status{Status: "transaction added to mempool"}, http.StatusOK)
}

// Mine seals the mempool into a new block. The proof of work is abandoned
// if the client goes away.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var m mine
	if err := decode(r, &m); err != nil {
		return err
	}

	h.Log.Infow("mine", "traceid", v.TraceID, "reward", m.RewardAddress)

	blk, err := h.State.MinePendingTransactions(ctx, m.RewardAddress)
	if err != nil {
		return errs.Ledger(err)
	}

	return web.Respond(ctx, w, toBlock(blk), http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, toTxs(h.State.RetrieveMempool()), http.StatusOK)
}

// Chain returns every block from genesis to the latest block.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.RetrieveChain()

	blocks := make([]block, len(chain))
	for i, blk := range chain {
		blocks[i] = toBlock(blk)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// Validate reports whether the chain hashes and links are intact. Every
// field of the response comes from the same copy of the chain.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.RetrieveChain()

	resp := validation{
		Valid:       database.ValidateChain(chain, nil) == nil,
		Blocks:      len(chain),
		LatestBlock: chain[len(chain)-1].Hash,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

// decode reads the request body and checks the model against its tags.
func decode(r *http.Request, val any) error {
	if err := web.Decode(r, val); err != nil {
		return errs.NewTrusted(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
	}

	if err := validate.Check(val); err != nil {
		return err
	}

	return nil
}
