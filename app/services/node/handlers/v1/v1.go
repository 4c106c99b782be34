// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/coinledger/app/services/node/handlers/v1/public"
	"github.com/ardanlabs/coinledger/foundation/blockchain/state"
	"github.com/ardanlabs/coinledger/foundation/events"
	"github.com/ardanlabs/coinledger/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)
	app.Handle(http.MethodGet, version, "/genesis/list", pbl.Genesis)
	app.Handle(http.MethodPost, version, "/wallet/new", pbl.CreateWallet)
	app.Handle(http.MethodPost, version, "/wallet/balance", pbl.Balance)
	app.Handle(http.MethodPost, version, "/wallet/transactions", pbl.Transactions)
	app.Handle(http.MethodPost, version, "/wallet/coins", pbl.AddCoins)
	app.Handle(http.MethodPost, version, "/wallet/password", pbl.ChangePassword)
	app.Handle(http.MethodPost, version, "/transaction/new", pbl.SubmitTransaction)
	app.Handle(http.MethodPost, version, "/transaction/mine", pbl.Mine)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", pbl.Mempool)
	app.Handle(http.MethodGet, version, "/blockchain/get", pbl.Chain)
	app.Handle(http.MethodGet, version, "/blockchain/validate", pbl.Validate)
}
