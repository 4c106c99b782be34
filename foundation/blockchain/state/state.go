// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"sync"

	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
	"github.com/ardanlabs/coinledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/coinledger/foundation/blockchain/mempool"
)

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	Genesis   genesis.Genesis
	EvHandler EventHandler
}

// State manages the ledger. Every exported method holds the same lock for
// its full duration so operations never interleave, including mining.
type State struct {
	mu        sync.Mutex
	evHandler EventHandler

	genesis genesis.Genesis
	chain   []database.Block
	mempool *mempool.Mempool
	db      *database.Database
}

// New constructs a ledger holding only the genesis block, an empty mempool
// and no wallets.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	if err := cfg.Genesis.Validate(); err != nil {
		return nil, err
	}

	state := State{
		evHandler: ev,
		genesis:   cfg.Genesis,
		chain:     []database.Block{database.GenesisBlock()},
		mempool:   mempool.New(),
		db:        database.New(),
	}

	ev("state: New: genesis: blk[%s]: difficulty[%d]: reward[%d]", state.chain[0].Hash, cfg.Genesis.Difficulty, cfg.Genesis.MiningReward)

	return &state, nil
}

// Truncate resets the ledger back to the state New produced.
func (s *State) Truncate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: Truncate: reset chain, mempool and wallets")

	s.mempool.Truncate()
	s.db.Reset()
	s.chain = []database.Block{database.GenesisBlock()}
}
