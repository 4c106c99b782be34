// Package mempool maintains the mempool for the blockchain.
package mempool

import (
	"sync"

	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
)

// Mempool represents a cache of transactions waiting to be mined, kept in
// the order they were admitted.
type Mempool struct {
	pool []database.BlockTx
	mu   sync.RWMutex
}

// New constructs a new, empty mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transaction in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the end of the pool and returns the new size.
func (mp *Mempool) Add(tx database.BlockTx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx.Clone())

	return len(mp.pool)
}

// Copy returns a copy of the transactions in the order they were added.
func (mp *Mempool) Copy() []database.BlockTx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	cpy := make([]database.BlockTx, len(mp.pool))
	for i, tx := range mp.pool {
		cpy[i] = tx.Clone()
	}

	return cpy
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}

// Reset replaces the content of the pool with the specified transactions.
func (mp *Mempool) Reset(trans ...database.BlockTx) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = make([]database.BlockTx, len(trans))
	for i, tx := range trans {
		mp.pool[i] = tx.Clone()
	}
}
