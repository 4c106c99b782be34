package state

import (
	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
	"github.com/ardanlabs/coinledger/foundation/blockchain/genesis"
)

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveChain returns a copy of every block in the chain.
func (s *State) RetrieveChain() []database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	chain := make([]database.Block, len(s.chain))
	for i, block := range s.chain {
		chain[i] = block.Clone()
	}

	return chain
}

// RetrieveLatestBlock returns a copy the current latest block.
func (s *State) RetrieveLatestBlock() database.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chain[len(s.chain)-1].Clone()
}

// RetrieveMempool returns a copy of the mempool.
func (s *State) RetrieveMempool() []database.BlockTx {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mempool.Copy()
}

// IsValid recalculates the hash of every block after genesis and checks
// each block is linked to its parent. Nothing is repaired.
func (s *State) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := database.ValidateChain(s.chain, s.evHandler); err != nil {
		s.evHandler("state: IsValid: ERROR: %s", err)
		return false
	}

	return true
}
