package state

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
)

// Set of errors for mining.
var (
	ErrNoTransactions       = errors.New("there are no pending transactions")
	ErrInvalidRewardAddress = errors.New("reward address doesn't exist")
)

// =============================================================================

// MinePendingTransactions seals every transaction in the mempool into a new
// block, credits the receivers and appends the block to the chain. The
// mempool is then left holding only the reward transaction for the
// specified address, which is credited by the next call.
//
// The proof of work runs under the ledger lock. Cancelling the context stops
// the search and leaves the ledger as it was before the call.
func (s *State) MinePendingTransactions(ctx context.Context, rewardAddress string) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: MinePendingTransactions: MINING: check mempool count")

	// Are there enough transactions in the pool.
	if s.mempool.Count() == 0 {
		return database.Block{}, ErrNoTransactions
	}

	trans := s.mempool.Copy()

	s.evHandler("state: MinePendingTransactions: MINING: check receivers and reward address")

	// Credits to the same wallet add up across the block.
	credits := make(map[string]uint64)
	for _, tx := range trans {
		to, err := s.db.Query(tx.To.Address)
		if err != nil {
			return database.Block{}, database.ErrInvalidToAddress
		}

		total := credits[to.Address]
		if total > math.MaxUint64-tx.Amount || to.Balance > math.MaxUint64-(total+tx.Amount) {
			return database.Block{}, database.ErrBalanceOverflow
		}
		credits[to.Address] = total + tx.Amount
	}

	if _, err := s.db.Query(rewardAddress); err != nil {
		return database.Block{}, ErrInvalidRewardAddress
	}

	s.evHandler("state: MinePendingTransactions: MINING: perform POW")

	block, err := database.POW(ctx, database.POWArgs{
		Difficulty: s.genesis.Difficulty,
		PrevBlock:  s.chain[len(s.chain)-1],
		Trans:      trans,
		EvHandler:  s.evHandler,
	})
	if err != nil {
		return database.Block{}, fmt.Errorf("mining cancelled: %w", err)
	}

	s.evHandler("state: MinePendingTransactions: MINING: credit receivers")

	for _, tx := range trans {
		if err := s.credit(tx); err != nil {
			return database.Block{}, err
		}
	}

	s.chain = append(s.chain, block)

	reward, err := s.db.Query(rewardAddress)
	if err != nil {
		return database.Block{}, fmt.Errorf("query reward wallet %q: %w", rewardAddress, err)
	}

	s.mempool.Reset(database.NewRewardTx(reward, s.genesis.MiningReward))

	s.blockEvent(block)

	return block.Clone(), nil
}

// =============================================================================

// credit applies the receiving side of the transfer using the current
// wallet from the database, not the snapshot held by the transfer.
func (s *State) credit(tx database.BlockTx) error {
	to, err := s.db.Query(tx.To.Address)
	if err != nil {
		return fmt.Errorf("credit wallet %q: %w", tx.To.Address, err)
	}

	to.Credit(tx)

	if err := s.db.Update(to); err != nil {
		return fmt.Errorf("credit wallet %q: %w", tx.To.Address, err)
	}

	s.evHandler("state: credit: tx[%s]: balance[%d]", tx, to.Balance)

	return nil
}

// blockEvent provides a specific event about a new block in the chain for
// application specific support.
func (s *State) blockEvent(block database.Block) {
	s.evHandler("viewer: block: index[%d]: hash[%s]: prev[%s]: nonce[%d]: trans[%d]", block.Index, block.Hash, block.PrevBlockHash, block.Nonce, len(block.Trans))
}
