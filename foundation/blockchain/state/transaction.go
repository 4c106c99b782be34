package state

import (
	"fmt"

	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
)

// SubmitTransaction validates the transfer against the wallets and, if it
// passes, debits the sender and adds the transfer to the mempool. The
// receiver is credited when the transfer is mined.
func (s *State) SubmitTransaction(tr database.TransferRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.validateTransfer(tr)
	if err != nil {
		return err
	}

	from := tx.From.Clone()
	from.Debit(tx)

	if err := s.db.Update(from); err != nil {
		return fmt.Errorf("debit wallet %q: %w", from.Address, err)
	}

	n := s.mempool.Add(tx)

	s.evHandler("state: SubmitTransaction: tx[%s]: mempool[%d]", tx, n)

	return nil
}

// =============================================================================

// validateTransfer runs the transfer checks in order, stopping at the first
// failure. Nothing is changed by this function.
func (s *State) validateTransfer(tr database.TransferRequest) (database.BlockTx, error) {
	if err := tr.Validate(); err != nil {
		return database.BlockTx{}, err
	}

	from, err := s.db.Query(tr.FromAddress)
	if err != nil {
		return database.BlockTx{}, database.ErrInvalidFromAddress
	}

	if _, err := s.db.Authenticate(tr.FromAddress, tr.FromPassword); err != nil {
		return database.BlockTx{}, database.ErrWrongPassword
	}

	to, err := s.db.Query(tr.ToAddress)
	if err != nil {
		return database.BlockTx{}, database.ErrInvalidToAddress
	}

	amount := uint64(tr.Amount)
	if from.Balance < amount {
		return database.BlockTx{}, database.ErrNotEnoughCoins
	}

	return database.NewBlockTx(from, to, amount), nil
}
