package state

import "github.com/ardanlabs/coinledger/foundation/blockchain/database"

// CreateWallet adds a new wallet to the ledger.
func (s *State) CreateWallet(address string, balance int64, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Create(address, balance, password); err != nil {
		return err
	}

	s.evHandler("state: CreateWallet: wallet[%s]: balance[%d]", address, balance)

	return nil
}

// AddCoins increases the balance of the wallet outside of any transfer.
func (s *State) AddCoins(address string, password string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.AddCoins(address, password, amount); err != nil {
		return err
	}

	s.evHandler("state: AddCoins: wallet[%s]: amount[%d]", address, amount)

	return nil
}

// ChangePassword replaces the password of the wallet.
func (s *State) ChangePassword(address string, oldPassword string, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.ChangePassword(address, oldPassword, newPassword); err != nil {
		return err
	}

	s.evHandler("state: ChangePassword: wallet[%s]", address)

	return nil
}

// QueryBalance returns the current balance of the wallet.
func (s *State) QueryBalance(address string, password string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Balance(address, password)
}

// QueryTransactions returns the transaction history of the wallet.
func (s *State) QueryTransactions(address string, password string) ([]database.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transactions(address, password)
}
