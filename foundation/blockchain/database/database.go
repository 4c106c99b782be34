// Package database handles all the lower level support for maintaining the
// blocks of the chain and the in memory database of wallet information.
package database

import (
	"math"
	"sync"

	"github.com/ardanlabs/coinledger/foundation/blockchain/signature"
)

// Database manages data related to wallets who have transacted on the
// blockchain. It is the single source of truth for current balances.
type Database struct {
	mu      sync.RWMutex
	wallets map[string]Wallet
}

// New constructs a new, empty wallet database.
func New() *Database {
	return &Database{
		wallets: make(map[string]Wallet),
	}
}

// Reset removes every wallet from the database.
func (db *Database) Reset() {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.wallets = make(map[string]Wallet)
}

// Create adds a new wallet to the database.
func (db *Database) Create(address string, balance int64, password string) error {
	switch {
	case address == "":
		return ErrEmptyAddress
	case address == MiningAddress:
		return ErrMiningAddress
	case balance < 0:
		return ErrNegativeBalance
	case password == "":
		return ErrEmptyPassword
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.wallets[address]; exists {
		return ErrWalletAlreadyExists
	}

	db.wallets[address] = newWallet(address, uint64(balance), password)

	return nil
}

// Query returns a copy of the wallet for the specified address.
func (db *Database) Query(address string) (Wallet, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	wallet, exists := db.wallets[address]
	if !exists {
		return Wallet{}, ErrWalletNotFound
	}

	return wallet.Clone(), nil
}

// Authenticate returns a copy of the wallet for the specified address if the
// password matches the one on record.
func (db *Database) Authenticate(address string, password string) (Wallet, error) {
	wallet, err := db.Query(address)
	if err != nil {
		return Wallet{}, err
	}

	if !signature.VerifyPassword(wallet.Password, password) {
		return Wallet{}, ErrWrongPassword
	}

	return wallet, nil
}

// Balance returns the current balance of the wallet.
func (db *Database) Balance(address string, password string) (uint64, error) {
	wallet, err := db.Authenticate(address, password)
	if err != nil {
		return 0, err
	}

	return wallet.Balance, nil
}

// Transactions returns the transaction history of the wallet in the order
// the entries were recorded.
func (db *Database) Transactions(address string, password string) ([]TransactionRecord, error) {
	wallet, err := db.Authenticate(address, password)
	if err != nil {
		return nil, err
	}

	return wallet.Transactions, nil
}

// AddCoins increases the balance of the wallet by the specified amount.
func (db *Database) AddCoins(address string, password string, amount int64) error {
	wallet, err := db.Authenticate(address, password)
	if err != nil {
		return err
	}

	if amount < 0 {
		return ErrNegativeAmount
	}

	if wallet.Balance > math.MaxUint64-uint64(amount) {
		return ErrBalanceOverflow
	}

	wallet.Balance += uint64(amount)

	return db.Update(wallet)
}

// ChangePassword replaces the password of the wallet.
func (db *Database) ChangePassword(address string, oldPassword string, newPassword string) error {
	wallet, err := db.Authenticate(address, oldPassword)
	if err != nil {
		return err
	}

	if newPassword == "" {
		return ErrEmptyPassword
	}

	wallet.Password = newPassword

	return db.Update(wallet)
}

// Update replaces the stored wallet with the specified wallet at the
// same address.
func (db *Database) Update(wallet Wallet) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.wallets[wallet.Address]; !exists {
		return ErrWalletNotFound
	}

	db.wallets[wallet.Address] = wallet.Clone()

	return nil
}

// Count returns the number of wallets in the database.
func (db *Database) Count() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.wallets)
}
