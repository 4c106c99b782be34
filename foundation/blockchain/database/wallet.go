package database

// MiningAddress is the reserved address of the wallet that funds mining
// rewards. No user wallet can be created with this address.
const MiningAddress = "MINING"

// TransactionRecord represents an entry in a wallet's transaction history.
type TransactionRecord struct {
	FromAddress  string `json:"from_address"`
	FromPassword string `json:"-"`
	ToAddress    string `json:"to_address"`
	Amount       uint64 `json:"amount"`
}

// Wallet represents information stored in the database for an individual
// wallet.
type Wallet struct {
	Address      string              `json:"address"`
	Balance      uint64              `json:"balance"`
	Password     string              `json:"-"`
	Transactions []TransactionRecord `json:"transactions"`
}

// newWallet constructs a new wallet value for use.
func newWallet(address string, balance uint64, password string) Wallet {
	return Wallet{
		Address:      address,
		Balance:      balance,
		Password:     password,
		Transactions: []TransactionRecord{},
	}
}

// Clone returns a copy of the wallet that shares no memory with the original.
func (w Wallet) Clone() Wallet {
	trans := make([]TransactionRecord, len(w.Transactions))
	copy(trans, w.Transactions)

	w.Transactions = trans
	return w
}

// Debit removes the transfer amount from the wallet and records the
// transfer in the wallet history. The mining wallet has no balance to
// debit so it is left untouched.
func (w *Wallet) Debit(tx BlockTx) {
	if w.Address == MiningAddress {
		return
	}

	w.Balance -= tx.Amount
	w.Transactions = append(w.Transactions, tx.Record())
}

// Credit adds the transfer amount to the wallet and records the transfer
// in the wallet history. Callers check the balance can hold the amount.
func (w *Wallet) Credit(tx BlockTx) {
	w.Balance += tx.Amount
	w.Transactions = append(w.Transactions, tx.Record())
}
