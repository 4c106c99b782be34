package database

import "fmt"

// TransferRequest is the form of a transfer submitted by a wallet owner.
type TransferRequest struct {
	FromAddress  string `json:"from_address"`
	FromPassword string `json:"from_password"`
	ToAddress    string `json:"to_address"`
	Amount       int64  `json:"amount"`
}

// Validate performs the checks that don't require wallet state.
func (tr TransferRequest) Validate() error {
	if tr.FromAddress == "" {
		return ErrEmptyFromAddress
	}

	if tr.ToAddress == "" {
		return ErrEmptyToAddress
	}

	if tr.Amount <= 0 {
		return ErrInvalidAmount
	}

	return nil
}

// =============================================================================

// BlockTx represents a transfer that has been admitted to the ledger and is
// waiting to be, or has been, mined into a block. The wallets are snapshots
// taken when the transfer was admitted.
type BlockTx struct {
	From   Wallet `json:"from_wallet"`
	To     Wallet `json:"to_wallet"`
	Amount uint64 `json:"amount"`
}

// NewBlockTx constructs a transfer between snapshots of the two wallets.
func NewBlockTx(from Wallet, to Wallet, amount uint64) BlockTx {
	return BlockTx{
		From:   from.Clone(),
		To:     to.Clone(),
		Amount: amount,
	}
}

// NewRewardTx constructs the transfer that pays a mining reward from the
// reserved mining wallet.
func NewRewardTx(to Wallet, reward uint64) BlockTx {
	return NewBlockTx(Wallet{Address: MiningAddress}, to, reward)
}

// Clone returns a copy of the transfer that shares no memory with the
// original.
func (tx BlockTx) Clone() BlockTx {
	return NewBlockTx(tx.From, tx.To, tx.Amount)
}

// Record converts the transfer into an entry for a wallet history.
func (tx BlockTx) Record() TransactionRecord {
	return TransactionRecord{
		FromAddress:  tx.From.Address,
		FromPassword: tx.From.Password,
		ToAddress:    tx.To.Address,
		Amount:       tx.Amount,
	}
}

// String implements the fmt.Stringer interface for logging.
func (tx BlockTx) String() string {
	return fmt.Sprintf("%s->%s:%d", tx.From.Address, tx.To.Address, tx.Amount)
}
