package public

import (
	"github.com/ardanlabs/coinledger/foundation/blockchain/database"
)

type newWallet struct {
	Address  string `json:"address" validate:"max=256"`
	Balance  int64  `json:"balance"`
	Password string `json:"password" validate:"max=256"`
}

type credentials struct {
	Address  string `json:"address" validate:"max=256"`
	Password string `json:"password" validate:"max=256"`
}

type addCoins struct {
	Address  string `json:"address" validate:"max=256"`
	Password string `json:"password" validate:"max=256"`
	Amount   int64  `json:"amount"`
}

type changePassword struct {
	Address     string `json:"address" validate:"max=256"`
	OldPassword string `json:"old_password" validate:"max=256"`
	NewPassword string `json:"new_password" validate:"max=256"`
}

type transfer struct {
	From     string `json:"from" validate:"max=256"`
	Password string `json:"password" validate:"max=256"`
	To       string `json:"to" validate:"max=256"`
	Amount   int64  `json:"amount"`
}

type mine struct {
	RewardAddress string `json:"reward_address" validate:"max=256"`
}

// =============================================================================

type status struct {
	Status string `json:"status"`
}

type balance struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type record struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type tx struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

type block struct {
	Index        uint64 `json:"index"`
	TimeStamp    uint64 `json:"timestamp"`
	Transactions []tx   `json:"transactions"`
	Hash         string `json:"hash"`
	PrevHash     string `json:"previous_hash"`
	Nonce        uint64 `json:"nonce"`
}

type validation struct {
	Valid       bool   `json:"valid"`
	Blocks      int    `json:"blocks"`
	LatestBlock string `json:"latest_block"`
}

func toTxs(trans []database.BlockTx) []tx {
	txs := make([]tx, len(trans))
	for i, tran := range trans {
		txs[i] = tx{
			From:   tran.From.Address,
			To:     tran.To.Address,
			Amount: tran.Amount,
		}
	}

	return txs
}

func toBlock(blk database.Block) block {
	return block{
		Index:        blk.Index,
		TimeStamp:    blk.TimeStamp,
		Transactions: toTxs(blk.Trans),
		Hash:         blk.Hash,
		PrevHash:     blk.PrevBlockHash,
		Nonce:        blk.Nonce,
	}
}

func toRecords(recs []database.TransactionRecord) []record {
	records := make([]record, len(recs))
	for i, rec := range recs {
		records[i] = record{
			From:   rec.FromAddress,
			To:     rec.ToAddress,
			Amount: rec.Amount,
		}
	}

	return records
}
