package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/coinledger/foundation/blockchain/signature"
)

// ErrChainEmpty is returned when a chain without a genesis block is validated.
var ErrChainEmpty = errors.New("chain is empty")

// =============================================================================

// Block represents a group of transactions batched together.
type Block struct {
	Index         uint64    `json:"index"`         // Position of the block in the chain, genesis is 0.
	TimeStamp     uint64    `json:"timestamp"`     // Time the block was created in seconds.
	Trans         []BlockTx `json:"transactions"`  // Transfers sealed in this block.
	Hash          string    `json:"hash"`          // Digest of all the other fields.
	PrevBlockHash string    `json:"previous_hash"` // Hash of the previous block in the chain.
	Nonce         uint64    `json:"nonce"`         // Value identified to solve the hash solution.
}

// NewBlock constructs a block at the specified index holding a copy of the
// transactions. The hash is calculated with a nonce of zero and no previous
// block hash.
func NewBlock(index uint64, trans []BlockTx) Block {
	cpy := make([]BlockTx, len(trans))
	for i, tx := range trans {
		cpy[i] = tx.Clone()
	}

	b := Block{
		Index:     index,
		TimeStamp: uint64(time.Now().UTC().Unix()),
		Trans:     cpy,
	}
	b.Hash = b.CalculateHash()

	return b
}

// GenesisBlock constructs the first block of every chain.
func GenesisBlock() Block {
	return NewBlock(0, nil)
}

// SetPrevBlockHash links the block to its parent and recalculates the hash.
func (b *Block) SetPrevBlockHash(prevBlockHash string) {
	b.PrevBlockHash = prevBlockHash
	b.Hash = b.CalculateHash()
}

// CalculateHash returns the hash of the block based on its current fields.
// The stored Hash field is not used.
func (b Block) CalculateHash() string {
	trans := make([]signature.Transfer, len(b.Trans))
	for i, tx := range b.Trans {
		trans[i] = signature.Transfer{
			From:   tx.From.Address,
			To:     tx.To.Address,
			Amount: tx.Amount,
		}
	}

	return signature.Hash(signature.Header{
		Index:         b.Index,
		TimeStamp:     b.TimeStamp,
		Trans:         trans,
		PrevBlockHash: b.PrevBlockHash,
		Nonce:         b.Nonce,
	})
}

// Clone returns a copy of the block that shares no memory with the original.
func (b Block) Clone() Block {
	trans := make([]BlockTx, len(b.Trans))
	for i, tx := range b.Trans {
		trans[i] = tx.Clone()
	}

	b.Trans = trans
	return b
}

// =============================================================================

// POWArgs represents the set of arguments required to run POW.
type POWArgs struct {
	Difficulty uint
	PrevBlock  Block
	Trans      []BlockTx
	EvHandler  func(v string, args ...any)
}

// POW constructs a new Block after the previous block and performs the work
// to find a nonce that solves the cryptographic POW puzzle.
func POW(ctx context.Context, args POWArgs) (Block, error) {
	nb := NewBlock(args.PrevBlock.Index+1, args.Trans)
	nb.SetPrevBlockHash(args.PrevBlock.Hash)

	if err := nb.Mine(ctx, args.Difficulty, args.EvHandler); err != nil {
		return Block{}, err
	}

	return nb, nil
}

// Mine does the work of finding a nonce that produces a hash starting with
// the difficulty number of 0's. There is no limit on the number of attempts,
// the context is the only way to stop the search. Pointer semantics are being
// used since a nonce is being discovered.
func (b *Block) Mine(ctx context.Context, difficulty uint, ev func(v string, args ...any)) error {
	if ev == nil {
		ev = func(string, ...any) {}
	}

	ev("database: Mine: MINING: started: blk[%d]: difficulty[%d]", b.Index, difficulty)
	defer ev("database: Mine: MINING: completed: blk[%d]", b.Index)

	for _, tx := range b.Trans {
		ev("database: Mine: MINING: tx[%s]", tx)
	}

	var attempts uint64
	for !isHashSolved(difficulty, b.Hash) {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: Mine: MINING: attempts[%d]", attempts)
		}

		// Did we timeout trying to solve the problem.
		if ctx.Err() != nil {
			ev("database: Mine: MINING: CANCELLED")
			return ctx.Err()
		}

		b.Nonce++
		b.Hash = b.CalculateHash()
	}

	ev("database: Mine: MINING: SOLVED: prevBlk[%s]: newBlk[%s]: attempts[%d]", b.PrevBlockHash, b.Hash, attempts)

	return nil
}

// ValidateBlock checks the block is correctly hashed and is linked to the
// previous block.
func (b Block) ValidateBlock(previousBlock Block, evHandler func(v string, args ...any)) error {
	if evHandler == nil {
		evHandler = func(string, ...any) {}
	}

	evHandler("database: ValidateBlock: validate: blk[%d]: check: block hash matches block data", b.Index)

	if hash := b.CalculateHash(); hash != b.Hash {
		return fmt.Errorf("block %d hash doesn't match its data, got %s, exp %s", b.Index, b.Hash, hash)
	}

	evHandler("database: ValidateBlock: validate: blk[%d]: check: parent hash does match parent block", b.Index)

	if b.PrevBlockHash != previousBlock.Hash {
		return fmt.Errorf("block %d parent hash doesn't match our known parent, got %s, exp %s", b.Index, b.PrevBlockHash, previousBlock.Hash)
	}

	return nil
}

// ValidateChain walks the chain starting after the genesis block and
// validates every block against its parent.
func ValidateChain(chain []Block, evHandler func(v string, args ...any)) error {
	if len(chain) == 0 {
		return ErrChainEmpty
	}

	for i := 1; i < len(chain); i++ {
		if err := chain[i].ValidateBlock(chain[i-1], evHandler); err != nil {
			return err
		}
	}

	return nil
}

// isHashSolved checks the hash to make sure it complies with
// the POW rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	if len(hash) != signature.HashLength || difficulty > signature.HashLength {
		return false
	}

	return strings.Count(hash[:difficulty], "0") == int(difficulty)
}
