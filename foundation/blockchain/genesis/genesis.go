// Package genesis maintains access to the ledger parameters the chain is
// started with.
package genesis

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/coinledger/foundation/blockchain/signature"
)

// Default values for a ledger started without a genesis file.
const (
	DefaultDifficulty   = 2
	DefaultMiningReward = 100
)

// Genesis represents the genesis file.
type Genesis struct {
	Date         time.Time `json:"date"`
	Difficulty   uint      `json:"difficulty"`    // How difficult it needs to be to solve the work problem.
	MiningReward uint64    `json:"mining_reward"` // Reward for mining a block.
}

// =============================================================================

// Default returns the genesis values used when no file is provided.
func Default() Genesis {
	return Genesis{
		Date:         time.Now().UTC(),
		Difficulty:   DefaultDifficulty,
		MiningReward: DefaultMiningReward,
	}
}

// Load opens and consumes the genesis file. Values missing from the file
// keep their defaults.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	genesis := Default()
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, fmt.Errorf("decoding genesis file: %w", err)
	}

	if err := genesis.Validate(); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}

// Validate checks the values can produce a working chain.
func (g Genesis) Validate() error {
	if g.Difficulty == 0 || g.Difficulty > signature.HashLength {
		return fmt.Errorf("difficulty must be between 1 and %d, got %d", signature.HashLength, g.Difficulty)
	}

	return nil
}

// Save validates the genesis values and writes them to the specified file.
func Save(path string, g Genesis) error {
	if err := g.Validate(); err != nil {
		return err
	}

	content, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding genesis: %w", err)
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("writing genesis file: %w", err)
	}

	return nil
}
