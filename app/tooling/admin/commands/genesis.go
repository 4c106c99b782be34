// Package commands contains the functionality for the admin tool.
package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ardanlabs/coinledger/foundation/blockchain/genesis"
	"go.uber.org/zap"
)

// Genesis writes a genesis file the node can be started with. The
// difficulty and reward fall back to the defaults when not provided.
func Genesis(args []string, log *zap.SugaredLogger) error {
	if len(args) < 3 {
		return errors.New("missing genesis file path")
	}

	gen := genesis.Default()

	if len(args) > 3 {
		difficulty, err := strconv.ParseUint(args[3], 10, 32)
		if err != nil {
			return fmt.Errorf("parsing difficulty: %w", err)
		}
		gen.Difficulty = uint(difficulty)
	}

	if len(args) > 4 {
		reward, err := strconv.ParseUint(args[4], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing reward: %w", err)
		}
		gen.MiningReward = reward
	}

	if err := genesis.Save(args[2], gen); err != nil {
		return err
	}

	log.Infow("genesis", "path", args[2], "difficulty", gen.Difficulty, "reward", gen.MiningReward)

	return nil
}

// Check loads a genesis file and prints the values the node would use.
func Check(args []string, log *zap.SugaredLogger) error {
	if len(args) < 3 {
		return errors.New("missing genesis file path")
	}

	gen, err := genesis.Load(args[2])
	if err != nil {
		return err
	}

	log.Infow("check", "path", args[2], "difficulty", gen.Difficulty, "reward", gen.MiningReward)
	fmt.Printf("Date: %s  Difficulty: %d  Reward: %d\n", gen.Date, gen.Difficulty, gen.MiningReward)

	return nil
}
