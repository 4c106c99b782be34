package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/ardanlabs/coinledger/app/tooling/admin/commands"
	"github.com/ardanlabs/coinledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/coinledger/foundation/logger"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Genesis(t *testing.T) {
	type table struct {
		name       string
		args       []string
		difficulty uint
		reward     uint64
		fail       bool
	}

	tt := []table{
		{name: "defaults", args: nil, difficulty: genesis.DefaultDifficulty, reward: genesis.DefaultMiningReward},
		{name: "custom", args: []string{"3", "50"}, difficulty: 3, reward: 50},
		{name: "baddifficulty", args: []string{"x"}, fail: true},
		{name: "outofrange", args: []string{"65"}, fail: true},
	}

	t.Log("Given the need to write genesis files from the admin tool.")
	{
		log := logger.NewNop()

		for testID, tst := range tt {
			f := func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "genesis.json")
				args := append([]string{"admin", "genesis", path}, tst.args...)

				err := commands.Genesis(args, log)
				if tst.fail {
					if err == nil {
						t.Fatalf("\t%s\tTest %d:\tShould not be able to write the file.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould not be able to write the file.", success, testID)
					return
				}

				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
				}

				gen, err := genesis.Load(path)
				if err != nil || gen.Difficulty != tst.difficulty || gen.MiningReward != tst.reward {
					t.Fatalf("\t%s\tTest %d:\tShould read back the values, got %+v %v.", failed, testID, gen, err)
				}
				t.Logf("\t%s\tTest %d:\tShould read back the values.", success, testID)

				if err := commands.Check([]string{"admin", "check", path}, log); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to check the file: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould be able to check the file.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}
