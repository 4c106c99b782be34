package genesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/coinledger/foundation/blockchain/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Load(t *testing.T) {
	type table struct {
		name       string
		content    string
		difficulty uint
		reward     uint64
		fail       bool
	}

	tt := []table{
		{name: "full", content: `{"difficulty":3,"mining_reward":50}`, difficulty: 3, reward: 50},
		{name: "partial", content: `{"mining_reward":25}`, difficulty: genesis.DefaultDifficulty, reward: 25},
		{name: "zero", content: `{"difficulty":0}`, fail: true},
		{name: "toobig", content: `{"difficulty":65}`, fail: true},
		{name: "garbage", content: `{difficulty`, fail: true},
	}

	t.Log("Given the need to load a genesis file.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen handling the %s file.", testID, tst.name)
				{
					path := filepath.Join(t.TempDir(), "genesis.json")
					if err := os.WriteFile(path, []byte(tst.content), 0600); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
					}

					gen, err := genesis.Load(path)
					if tst.fail {
						if err == nil {
							t.Fatalf("\t%s\tTest %d:\tShould reject the file.", failed, testID)
						}
						t.Logf("\t%s\tTest %d:\tShould reject the file.", success, testID)
						return
					}

					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to load the file: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to load the file.", success, testID)

					if gen.Difficulty != tst.difficulty || gen.MiningReward != tst.reward {
						t.Logf("\t%s\tTest %d:\tgot: %d %d", failed, testID, gen.Difficulty, gen.MiningReward)
						t.Logf("\t%s\tTest %d:\texp: %d %d", failed, testID, tst.difficulty, tst.reward)
						t.Fatalf("\t%s\tTest %d:\tShould get back the right values.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get back the right values.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_Default(t *testing.T) {
	t.Log("Given the need to start a ledger without a genesis file.")
	{
		gen := genesis.Default()
		if gen.Difficulty != 2 || gen.MiningReward != 100 {
			t.Fatalf("\t%s\tShould default to difficulty 2 and reward 100, got %d and %d.", failed, gen.Difficulty, gen.MiningReward)
		}
		t.Logf("\t%s\tShould default to difficulty 2 and reward 100.", success)

		if err := gen.Validate(); err != nil {
			t.Fatalf("\t%s\tShould be valid: %v", failed, err)
		}
		t.Logf("\t%s\tShould be valid.", success)
	}
}

func Test_Save(t *testing.T) {
	t.Log("Given the need to write a genesis file.")
	{
		path := filepath.Join(t.TempDir(), "genesis.json")

		gen := genesis.Default()
		gen.Difficulty = 4
		gen.MiningReward = 700

		if err := genesis.Save(path, gen); err != nil {
			t.Fatalf("\t%s\tShould be able to save the genesis: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to save the genesis.", success)

		got, err := genesis.Load(path)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to load the saved genesis: %v", failed, err)
		}

		if got.Difficulty != 4 || got.MiningReward != 700 || !got.Date.Equal(gen.Date) {
			t.Fatalf("\t%s\tShould get back the saved values, got %+v.", failed, got)
		}
		t.Logf("\t%s\tShould get back the saved values.", success)

		gen.Difficulty = 0
		if err := genesis.Save(path, gen); err == nil {
			t.Fatalf("\t%s\tShould not be able to save an invalid genesis.", failed)
		}
		t.Logf("\t%s\tShould not be able to save an invalid genesis.", success)
	}
}
