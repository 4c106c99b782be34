package signature_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/ardanlabs/coinledger/foundation/blockchain/signature"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Hash(t *testing.T) {
	header := signature.Header{
		Index:     1,
		TimeStamp: 1700000000,
		Trans: []signature.Transfer{
			{From: "bill", To: "ana", Amount: 50},
		},
		PrevBlockHash: "abc",
		Nonce:         7,
	}

	// The digest is computed over this exact string.
	sum := sha256.Sum256([]byte("11700000000billbillanaana50abc7"))
	exp := hex.EncodeToString(sum[:])

	t.Log("Given the need to hash a block header.")
	{
		got := signature.Hash(header)
		if got != exp {
			t.Logf("\t%s\tgot: %s", failed, got)
			t.Logf("\t%s\texp: %s", failed, exp)
			t.Fatalf("\t%s\tShould get back the expected digest.", failed)
		}
		t.Logf("\t%s\tShould get back the expected digest.", success)

		if len(got) != signature.HashLength {
			t.Fatalf("\t%s\tShould get back %d hex characters, got %d.", failed, signature.HashLength, len(got))
		}
		t.Logf("\t%s\tShould get back %d hex characters.", success, signature.HashLength)

		if again := signature.Hash(header); again != got {
			t.Fatalf("\t%s\tShould get back the same digest on every call.", failed)
		}
		t.Logf("\t%s\tShould get back the same digest on every call.", success)
	}
}

func Test_HashSensitivity(t *testing.T) {
	base := signature.Header{
		Index:     3,
		TimeStamp: 1700000000,
		Trans: []signature.Transfer{
			{From: "bill", To: "ana", Amount: 50},
			{From: "ana", To: "kevin", Amount: 10},
		},
		PrevBlockHash: "00ab",
		Nonce:         0,
	}
	baseHash := signature.Hash(base)

	type table struct {
		name   string
		header signature.Header
	}

	nonce := base
	nonce.Nonce++

	prev := base
	prev.PrevBlockHash = "00ac"

	amount := base
	amount.Trans = []signature.Transfer{
		{From: "bill", To: "ana", Amount: 51},
		{From: "ana", To: "kevin", Amount: 10},
	}

	order := base
	order.Trans = []signature.Transfer{base.Trans[1], base.Trans[0]}

	tt := []table{
		{name: "nonce", header: nonce},
		{name: "prevhash", header: prev},
		{name: "amount", header: amount},
		{name: "order", header: order},
	}

	t.Log("Given the need to detect any change to a block header.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen changing the %s.", testID, tst.name)
				{
					if signature.Hash(tst.header) == baseHash {
						t.Fatalf("\t%s\tTest %d:\tShould get a different digest.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get a different digest.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_VerifyPassword(t *testing.T) {
	t.Log("Given the need to check wallet passwords.")
	{
		if !signature.VerifyPassword("secret", "secret") {
			t.Fatalf("\t%s\tShould accept the matching password.", failed)
		}
		t.Logf("\t%s\tShould accept the matching password.", success)

		if signature.VerifyPassword("secret", "Secret") {
			t.Fatalf("\t%s\tShould reject a different password.", failed)
		}
		t.Logf("\t%s\tShould reject a different password.", success)

		if signature.VerifyPassword("secret", "") {
			t.Fatalf("\t%s\tShould reject an empty password.", failed)
		}
		t.Logf("\t%s\tShould reject an empty password.", success)
	}
}
