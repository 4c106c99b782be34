// Package signature provides helper functions for handling the blockchain
// hashing and credential needs.
package signature

import (
	"crypto/sha256"
	"crypto/subtle"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// HashLength is the number of hex characters produced by Hash.
const HashLength = 2 * sha256.Size

// Transfer is the part of a transaction that contributes to a block hash.
type Transfer struct {
	From   string
	To     string
	Amount uint64
}

// Header carries every block field that is covered by the block hash.
type Header struct {
	Index         uint64
	TimeStamp     uint64
	Trans         []Transfer
	PrevBlockHash string
	Nonce         uint64
}

// =============================================================================

// Hash returns the hex encoded SHA-256 digest of the header. The fields are
// written in order as decimal strings with no separators. Each transfer
// contributes its from address twice, its to address twice and then the
// amount.
func Hash(h Header) string {
	var b strings.Builder

	b.WriteString(strconv.FormatUint(h.Index, 10))
	b.WriteString(strconv.FormatUint(h.TimeStamp, 10))

	for _, tx := range h.Trans {
		b.WriteString(tx.From)
		b.WriteString(tx.From)
		b.WriteString(tx.To)
		b.WriteString(tx.To)
		b.WriteString(strconv.FormatUint(tx.Amount, 10))
	}

	b.WriteString(h.PrevBlockHash)
	b.WriteString(strconv.FormatUint(h.Nonce, 10))

	hash := sha256.Sum256([]byte(b.String()))
	return common.Bytes2Hex(hash[:])
}

// =============================================================================

// VerifyPassword reports whether the supplied password matches the one on
// record. Every credential check in the ledger goes through here so a real
// credential scheme can replace the plaintext comparison in one place.
func VerifyPassword(stored string, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
