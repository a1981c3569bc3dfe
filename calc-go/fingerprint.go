package calc_go

import (
	"encoding/hex"

	"github.com/segmentio/fasthash/fnv1a"
	"github.com/zeebo/blake3"
)

// ExpressionHash is the content key of an expression in the remote
// history store.
func ExpressionHash(expr string) string {
	h := blake3.New()
	h.WriteString("e:")
	h.WriteString(expr)
	return hex.EncodeToString(h.Sum(nil))
}

// ExpressionFingerprint is the cheap key of an expression in the local
// evaluation log.
func ExpressionFingerprint(expr string) uint64 {
	return fnv1a.HashString64(expr)
}
