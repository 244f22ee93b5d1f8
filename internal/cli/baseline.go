// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/binary"
	"math/rand/v2"
)

const flagBaselineSeed = "baseline-seed"

// baseline returns the ChaCha8 pseudorandom stream the quasirandom output is
// measured against. The 64-bit seed fills the first eight key bytes.
func baseline(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)

	return rand.New(rand.NewChaCha8(key))
}
