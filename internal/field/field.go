// Package field names the prime field every scalar pointer, tag, and
// Poseidon state element lives in. It is a thin domain alias over
// gnark-crypto's BN254 scalar field, chosen because it is the field the
// wider gnark/gnark-crypto ecosystem builds arithmetic circuits over.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a field element. Arithmetic is Montgomery-form under the hood
// (see gnark-crypto); callers only ever see canonical values via Bytes/BigInt.
type Element = fr.Element

// Zero returns the additive identity.
func Zero() Element {
	var z Element
	return z
}

// FromUint64 injects an unsigned machine integer into the field.
func FromUint64(v uint64) Element {
	var z Element
	z.SetUint64(v)
	return z
}

// FromInt64 injects a signed machine integer into the field, reducing
// negative values modulo the field order (Go's big.Int.Mod is Euclidean:
// the result is always in [0, modulus)).
func FromInt64(v int64) Element {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	bi := big.NewInt(v)
	bi.Mod(bi, Modulus())
	var z Element
	z.SetBigInt(bi)
	return z
}

// FromBigInt injects an arbitrary-precision integer into the field, reducing
// modulo the field order.
func FromBigInt(v *big.Int) Element {
	var z Element
	z.SetBigInt(v)
	return z
}

// Modulus returns the field's prime order.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Bytes returns the canonical 32-byte big-endian representation, used as the
// byte key for cache lookups and as the wire representation of a scalar
// pointer component.
func Bytes(e *Element) [32]byte {
	return e.Bytes()
}
