// SPDX-License-Identifier: MIT

// Package numeric declares the capability contracts shared by every element
// type in lvmath, together with the small scalar helpers that generic code
// needs (zero/one, sign, absolute value, square root, tolerant comparison)
// and a deterministic random source.
//
// The contracts are Go type-set constraints rather than interfaces with
// methods: any type whose underlying type is a built-in integer or floating
// point type satisfies Number, and therefore supports + - * /, ordering and
// conversion from int.
//
//	Number   = Integer | Float
//	Integer  = Signed | Unsigned
//	Float    = ~float32 | ~float64
//
// Randomizable types draw values through Source (see random.go), which wraps
// math/rand with a reproducible seed policy: seed 0 selects DefaultSeed.
package numeric
