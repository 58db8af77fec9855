// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing provides the hash function used to derive flight keys.
package hashing

import "crypto/sha256"

const HashLen = sha256.Size

// Hash256 is a 32 byte hash digest.
type Hash256 = [HashLen]byte

// ComputeHash256Array computes the SHA-256 hash of [buf].
func ComputeHash256Array(buf []byte) Hash256 {
	return sha256.Sum256(buf)
}

// ComputeHash256 computes the SHA-256 hash of [buf] as a byte slice.
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}
