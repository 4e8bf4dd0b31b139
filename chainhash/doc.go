// Package chainhash defines the hash functions used in the consensus code.
//
// This package provides a wrapper around the hash function used so that
// code needing a hash doesn't have to hard-code which one, and does not
// have to care whether it's stored big-endian or little-endian internally.
package chainhash
