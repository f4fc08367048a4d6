package escrowman

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// ComputeHashlock hashes the secret with keccak256, the scheme the
// escrow contract verifies on withdrawal. Using any other digest here
// would make every withdrawal fail with a secret mismatch.
func ComputeHashlock(secret [32]byte) [32]byte {
	return crypto.Keccak256Hash(secret[:])
}

// VerifySecret reports whether the secret is the preimage of hashlock.
func VerifySecret(hashlock, secret [32]byte) bool {
	return ComputeHashlock(secret) == hashlock
}
