package resolver

import "github.com/gagliardetto/solana-go/rpc"

// ParseCommitment maps a commitment preference to a commitment level.
// Unrecognized values fall back to confirmed; it never fails.
func ParseCommitment(commitment string) rpc.CommitmentType {
	switch commitment {
	case "processed":
		return rpc.CommitmentProcessed
	case "confirmed":
		return rpc.CommitmentConfirmed
	case "finalized":
		return rpc.CommitmentFinalized
	default:
		return rpc.CommitmentConfirmed
	}
}

func IsKnownCommitment(commitment string) bool {
	switch commitment {
	case "processed", "confirmed", "finalized":
		return true
	}
	return false
}
