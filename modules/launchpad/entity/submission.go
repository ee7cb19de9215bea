package entity

import "github.com/gaze-network/nft-launchpad/pkg/keypair"

// Submission is a finalized ledger transaction.
type Submission struct {
	Signature keypair.Signature
	Slot      uint64
}

// Minted is the outcome of one issuance.
type Minted struct {
	Submission
	Address keypair.PublicKey
	Item    Item
}
