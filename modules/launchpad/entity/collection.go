package entity

import "github.com/gaze-network/nft-launchpad/pkg/keypair"

// Collection is a top-level token that other tokens reference as members.
type Collection struct {
	Address              keypair.PublicKey
	Name                 string
	URI                  string
	SellerFeeBasisPoints uint16
	IsCollection         bool
	UpdateAuthority      keypair.PublicKey
}
