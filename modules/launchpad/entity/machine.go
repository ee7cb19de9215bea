package entity

import "github.com/gaze-network/nft-launchpad/pkg/keypair"

// Machine is a minting contract governing supply, pricing and access rules
// for issuing a bounded series of tokens of a collection.
type Machine struct {
	Address              keypair.PublicKey
	Authority            keypair.PublicKey
	Collection           keypair.PublicKey
	Symbol               string
	ItemsAvailable       uint64
	ItemsLoaded          uint64
	ItemsRedeemed        uint64
	SellerFeeBasisPoints uint16
	MaxEditionSupply     uint64
	IsMutable            bool
	Creators             []Creator
	Guards               GuardSet
	Items                []Item
}

// ItemsRemaining returns how many items can still be minted once fully loaded.
func (m *Machine) ItemsRemaining() uint64 {
	if m.ItemsRedeemed >= m.ItemsAvailable {
		return 0
	}
	return m.ItemsAvailable - m.ItemsRedeemed
}

// ItemsMintable returns how many loaded items are not minted yet.
func (m *Machine) ItemsMintable() uint64 {
	if m.ItemsRedeemed >= m.ItemsLoaded {
		return 0
	}
	return m.ItemsLoaded - m.ItemsRedeemed
}

// IsFullyLoaded reports whether the inventory holds ItemsAvailable items.
func (m *Machine) IsFullyLoaded() bool {
	return m.ItemsLoaded >= m.ItemsAvailable
}
