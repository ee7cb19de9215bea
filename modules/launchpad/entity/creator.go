package entity

import (
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/samber/lo"
)

// Creator receives Share percent of the royalties.
type Creator struct {
	Address keypair.PublicKey
	Share   uint8
}

// TotalShare returns the sum of creator shares, which must be 100.
func TotalShare(creators []Creator) int {
	return lo.SumBy(creators, func(c Creator) int { return int(c.Share) })
}
