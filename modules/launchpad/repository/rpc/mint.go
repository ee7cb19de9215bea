package rpc

import (
	"context"

	"github.com/cockroachdb/errors"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
)

type mintPayload struct {
	Machine                   keypair.PublicKey `json:"machine"`
	Owner                     keypair.PublicKey `json:"owner"`
	CollectionUpdateAuthority keypair.PublicKey `json:"collectionUpdateAuthority"`
}

func (r *Repository) Mint(ctx context.Context, arg datagateway.MintParams) (*entity.Minted, error) {
	result, slot, err := r.write(ctx, methodMint, mintPayload{
		Machine:                   arg.Machine,
		Owner:                     arg.Owner,
		CollectionUpdateAuthority: arg.CollectionUpdateAuthority,
	})
	if err != nil {
		return nil, err
	}
	if result.Address == nil {
		return nil, errors.Wrap(errs.NetworkFailure, "minted address missing from response")
	}
	minted := &entity.Minted{
		Submission: entity.Submission{Signature: result.Signature, Slot: slot},
		Address:    *result.Address,
	}
	// the program picks the config line, older endpoints don't report it
	if result.Item != nil {
		minted.Item = mapItemToEntity(*result.Item)
		minted.Item.Minted = true
	}
	return minted, nil
}

// GetBalance reads the lamport balance from the cluster.
func (r *Repository) GetBalance(ctx context.Context, address keypair.PublicKey) (uint64, error) {
	result, err := r.cluster.GetBalance(ctx, address, solanarpc.CommitmentType(r.config.Commitment))
	if err != nil {
		return 0, mapClusterError(err, methodGetBalance)
	}
	return result.Value, nil
}
