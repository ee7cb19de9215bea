package rpc

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
)

func (r *Repository) CreateCollection(ctx context.Context, arg datagateway.CreateCollectionParams) (*entity.Collection, *entity.Submission, error) {
	result, slot, err := r.write(ctx, methodCreateCollection, collectionDTO{
		Name:                 arg.Name,
		URI:                  arg.URI,
		SellerFeeBasisPoints: arg.SellerFeeBasisPoints,
		IsCollection:         arg.IsCollection,
		UpdateAuthority:      arg.UpdateAuthority,
	})
	if err != nil {
		return nil, nil, err
	}
	if result.Address == nil {
		return nil, nil, errors.Wrap(errs.NetworkFailure, "collection address missing from response")
	}

	return &entity.Collection{
			Address:              *result.Address,
			Name:                 arg.Name,
			URI:                  arg.URI,
			SellerFeeBasisPoints: arg.SellerFeeBasisPoints,
			IsCollection:         arg.IsCollection,
			UpdateAuthority:      arg.UpdateAuthority,
		}, &entity.Submission{
			Signature: result.Signature,
			Slot:      slot,
		}, nil
}
