package rpc

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
)

type createMachinePayload struct {
	Authority                 keypair.PublicKey `json:"authority"`
	Collection                keypair.PublicKey `json:"collection"`
	CollectionUpdateAuthority keypair.PublicKey `json:"collectionUpdateAuthority"`
	Symbol                    string            `json:"symbol"`
	ItemsAvailable            uint64            `json:"itemsAvailable"`
	SellerFeeBasisPoints      uint16            `json:"sellerFeeBasisPoints"`
	MaxEditionSupply          uint64            `json:"maxEditionSupply"`
	IsMutable                 bool              `json:"isMutable"`
	Creators                  []creatorDTO      `json:"creators"`
}

func (r *Repository) CreateMachine(ctx context.Context, arg datagateway.CreateMachineParams) (*entity.Machine, *entity.Submission, error) {
	result, slot, err := r.write(ctx, methodCreateMachine, createMachinePayload{
		Authority:                 arg.Authority,
		Collection:                arg.Collection,
		CollectionUpdateAuthority: arg.CollectionUpdateAuthority,
		Symbol:                    arg.Symbol,
		ItemsAvailable:            arg.ItemsAvailable,
		SellerFeeBasisPoints:      arg.SellerFeeBasisPoints,
		MaxEditionSupply:          arg.MaxEditionSupply,
		IsMutable:                 arg.IsMutable,
		Creators:                  mapCreatorsToDTO(arg.Creators),
	})
	if err != nil {
		return nil, nil, err
	}
	if result.Address == nil {
		return nil, nil, errors.Wrap(errs.NetworkFailure, "machine address missing from response")
	}

	return &entity.Machine{
			Address:              *result.Address,
			Authority:            arg.Authority,
			Collection:           arg.Collection,
			Symbol:               arg.Symbol,
			ItemsAvailable:       arg.ItemsAvailable,
			SellerFeeBasisPoints: arg.SellerFeeBasisPoints,
			MaxEditionSupply:     arg.MaxEditionSupply,
			IsMutable:            arg.IsMutable,
			Creators:             arg.Creators,
		}, &entity.Submission{
			Signature: result.Signature,
			Slot:      slot,
		}, nil
}

func (r *Repository) GetMachine(ctx context.Context, address keypair.PublicKey) (*entity.Machine, error) {
	var dto *machineDTO
	params := []any{address, commitmentConfig{Commitment: r.config.Commitment}}
	if err := r.client.Call(ctx, methodGetMachine, params, &dto); err != nil {
		return nil, mapError(err, methodGetMachine)
	}
	if dto == nil {
		return nil, errors.Wrapf(errs.NotFound, "machine %s", address)
	}
	return mapMachineToEntity(*dto), nil
}

type updateGuardsPayload struct {
	Machine keypair.PublicKey `json:"machine"`
	Guards  guardSetDTO       `json:"guards"`
}

func (r *Repository) UpdateGuards(ctx context.Context, arg datagateway.UpdateGuardsParams) (*entity.Submission, error) {
	result, slot, err := r.write(ctx, methodUpdateGuards, updateGuardsPayload{
		Machine: arg.Machine,
		Guards:  mapGuardsToDTO(arg.Guards),
	})
	if err != nil {
		return nil, err
	}
	return &entity.Submission{Signature: result.Signature, Slot: slot}, nil
}

type insertItemsPayload struct {
	Machine keypair.PublicKey `json:"machine"`
	Index   uint64            `json:"index"`
	Items   []itemDTO         `json:"items"`
}

func (r *Repository) InsertItems(ctx context.Context, arg datagateway.InsertItemsParams) (*entity.Submission, error) {
	result, slot, err := r.write(ctx, methodInsertItems, insertItemsPayload{
		Machine: arg.Machine,
		Index:   arg.Index,
		Items:   mapItemsToDTO(arg.Items),
	})
	if err != nil {
		return nil, err
	}
	return &entity.Submission{Signature: result.Signature, Slot: slot}, nil
}
