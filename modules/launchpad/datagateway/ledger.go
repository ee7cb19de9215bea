package datagateway

import (
	"context"

	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
)

// LedgerDataGateway is the remote ledger the launchpad stages are submitted to.
// Every write returns once the transaction is finalized.
type LedgerDataGateway interface {
	CreateCollection(ctx context.Context, arg CreateCollectionParams) (*entity.Collection, *entity.Submission, error)
	CreateMachine(ctx context.Context, arg CreateMachineParams) (*entity.Machine, *entity.Submission, error)
	GetMachine(ctx context.Context, address keypair.PublicKey) (*entity.Machine, error)
	UpdateGuards(ctx context.Context, arg UpdateGuardsParams) (*entity.Submission, error)
	InsertItems(ctx context.Context, arg InsertItemsParams) (*entity.Submission, error)
	Mint(ctx context.Context, arg MintParams) (*entity.Minted, error)
	GetBalance(ctx context.Context, address keypair.PublicKey) (uint64, error)
}

type CreateCollectionParams struct {
	Name                 string
	URI                  string
	SellerFeeBasisPoints uint16
	IsCollection         bool
	UpdateAuthority      keypair.PublicKey
}

type CreateMachineParams struct {
	Authority                 keypair.PublicKey
	Collection                keypair.PublicKey
	CollectionUpdateAuthority keypair.PublicKey
	Symbol                    string
	ItemsAvailable            uint64
	SellerFeeBasisPoints      uint16
	MaxEditionSupply          uint64
	IsMutable                 bool
	Creators                  []entity.Creator
}

type UpdateGuardsParams struct {
	Machine keypair.PublicKey
	Guards  entity.GuardSet
}

type InsertItemsParams struct {
	Machine keypair.PublicKey
	// Index is the inventory position of the first item.
	Index uint64
	Items []entity.Item
}

type MintParams struct {
	Machine                   keypair.PublicKey
	Owner                     keypair.PublicKey
	CollectionUpdateAuthority keypair.PublicKey
}
