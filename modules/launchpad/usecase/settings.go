package usecase

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
)

const (
	DefaultMetadataURI    = "https://bqp23v2j76qrmk5yqn73hbtbhntcfcwavvgia5gshk3wbqk54k4a.arweave.net/DB-t10n_oRYruIN_s4ZhO2YiisCtTIB00jq3YMFd4rg"
	DefaultCollectionName = "Dreams of Summer NFT Collection"
	DefaultItemNamePrefix = "Dreams of Summer NFT # "
	DefaultSymbol         = "DOSPX"

	maxBasisPoints = 10000
)

// DefaultStartDate is the first moment minting is allowed.
var DefaultStartDate = time.Date(2023, time.February, 24, 17, 0, 0, 0, time.UTC)

// Settings drives what every stage submits.
type Settings struct {
	// MetadataURI is shared by the collection and every item.
	MetadataURI string
	Collection  CollectionSettings
	Machine     MachineSettings
	Guards      GuardSettings
	Items       ItemSettings
}

type CollectionSettings struct {
	Name                 string
	SellerFeeBasisPoints uint16
}

type MachineSettings struct {
	ItemsAvailable       uint64
	SellerFeeBasisPoints uint16
	Symbol               string
	MaxEditionSupply     uint64
	IsMutable            bool
}

type GuardSettings struct {
	StartDate   time.Time
	MintLimitID uint8
	MintLimit   uint16
	// SolPayment is the price of one mint in lamports.
	SolPayment uint64
}

type ItemSettings struct {
	// NamePrefix is followed by the 1-based item number.
	NamePrefix string
}

func DefaultSettings() Settings {
	return Settings{
		MetadataURI: DefaultMetadataURI,
		Collection: CollectionSettings{
			Name:                 DefaultCollectionName,
			SellerFeeBasisPoints: 0,
		},
		Machine: MachineSettings{
			ItemsAvailable:       3,
			SellerFeeBasisPoints: 1000,
			Symbol:               DefaultSymbol,
			MaxEditionSupply:     0,
			IsMutable:            true,
		},
		Guards: GuardSettings{
			StartDate:   DefaultStartDate,
			MintLimitID: 1,
			MintLimit:   2,
			SolPayment:  100_000_000,
		},
		Items: ItemSettings{
			NamePrefix: DefaultItemNamePrefix,
		},
	}
}

func (s Settings) Validate() error {
	switch {
	case s.MetadataURI == "":
		return errors.Wrap(errs.ArgumentRequired, "metadata uri is required")
	case len(s.MetadataURI) > entity.MaxItemURILength:
		return errors.Wrapf(errs.InvalidArgument, "metadata uri is longer than %d bytes", entity.MaxItemURILength)
	case s.Collection.Name == "":
		return errors.Wrap(errs.ArgumentRequired, "collection name is required")
	case len(s.Collection.Name) > entity.MaxItemNameLength:
		return errors.Wrapf(errs.InvalidArgument, "collection name is longer than %d bytes", entity.MaxItemNameLength)
	case s.Collection.SellerFeeBasisPoints > maxBasisPoints:
		return errors.Wrapf(errs.InvalidArgument, "collection royalty %d exceeds %d basis points", s.Collection.SellerFeeBasisPoints, maxBasisPoints)
	case s.Machine.ItemsAvailable == 0:
		return errors.Wrap(errs.InvalidArgument, "items available must be positive")
	case s.Machine.SellerFeeBasisPoints > maxBasisPoints:
		return errors.Wrapf(errs.InvalidArgument, "machine royalty %d exceeds %d basis points", s.Machine.SellerFeeBasisPoints, maxBasisPoints)
	case len(s.Machine.Symbol) > entity.MaxSymbolLength:
		return errors.Wrapf(errs.InvalidArgument, "symbol %q is longer than %d bytes", s.Machine.Symbol, entity.MaxSymbolLength)
	case s.Guards.MintLimit == 0:
		return errors.Wrap(errs.InvalidArgument, "mint limit must be positive")
	case len(s.itemName(s.Machine.ItemsAvailable-1)) > entity.MaxItemNameLength:
		return errors.Wrapf(errs.InvalidArgument, "item name %q is longer than %d bytes", s.itemName(s.Machine.ItemsAvailable-1), entity.MaxItemNameLength)
	}
	return nil
}
