package config

import (
	"time"

	"github.com/gaze-network/nft-launchpad/modules/launchpad/usecase"
	"github.com/gaze-network/nft-launchpad/pkg/lamports"
)

// defaultSimulateAirdrop is 2 SOL.
const defaultSimulateAirdrop = 2_000_000_000

type Config struct {
	MetadataURI string     `mapstructure:"metadata_uri"` // Pre-uploaded metadata shared by the collection and every item.
	Collection  Collection `mapstructure:"collection"`
	Machine     Machine    `mapstructure:"machine"`
	Guards      Guards     `mapstructure:"guards"`
	Items       Items      `mapstructure:"items"`

	// Simulate runs every stage against an in-process ledger instead of the RPC endpoint.
	Simulate        bool   `mapstructure:"simulate"`
	SimulateAirdrop string `mapstructure:"simulate_airdrop"` // SOL credited to the operator in simulate mode.
}

type Collection struct {
	Name                 string `mapstructure:"name"`
	SellerFeeBasisPoints uint16 `mapstructure:"seller_fee_basis_points"`
}

type Machine struct {
	ItemsAvailable       uint64 `mapstructure:"items_available"`
	SellerFeeBasisPoints uint16 `mapstructure:"seller_fee_basis_points"`
	Symbol               string `mapstructure:"symbol"`
	MaxEditionSupply     uint64 `mapstructure:"max_edition_supply"`
	IsMutable            bool   `mapstructure:"is_mutable"`
}

type Guards struct {
	StartDate   time.Time `mapstructure:"start_date"`
	MintLimitID uint8     `mapstructure:"mint_limit_id"`
	MintLimit   uint16    `mapstructure:"mint_limit"`
	SolPayment  string    `mapstructure:"sol_payment"` // Price of one mint in SOL, E.g. `0.1`
}

type Items struct {
	NamePrefix string `mapstructure:"name_prefix"`
}

// Default returns the configuration matching usecase.DefaultSettings.
func Default() Config {
	settings := usecase.DefaultSettings()
	return Config{
		MetadataURI: settings.MetadataURI,
		Collection: Collection{
			Name:                 settings.Collection.Name,
			SellerFeeBasisPoints: settings.Collection.SellerFeeBasisPoints,
		},
		Machine: Machine{
			ItemsAvailable:       settings.Machine.ItemsAvailable,
			SellerFeeBasisPoints: settings.Machine.SellerFeeBasisPoints,
			Symbol:               settings.Machine.Symbol,
			MaxEditionSupply:     settings.Machine.MaxEditionSupply,
			IsMutable:            settings.Machine.IsMutable,
		},
		Guards: Guards{
			StartDate:   settings.Guards.StartDate,
			MintLimitID: settings.Guards.MintLimitID,
			MintLimit:   settings.Guards.MintLimit,
			SolPayment:  lamports.ToSol(settings.Guards.SolPayment).String(),
		},
		Items: Items{
			NamePrefix: settings.Items.NamePrefix,
		},
		SimulateAirdrop: lamports.ToSol(defaultSimulateAirdrop).String(),
	}
}
