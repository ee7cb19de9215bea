package launchpad

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/internal/config"
	launchpadconfig "github.com/gaze-network/nft-launchpad/modules/launchpad/config"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/repository/memory"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/repository/rpc"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/usecase"
	"github.com/gaze-network/nft-launchpad/pkg/httpclient"
	"github.com/gaze-network/nft-launchpad/pkg/jsonrpc"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/lamports"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/samber/do/v2"
)

const Version = "v0.1.0"

func New(injector do.Injector) (*usecase.Usecase, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	operator, err := do.Invoke[*keypair.KeyPair](injector)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	settings, err := NewSettings(conf.Launchpad)
	if err != nil {
		return nil, errors.Wrap(err, "invalid launchpad configuration")
	}

	var ledgerDg datagateway.LedgerDataGateway
	if conf.Launchpad.Simulate {
		airdrop, err := lamports.ParseSol(conf.Launchpad.SimulateAirdrop)
		if err != nil {
			return nil, errors.Wrap(err, "invalid simulate airdrop amount")
		}
		memoryRepo := memory.New()
		memoryRepo.Airdrop(operator.PublicKey(), airdrop)
		ledgerDg = memoryRepo
		logger.WarnContext(ctx, "Simulate mode, nothing is submitted to the network",
			slog.String("airdrop", lamports.ToSol(airdrop).String()),
		)
	} else {
		if !conf.Network.IsSupported() {
			return nil, errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network.String())
		}
		if conf.RPC.Endpoint == "" {
			return nil, errs.WithPublicMessage(
				errors.Wrap(errs.ArgumentRequired, "rpc.endpoint is not set"),
				"pass the launchpad API endpoint with --rpc, public cluster endpoints don't serve it, or use --simulate",
			)
		}
		client, err := jsonrpc.New(conf.RPC.Endpoint, httpclient.Config{
			Debug: conf.RPC.Debug,
		})
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "invalid rpc endpoint")
			}
			return nil, errors.Wrap(err, "can't create rpc client")
		}
		clusterEndpoint := conf.ClusterRPCEndpoint()
		ledgerDg = rpc.New(client, solanarpc.New(clusterEndpoint), operator, rpc.Config{
			Commitment:     conf.RPC.Commitment,
			PollInterval:   conf.RPC.PollInterval,
			ConfirmTimeout: conf.RPC.ConfirmTimeout,
		})
		logger.DebugContext(ctx, "Using rpc endpoints",
			slog.String("launchpad", conf.RPC.Endpoint),
			slog.String("cluster", clusterEndpoint),
		)
	}

	return usecase.New(ledgerDg, operator.PublicKey(), settings), nil
}

// NewSettings converts the launchpad configuration into validated workflow settings.
func NewSettings(conf launchpadconfig.Config) (usecase.Settings, error) {
	payment, err := lamports.ParseSol(conf.Guards.SolPayment)
	if err != nil {
		return usecase.Settings{}, errors.Wrap(err, "invalid sol payment")
	}
	settings := usecase.Settings{
		MetadataURI: conf.MetadataURI,
		Collection: usecase.CollectionSettings{
			Name:                 conf.Collection.Name,
			SellerFeeBasisPoints: conf.Collection.SellerFeeBasisPoints,
		},
		Machine: usecase.MachineSettings{
			ItemsAvailable:       conf.Machine.ItemsAvailable,
			SellerFeeBasisPoints: conf.Machine.SellerFeeBasisPoints,
			Symbol:               conf.Machine.Symbol,
			MaxEditionSupply:     conf.Machine.MaxEditionSupply,
			IsMutable:            conf.Machine.IsMutable,
		},
		Guards: usecase.GuardSettings{
			StartDate:   conf.Guards.StartDate.UTC(),
			MintLimitID: conf.Guards.MintLimitID,
			MintLimit:   conf.Guards.MintLimit,
			SolPayment:  payment,
		},
		Items: usecase.ItemSettings{
			NamePrefix: conf.Items.NamePrefix,
		},
	}
	if err := settings.Validate(); err != nil {
		return usecase.Settings{}, errors.WithStack(err)
	}
	return settings, nil
}
