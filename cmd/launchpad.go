package cmd

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/internal/config"
	"github.com/gaze-network/nft-launchpad/modules/launchpad"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/usecase"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
	"github.com/samber/do/v2"
)

// Register Modules
var Modules = do.Package(
	do.Lazy(launchpad.New),
)

// newLaunchpad wires the launchpad usecase from the loaded configuration.
func newLaunchpad(ctx context.Context) (*usecase.Usecase, config.Config, error) {
	conf := config.Load()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Load operator key pair
	do.Provide(injector, func(i do.Injector) (*keypair.KeyPair, error) {
		operator, err := loadOperator(do.MustInvoke[config.Config](i))
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "Loaded operator key pair", slogx.Stringer("operator", operator.PublicKey()))
		return operator, nil
	})

	launchpadUsecase, err := do.Invoke[*usecase.Usecase](injector)
	if err != nil {
		return nil, config.Config{}, errors.WithStack(err)
	}
	return launchpadUsecase, conf, nil
}

// newStageLaunchpad is newLaunchpad for stages that read an address created by an earlier run.
func newStageLaunchpad(ctx context.Context, command string) (*usecase.Usecase, config.Config, error) {
	if err := checkStageSimulate(config.Load(), command); err != nil {
		return nil, config.Config{}, err
	}
	return newLaunchpad(ctx)
}

// checkStageSimulate rejects simulate mode for a stage run on its own,
// the simulated ledger only lives as long as the process.
func checkStageSimulate(conf config.Config, command string) error {
	if !conf.Launchpad.Simulate {
		return nil
	}
	return errs.WithPublicMessage(
		errors.Wrapf(errs.Unsupported, "%s can't run in simulate mode", command),
		"a simulated ledger doesn't outlive the process, use `launchpad run-all --simulate` instead",
	)
}

func loadOperator(conf config.Config) (*keypair.KeyPair, error) {
	operator, err := keypair.Load(conf.Keypair)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errs.WithPublicMessage(errors.WithStack(err), "create the operator key pair with `launchpad generate-keypair` or pass its path with --keypair")
		}
		return nil, errs.WithPublicMessage(errors.WithStack(err), "can't load operator key pair")
	}
	return operator, nil
}

func parseAddress(flag, value string) (keypair.PublicKey, error) {
	address, err := keypair.ParsePublicKey(value)
	if err != nil {
		return keypair.PublicKey{}, errs.WithPublicMessage(errors.WithStack(err), "invalid --"+flag)
	}
	return address, nil
}
