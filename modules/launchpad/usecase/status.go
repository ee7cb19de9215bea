package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"golang.org/x/sync/errgroup"
)

type StatusResult struct {
	Machine *entity.Machine
	// Balance of the operator in lamports.
	Balance uint64
}

// Status fetches the machine state and the operator balance.
func (u *Usecase) Status(ctx context.Context, machineAddress keypair.PublicKey) (*StatusResult, error) {
	var result StatusResult
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		machine, err := u.ledgerDg.GetMachine(gctx, machineAddress)
		if err != nil {
			return errors.Wrapf(err, "can't get machine %s", machineAddress)
		}
		result.Machine = machine
		return nil
	})
	group.Go(func() error {
		balance, err := u.ledgerDg.GetBalance(gctx, u.operator)
		if err != nil {
			return errors.Wrap(err, "can't get operator balance")
		}
		result.Balance = balance
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}
