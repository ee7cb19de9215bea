package usecase

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
	"github.com/samber/lo"
)

type ItemsResult struct {
	Machine    keypair.PublicKey
	Items      []entity.Item
	Submission *entity.Submission
}

func (s Settings) itemName(index uint64) string {
	return s.Items.NamePrefix + strconv.FormatUint(index+1, 10)
}

// BuildItems returns the descriptors of inventory positions [from, to).
func (s Settings) BuildItems(from, to uint64) []entity.Item {
	if to <= from {
		return nil
	}
	return lo.Times(int(to-from), func(i int) entity.Item {
		return entity.Item{
			Name: s.itemName(from + uint64(i)),
			URI:  s.MetadataURI,
		}
	})
}

// AddItems fills the machine inventory in a single insertion.
func (u *Usecase) AddItems(ctx context.Context, machineAddress keypair.PublicKey) (*ItemsResult, error) {
	machine, err := u.getOwnedMachine(ctx, machineAddress)
	if err != nil {
		return nil, err
	}
	if machine.IsFullyLoaded() {
		return nil, errors.Wrapf(errs.ValidationFailure, "machine %s already holds %d items", machine.Address, machine.ItemsLoaded)
	}

	items := u.settings.BuildItems(machine.ItemsLoaded, machine.ItemsAvailable)
	submission, err := u.ledgerDg.InsertItems(ctx, datagateway.InsertItemsParams{
		Machine: machine.Address,
		Index:   machine.ItemsLoaded,
		Items:   items,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't insert items into machine %s", machine.Address)
	}

	logger.InfoContext(ctx, "Inserted items",
		slogx.Stringer("machine", machine.Address),
		slogx.Int("count", len(items)),
		slogx.Stringer("signature", submission.Signature),
	)
	return &ItemsResult{
		Machine:    machine.Address,
		Items:      items,
		Submission: submission,
	}, nil
}
