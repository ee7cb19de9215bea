package rpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
)

var commitmentRank = map[string]int{
	CommitmentProcessed: 0,
	CommitmentConfirmed: 1,
	CommitmentFinalized: 2,
}

// waitForConfirmation polls the signature status until it reaches the configured commitment.
// It returns the slot the transaction landed in.
func (r *Repository) waitForConfirmation(ctx context.Context, signature keypair.Signature) (uint64, error) {
	if r.config.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.ConfirmTimeout)
		defer cancel()
	}

	start := time.Now()
	ticker := time.NewTicker(r.config.PollInterval)
	defer ticker.Stop()

	for {
		status, err := r.getSignatureStatus(ctx, signature)
		if err != nil {
			if ctx.Err() != nil {
				return 0, r.waitError(ctx)
			}
			return 0, err
		}
		if status != nil {
			if status.Err != nil {
				return 0, errors.Wrapf(errs.ValidationFailure, "transaction failed: %v", status.Err)
			}
			if commitmentRank[string(status.ConfirmationStatus)] >= commitmentRank[r.config.Commitment] {
				logger.DebugContext(ctx, "transaction confirmed",
					slog.String("signature", signature.String()),
					slog.String("commitment", string(status.ConfirmationStatus)),
					slog.Duration("latency", time.Since(start)),
				)
				return status.Slot, nil
			}
		}

		select {
		case <-ctx.Done():
			return 0, r.waitError(ctx)
		case <-ticker.C:
		}
	}
}

func (r *Repository) waitError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrapf(errs.Timeout, "waiting for %s commitment", r.config.Commitment)
	}
	return errors.WithStack(ctx.Err())
}

// getSignatureStatus returns nil while the cluster hasn't seen the signature.
func (r *Repository) getSignatureStatus(ctx context.Context, signature keypair.Signature) (*solanarpc.SignatureStatusesResult, error) {
	result, err := r.cluster.GetSignatureStatuses(ctx, true, signature)
	if err != nil {
		return nil, mapClusterError(err, methodGetSignatureStatuses)
	}
	if result == nil || len(result.Value) == 0 {
		return nil, nil
	}
	return result.Value[0], nil
}
