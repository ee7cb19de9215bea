package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
)

type CollectionResult struct {
	Collection *entity.Collection
	Submission *entity.Submission
}

// CreateCollection mints the collection token every machine item belongs to.
func (u *Usecase) CreateCollection(ctx context.Context) (*CollectionResult, error) {
	if err := u.settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}

	collection, submission, err := u.ledgerDg.CreateCollection(ctx, datagateway.CreateCollectionParams{
		Name:                 u.settings.Collection.Name,
		URI:                  u.settings.MetadataURI,
		SellerFeeBasisPoints: u.settings.Collection.SellerFeeBasisPoints,
		IsCollection:         true,
		UpdateAuthority:      u.operator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create collection")
	}

	logger.InfoContext(ctx, "Created collection",
		slogx.Stringer("collection", collection.Address),
		slogx.Stringer("signature", submission.Signature),
	)
	return &CollectionResult{
		Collection: collection,
		Submission: submission,
	}, nil
}
