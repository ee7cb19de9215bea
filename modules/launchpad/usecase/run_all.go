package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
)

type RunAllResult struct {
	Collection *CollectionResult
	Machine    *MachineResult
	Guards     *GuardsResult
	Items      *ItemsResult
	Mint       *MintResult
}

// RunAll runs every stage in order, each one consuming the address its predecessor created.
// The result holds the outcome of the stages that succeeded.
func (u *Usecase) RunAll(ctx context.Context) (*RunAllResult, error) {
	var (
		result RunAllResult
		err    error
	)
	if result.Collection, err = u.CreateCollection(ctx); err != nil {
		return &result, errors.WithStack(err)
	}
	if result.Machine, err = u.CreateMachine(ctx, result.Collection.Collection.Address); err != nil {
		return &result, errors.WithStack(err)
	}
	machine := result.Machine.Machine.Address
	if result.Guards, err = u.ConfigureGuards(ctx, machine); err != nil {
		return &result, errors.WithStack(err)
	}
	if result.Items, err = u.AddItems(ctx, machine); err != nil {
		return &result, errors.WithStack(err)
	}
	if result.Mint, err = u.MintItem(ctx, machine); err != nil {
		return &result, errors.WithStack(err)
	}
	return &result, nil
}
