package errs

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKindWrapping(t *testing.T) {
	err := errors.Wrapf(InsufficientFunds, "balance %d lamports", 42)
	err = errors.Wrap(err, "mint")

	assert.ErrorIs(t, err, InsufficientFunds)
	assert.NotErrorIs(t, err, GuardRejected)
	assert.Equal(t, "mint: balance 42 lamports: Insufficient Funds", err.Error())
}

func TestPublicError(t *testing.T) {
	err := WithPublicMessage(errors.Wrap(SupplyExhausted, "machine"), "can't mint")

	var publicErr *PublicError
	if assert.True(t, errors.As(err, &publicErr)) {
		assert.Equal(t, "can't mint: machine: Supply Exhausted", publicErr.Message())
	}
	assert.ErrorIs(t, err, SupplyExhausted)
	assert.Nil(t, WithPublicMessage(nil, "ignored"))
}
