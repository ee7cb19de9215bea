package lamports

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/shopspring/decimal"
)

const (
	SolDecimals = 9
)

var (
	// lamportsUnit is 10^9
	lamportsUnit = decimal.New(1, SolDecimals)

	maxLamports = fromUint64(math.MaxUint64)
)

// FromSol converts an amount in SOL to lamports.
// The amount must be positive or zero and can't be more precise than one lamport.
func FromSol(sol decimal.Decimal) (uint64, error) {
	if sol.IsNegative() {
		return 0, errors.Wrapf(errs.InvalidArgument, "negative amount %s SOL", sol)
	}
	amount := sol.Mul(lamportsUnit)
	if !amount.Equal(amount.Truncate(0)) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s SOL is more precise than one lamport", sol)
	}
	if amount.GreaterThan(maxLamports) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s SOL overflows uint64 lamports", sol)
	}
	return amount.BigInt().Uint64(), nil
}

// ParseSol parses a decimal SOL amount (e.g. "0.1") into lamports.
func ParseSol(s string) (uint64, error) {
	sol, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(errs.InvalidArgument, "invalid SOL amount %q", s)
	}
	return FromSol(sol)
}

// ToSol converts an amount in lamports to SOL.
func ToSol(lamports uint64) decimal.Decimal {
	return fromUint64(lamports).Shift(-SolDecimals)
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
