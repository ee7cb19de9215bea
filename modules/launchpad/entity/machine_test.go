package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMachineCounters(t *testing.T) {
	machine := &Machine{ItemsAvailable: 3}
	assert.Equal(t, uint64(3), machine.ItemsRemaining())
	assert.Equal(t, uint64(0), machine.ItemsMintable())
	assert.False(t, machine.IsFullyLoaded())

	machine.ItemsLoaded = 3
	machine.ItemsRedeemed = 1
	assert.Equal(t, uint64(2), machine.ItemsRemaining())
	assert.Equal(t, uint64(2), machine.ItemsMintable())
	assert.True(t, machine.IsFullyLoaded())
}

func TestGuardSetNames(t *testing.T) {
	assert.True(t, GuardSet{}.IsEmpty())

	guards := GuardSet{
		StartDate:  &StartDateGuard{Date: time.Unix(0, 0)},
		SolPayment: &SolPaymentGuard{Lamports: 1},
	}
	assert.Equal(t, []string{GuardStartDate, GuardSolPayment}, guards.Names())

	guards.MintLimit = &MintLimitGuard{ID: 1, Limit: 2}
	assert.Equal(t, 3, guards.Count())
}

func TestTotalShare(t *testing.T) {
	assert.Equal(t, 100, TotalShare([]Creator{{Share: 60}, {Share: 40}}))
	assert.Equal(t, 0, TotalShare(nil))
}
