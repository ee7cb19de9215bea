package launchpad

import (
	"context"
	"testing"

	"github.com/gaze-network/nft-launchpad/common"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/internal/config"
	launchpadconfig "github.com/gaze-network/nft-launchpad/modules/launchpad/config"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/usecase"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	settings, err := NewSettings(launchpadconfig.Default())
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultSettings(), settings)

	conf := launchpadconfig.Default()
	conf.Guards.SolPayment = "0.0000000001"
	_, err = NewSettings(conf)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestNewSimulated(t *testing.T) {
	operator, err := keypair.Generate()
	require.NoError(t, err)

	conf := config.Config{Network: common.NetworkDevnet, Launchpad: launchpadconfig.Default()}
	conf.Launchpad.Simulate = true

	injector := do.New()
	do.ProvideValue(injector, context.Background())
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, operator)

	launchpadUsecase, err := New(injector)
	require.NoError(t, err)
	assert.Equal(t, operator.PublicKey(), launchpadUsecase.Operator())

	result, err := launchpadUsecase.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.Mint.ItemsRemaining)
}

func TestNewUnsupportedNetwork(t *testing.T) {
	operator, err := keypair.Generate()
	require.NoError(t, err)

	injector := do.New()
	do.ProvideValue(injector, context.Background())
	do.ProvideValue(injector, config.Config{Network: "regtest", Launchpad: launchpadconfig.Default()})
	do.ProvideValue(injector, operator)

	_, err = New(injector)
	assert.ErrorIs(t, err, errs.Unsupported)
}

func TestNewRequiresLaunchpadEndpoint(t *testing.T) {
	operator, err := keypair.Generate()
	require.NoError(t, err)

	newInjector := func(conf config.Config) do.Injector {
		injector := do.New()
		do.ProvideValue(injector, context.Background())
		do.ProvideValue(injector, conf)
		do.ProvideValue(injector, operator)
		return injector
	}

	_, err = New(newInjector(config.Config{Network: common.NetworkDevnet, Launchpad: launchpadconfig.Default()}))
	assert.ErrorIs(t, err, errs.ArgumentRequired)
	message, ok := errs.PublicMessage(err)
	require.True(t, ok)
	assert.Contains(t, message, "--rpc")

	conf := config.Config{Network: common.NetworkDevnet, Launchpad: launchpadconfig.Default()}
	conf.RPC.Endpoint = "http://127.0.0.1:9900"
	launchpadUsecase, err := New(newInjector(conf))
	require.NoError(t, err)
	assert.Equal(t, operator.PublicKey(), launchpadUsecase.Operator())
}

func TestDefaultConfigMatchesSettings(t *testing.T) {
	conf := launchpadconfig.Default()
	assert.Equal(t, "0.1", conf.Guards.SolPayment)
	assert.Equal(t, "2", conf.SimulateAirdrop)

	settings, err := NewSettings(conf)
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultSettings(), settings)
}
