package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common"
	launchpadconfig "github.com/gaze-network/nft-launchpad/modules/launchpad/config"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/repository/rpc"
	"github.com/gaze-network/nft-launchpad/pkg/logger"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkDevnet,
		RPC: RPC{
			Commitment:   rpc.CommitmentFinalized,
			PollInterval: 2 * time.Second,
		},
		Keypair:   "./keypair.json",
		Launchpad: launchpadconfig.Default(),
	}
)

type Config struct {
	Logger    logger.Config          `mapstructure:"logger"`
	Network   common.Network         `mapstructure:"network"`
	RPC       RPC                    `mapstructure:"rpc"`
	Keypair   string                 `mapstructure:"keypair"` // Path to the operator key pair file (JSON array of 64 bytes).
	Launchpad launchpadconfig.Config `mapstructure:"launchpad"`
}

type RPC struct {
	Endpoint        string        `mapstructure:"endpoint"`         // Launchpad API endpoint, required unless simulating.
	ClusterEndpoint string        `mapstructure:"cluster_endpoint"` // Overrides the network's public endpoint for balance and signature status reads.
	Commitment      string        `mapstructure:"commitment"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	ConfirmTimeout  time.Duration `mapstructure:"confirm_timeout"`
	Debug           bool          `mapstructure:"debug"` // Log every HTTP request.
}

// Parse parses the configuration from environment variables and the config file.
// An empty configFile looks up `config.yaml` in the working directory.
func Parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if len(configFile) > 0 && configFile[0] != "" {
			viper.SetConfigFile(configFile[0])
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.DebugContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.Panic("invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		))); err != nil {
			logger.Panic("failed to unmarshal config", slogx.Error(err))
		}
		logger.DebugContext(ctx, "loaded config successfully")
	})

	return *config
}

// Load returns the parsed configuration.
func Load() Config {
	return Parse()
}

// BindPFlag binds a configuration key to a command line flag.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, can't bind flag for config", slog.String("config_key", key), slogx.Error(err))
	}
}

// ClusterRPCEndpoint returns the cluster JSON-RPC endpoint, the network's public one unless overridden.
func (c Config) ClusterRPCEndpoint() string {
	return utils.Default(c.RPC.ClusterEndpoint, c.Network.RPCEndpoint())
}

func (c Config) Explorer() common.Explorer {
	return common.Explorer{Network: c.Network, ClusterURL: c.ClusterRPCEndpoint()}
}
