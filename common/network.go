package common

import solanarpc "github.com/gagliardetto/solana-go/rpc"

type Network string

const (
	NetworkMainnet  Network = "mainnet-beta"
	NetworkTestnet  Network = "testnet"
	NetworkDevnet   Network = "devnet"
	NetworkLocalnet Network = "localnet"
)

var supportedNetworks = map[Network]struct{}{
	NetworkMainnet:  {},
	NetworkTestnet:  {},
	NetworkDevnet:   {},
	NetworkLocalnet: {},
}

var rpcEndpoints = map[Network]string{
	NetworkMainnet:  solanarpc.MainNetBeta_RPC,
	NetworkTestnet:  solanarpc.TestNet_RPC,
	NetworkDevnet:   solanarpc.DevNet_RPC,
	NetworkLocalnet: solanarpc.LocalNet_RPC,
}

func (n Network) IsSupported() bool {
	_, ok := supportedNetworks[n]
	return ok
}

// RPCEndpoint returns the public cluster JSON-RPC endpoint of the network.
func (n Network) RPCEndpoint() string {
	return rpcEndpoints[n]
}

func (n Network) String() string {
	return string(n)
}
