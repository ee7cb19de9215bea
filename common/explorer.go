package common

import (
	"fmt"
	"net/url"

	"github.com/Cleverse/go-utilities/utils"
)

const explorerBaseURL = "https://explorer.solana.com"

// Explorer builds block explorer links for a network.
type Explorer struct {
	Network Network

	// ClusterURL is the cluster RPC the operator talks to, a localnet link points the explorer at it.
	ClusterURL string
}

// AddressURL returns the block explorer link of an account address.
func (e Explorer) AddressURL(address string) string {
	return e.url("address", address)
}

// TxURL returns the block explorer link of a transaction signature.
func (e Explorer) TxURL(signature string) string {
	return e.url("tx", signature)
}

func (e Explorer) url(kind, id string) string {
	link := fmt.Sprintf("%s/%s/%s", explorerBaseURL, kind, url.PathEscape(id))
	switch e.Network {
	case NetworkMainnet, "":
		return link
	case NetworkLocalnet:
		query := url.Values{}
		query.Set("cluster", "custom")
		query.Set("customUrl", utils.Default(e.ClusterURL, NetworkLocalnet.RPCEndpoint()))
		return link + "?" + query.Encode()
	default:
		return link + "?cluster=" + e.Network.String()
	}
}
