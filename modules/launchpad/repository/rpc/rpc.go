// Package rpc implements the ledger data gateway against a JSON-RPC endpoint.
//
// Launchpad writes are sent as operator-signed envelopes to the launchpad
// API, then the repository polls the cluster's getSignatureStatuses until the
// transaction reaches the configured commitment level.
package rpc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/pkg/jsonrpc"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
)

const (
	CommitmentFinalized = string(solanarpc.CommitmentFinalized)
	CommitmentConfirmed = string(solanarpc.CommitmentConfirmed)
	CommitmentProcessed = string(solanarpc.CommitmentProcessed)

	defaultPollInterval = 2 * time.Second
)

const (
	methodCreateCollection     = "launchpad_createCollection"
	methodCreateMachine        = "launchpad_createMachine"
	methodGetMachine           = "launchpad_getMachine"
	methodUpdateGuards         = "launchpad_updateGuards"
	methodInsertItems          = "launchpad_insertItems"
	methodMint                 = "launchpad_mint"
	methodGetBalance           = "getBalance"
	methodGetSignatureStatuses = "getSignatureStatuses"
)

var _ datagateway.LedgerDataGateway = (*Repository)(nil)

type Config struct {
	// Commitment is the confirmation level a write must reach. (default: finalized)
	Commitment string

	// PollInterval between two signature status checks. (default: 2s)
	PollInterval time.Duration

	// ConfirmTimeout bounds the wait for a confirmation, zero waits as long as the context allows.
	ConfirmTimeout time.Duration
}

type Repository struct {
	// client talks to the launchpad API, cluster to the plain Solana RPC.
	client  *jsonrpc.Client
	cluster *solanarpc.Client
	signer  *keypair.KeyPair
	config  Config
}

func New(client *jsonrpc.Client, cluster *solanarpc.Client, signer *keypair.KeyPair, config Config) *Repository {
	config.Commitment = utils.Default(config.Commitment, CommitmentFinalized)
	config.PollInterval = utils.Default(config.PollInterval, defaultPollInterval)
	return &Repository{
		client:  client,
		cluster: cluster,
		signer:  signer,
		config:  config,
	}
}

type commitmentConfig struct {
	Commitment string `json:"commitment"`
}

// envelope is the signed request body of every launchpad write.
type envelope struct {
	Payload    json.RawMessage   `json:"payload"`
	Signer     keypair.PublicKey `json:"signer"`
	Signature  keypair.Signature `json:"signature"`
	Commitment string            `json:"commitment"`
}

type writeResult struct {
	Address   *keypair.PublicKey `json:"address,omitempty"`
	Signature keypair.Signature  `json:"signature"`

	// Item is the config line consumed by a mint.
	Item *itemDTO `json:"item,omitempty"`
}

func (r *Repository) sign(payload any) (envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return envelope{}, errors.Wrap(err, "can't marshal payload")
	}
	signer := r.signer.PublicKey()
	signature := r.signer.Sign(data)
	if !keypair.Verify(signer, data, signature) {
		return envelope{}, errors.Wrapf(errs.InternalError, "envelope signature doesn't verify against %s", signer)
	}
	return envelope{
		Payload:    data,
		Signer:     signer,
		Signature:  signature,
		Commitment: r.config.Commitment,
	}, nil
}

// write signs and submits payload, then waits for the transaction confirmation.
func (r *Repository) write(ctx context.Context, method string, payload any) (*writeResult, uint64, error) {
	request, err := r.sign(payload)
	if err != nil {
		return nil, 0, errors.Wrap(err, method)
	}

	var result writeResult
	if err := r.client.Call(ctx, method, []any{request}, &result); err != nil {
		return nil, 0, mapError(err, method)
	}

	slot, err := r.waitForConfirmation(ctx, result.Signature)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "%s transaction %s", method, result.Signature)
	}
	return &result, slot, nil
}
