package rpc

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/jsonrpc"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// stubServer answers launchpad and cluster calls with handlers keyed by method.
type stubServer struct {
	t        *testing.T
	mu       sync.Mutex
	calls    map[string]int
	handlers map[string]func(params []json.RawMessage) (any, *jsonrpc.Error)
}

func newStubServer(t *testing.T) (*stubServer, *httptest.Server) {
	t.Helper()
	stub := &stubServer{
		t:        t,
		calls:    make(map[string]int),
		handlers: make(map[string]func(params []json.RawMessage) (any, *jsonrpc.Error)),
	}
	server := httptest.NewServer(http.HandlerFunc(stub.serveHTTP))
	t.Cleanup(server.Close)
	return stub, server
}

func (s *stubServer) handle(method string, fn func(params []json.RawMessage) (any, *jsonrpc.Error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = fn
}

func (s *stubServer) count(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *stubServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.calls[req.Method]++
	fn, ok := s.handlers[req.Method]
	s.mu.Unlock()

	response := map[string]any{"jsonrpc": jsonrpc.Version, "id": req.ID}
	if !ok {
		response["error"] = jsonrpc.Error{Code: -32601, Message: "Method not found"}
	} else if result, rpcErr := fn(req.Params); rpcErr != nil {
		response["error"] = rpcErr
	} else {
		response["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// finalizeAfter reports the signature as confirmed for n polls, then finalized.
func (s *stubServer) finalizeAfter(n int) {
	var polls int
	s.handle(methodGetSignatureStatuses, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		polls++
		status := CommitmentConfirmed
		if polls > n {
			status = CommitmentFinalized
		}
		return map[string]any{
			"value": []any{map[string]any{"slot": 42, "err": nil, "confirmationStatus": status}},
		}, nil
	})
}

func newTestRepository(t *testing.T, url string, signer *keypair.KeyPair) *Repository {
	t.Helper()
	return newTestRepositoryWithConfig(t, url, signer, Config{PollInterval: 5 * time.Millisecond})
}

func newTestRepositoryWithConfig(t *testing.T, url string, signer *keypair.KeyPair, config Config) *Repository {
	t.Helper()
	client, err := jsonrpc.New(url)
	require.NoError(t, err)
	return New(client, solanarpc.New(url), signer, config)
}

func mustGenerate(t *testing.T) *keypair.KeyPair {
	t.Helper()
	kp, err := keypair.Generate()
	require.NoError(t, err)
	return kp
}

func TestCreateCollectionSignsPayload(t *testing.T) {
	signer := mustGenerate(t)
	address := mustGenerate(t).PublicKey()
	signature := signer.Sign([]byte("tx"))

	stub, server := newStubServer(t)
	stub.finalizeAfter(2)
	stub.handle(methodCreateCollection, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		require.Len(t, params, 1)
		var env envelope
		require.NoError(t, json.Unmarshal(params[0], &env))
		assert.Equal(t, signer.PublicKey(), env.Signer)
		assert.Equal(t, CommitmentFinalized, env.Commitment)
		assert.True(t, keypair.Verify(env.Signer, env.Payload, env.Signature))

		var payload collectionDTO
		require.NoError(t, json.Unmarshal(env.Payload, &payload))
		assert.Equal(t, "Dreams of Summer NFT Collection", payload.Name)
		assert.True(t, payload.IsCollection)
		assert.Equal(t, signer.PublicKey(), payload.UpdateAuthority)
		return writeResult{Address: &address, Signature: signature}, nil
	})

	repo := newTestRepository(t, server.URL, signer)
	collection, submission, err := repo.CreateCollection(context.Background(), datagateway.CreateCollectionParams{
		Name:            "Dreams of Summer NFT Collection",
		URI:             "https://example.com/metadata.json",
		IsCollection:    true,
		UpdateAuthority: signer.PublicKey(),
	})
	require.NoError(t, err)
	assert.Equal(t, address, collection.Address)
	assert.Equal(t, signature, submission.Signature)
	assert.Equal(t, uint64(42), submission.Slot)
	assert.Equal(t, 3, stub.count(methodGetSignatureStatuses))
}

func TestWriteTransactionError(t *testing.T) {
	signer := mustGenerate(t)
	stub, server := newStubServer(t)
	stub.handle(methodUpdateGuards, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		return writeResult{Signature: signer.Sign([]byte("tx"))}, nil
	})
	stub.handle(methodGetSignatureStatuses, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		return map[string]any{
			"value": []any{map[string]any{"slot": 7, "err": map[string]any{"InstructionError": []any{0, "Custom"}}, "confirmationStatus": CommitmentFinalized}},
		}, nil
	})

	repo := newTestRepository(t, server.URL, signer)
	_, err := repo.UpdateGuards(context.Background(), datagateway.UpdateGuardsParams{Machine: signer.PublicKey()})
	assert.ErrorIs(t, err, errs.ValidationFailure)
}

func TestWriteConfirmTimeout(t *testing.T) {
	signer := mustGenerate(t)
	stub, server := newStubServer(t)
	stub.handle(methodInsertItems, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		return writeResult{Signature: signer.Sign([]byte("tx"))}, nil
	})
	stub.handle(methodGetSignatureStatuses, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		return map[string]any{"value": []any{nil}}, nil
	})

	repo := newTestRepositoryWithConfig(t, server.URL, signer, Config{PollInterval: 5 * time.Millisecond, ConfirmTimeout: 50 * time.Millisecond})

	_, err := repo.InsertItems(context.Background(), datagateway.InsertItemsParams{
		Machine: signer.PublicKey(),
		Items:   []entity.Item{{Name: "Dreams of Summer NFT # 1", URI: "https://example.com/1.json"}},
	})
	assert.ErrorIs(t, err, errs.Timeout)
}

func TestGetMachine(t *testing.T) {
	signer := mustGenerate(t)
	machine := mustGenerate(t).PublicKey()
	start := time.Date(2023, 2, 24, 17, 0, 0, 0, time.UTC)

	stub, server := newStubServer(t)
	stub.handle(methodGetMachine, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		var address keypair.PublicKey
		require.NoError(t, json.Unmarshal(params[0], &address))
		if address != machine {
			return nil, nil
		}
		return machineDTO{
			Address:        machine,
			Authority:      signer.PublicKey(),
			Symbol:         "DOSPX",
			ItemsAvailable: 3,
			ItemsLoaded:    3,
			ItemsRedeemed:  1,
			Creators:       []creatorDTO{{Address: signer.PublicKey(), Share: 100}},
			Guards: guardSetDTO{
				StartDate:  &startDateDTO{Date: start.Unix()},
				MintLimit:  &mintLimitDTO{ID: 1, Limit: 2},
				SolPayment: &solPaymentDTO{Lamports: 100_000_000, Destination: signer.PublicKey()},
			},
			Items: []itemDTO{{Name: "a", URI: "u", Minted: true}, {Name: "b", URI: "u"}, {Name: "c", URI: "u"}},
		}, nil
	})

	repo := newTestRepository(t, server.URL, signer)

	got, err := repo.GetMachine(context.Background(), machine)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.ItemsRemaining())
	assert.Equal(t, 3, got.Guards.Count())
	assert.True(t, got.Guards.StartDate.Date.Equal(start))
	assert.Equal(t, signer.PublicKey(), got.Guards.SolPayment.Destination)
	assert.True(t, got.Items[0].Minted)

	_, err = repo.GetMachine(context.Background(), signer.PublicKey())
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestMintErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		rpcErr   *jsonrpc.Error
		expected error
	}{
		{name: "guard", rpcErr: &jsonrpc.Error{Code: CodeGuardRejected, Message: "startDate"}, expected: errs.GuardRejected},
		{name: "supply", rpcErr: &jsonrpc.Error{Code: CodeSupplyExhausted, Message: "empty"}, expected: errs.SupplyExhausted},
		{name: "funds", rpcErr: &jsonrpc.Error{Code: CodeSimulationFailed, Message: "Attempt to debit an account but found no record of a prior credit."}, expected: errs.InsufficientFunds},
		{name: "simulation", rpcErr: &jsonrpc.Error{Code: CodeSimulationFailed, Message: "custom program error: 0x1"}, expected: errs.ValidationFailure},
		{name: "not found", rpcErr: &jsonrpc.Error{Code: CodeNotFound, Message: "machine"}, expected: errs.NotFound},
		{name: "invalid params", rpcErr: &jsonrpc.Error{Code: CodeInvalidParams, Message: "bad owner"}, expected: errs.ValidationFailure},
		{name: "method not found", rpcErr: &jsonrpc.Error{Code: CodeMethodNotFound, Message: "Method not found"}, expected: errs.Unsupported},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			signer := mustGenerate(t)
			stub, server := newStubServer(t)
			stub.handle(methodMint, func(params []json.RawMessage) (any, *jsonrpc.Error) {
				return nil, tc.rpcErr
			})

			repo := newTestRepository(t, server.URL, signer)
			_, err := repo.Mint(context.Background(), datagateway.MintParams{Machine: signer.PublicKey(), Owner: signer.PublicKey()})
			assert.ErrorIs(t, err, tc.expected)
			// callers outside this module match kinds with the standard library
			assert.True(t, stderrors.Is(err, tc.expected), "stdlib errors.Is must see %v in %+v", tc.expected, err)

			rpcErr, ok := jsonrpc.AsError(err)
			require.True(t, ok, "remote error must stay reachable")
			assert.Equal(t, tc.rpcErr.Code, rpcErr.Code)
			assert.Zero(t, stub.count(methodGetSignatureStatuses))
		})
	}
}

func TestMintMethodNotFoundHint(t *testing.T) {
	signer := mustGenerate(t)
	_, server := newStubServer(t)

	repo := newTestRepository(t, server.URL, signer)
	_, err := repo.Mint(context.Background(), datagateway.MintParams{Machine: signer.PublicKey(), Owner: signer.PublicKey()})
	assert.ErrorIs(t, err, errs.Unsupported)
	message, ok := errs.PublicMessage(err)
	require.True(t, ok)
	assert.Contains(t, message, "--rpc")
}

func TestMintDecodesItem(t *testing.T) {
	signer := mustGenerate(t)
	address := mustGenerate(t).PublicKey()

	stub, server := newStubServer(t)
	stub.finalizeAfter(0)
	stub.handle(methodMint, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		return writeResult{
			Address:   &address,
			Signature: signer.Sign([]byte("mint")),
			Item:      &itemDTO{Name: "Dreams of Summer NFT # 2", URI: "https://example.com/2.json"},
		}, nil
	})

	repo := newTestRepository(t, server.URL, signer)
	minted, err := repo.Mint(context.Background(), datagateway.MintParams{Machine: signer.PublicKey(), Owner: signer.PublicKey()})
	require.NoError(t, err)
	assert.Equal(t, address, minted.Address)
	assert.Equal(t, "Dreams of Summer NFT # 2", minted.Item.Name)
	assert.True(t, minted.Item.Minted)

	stub.handle(methodMint, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		return writeResult{Address: &address, Signature: signer.Sign([]byte("mint"))}, nil
	})
	minted, err = repo.Mint(context.Background(), datagateway.MintParams{Machine: signer.PublicKey(), Owner: signer.PublicKey()})
	require.NoError(t, err)
	assert.Empty(t, minted.Item.Name, "an unreported item must not be guessed")
}

func TestGetBalance(t *testing.T) {
	signer := mustGenerate(t)
	stub, server := newStubServer(t)
	stub.handle(methodGetBalance, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		require.Len(t, params, 2)
		var address keypair.PublicKey
		require.NoError(t, json.Unmarshal(params[0], &address))
		assert.Equal(t, signer.PublicKey(), address)
		var config commitmentConfig
		require.NoError(t, json.Unmarshal(params[1], &config))
		assert.Equal(t, CommitmentFinalized, config.Commitment)
		return map[string]any{"context": map[string]any{"slot": 1}, "value": 2_000_000_000}, nil
	})

	repo := newTestRepository(t, server.URL, signer)
	balance, err := repo.GetBalance(context.Background(), signer.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, uint64(2_000_000_000), balance)
}

func TestGetBalanceClusterFailure(t *testing.T) {
	signer := mustGenerate(t)
	stub, server := newStubServer(t)
	stub.handle(methodGetBalance, func(params []json.RawMessage) (any, *jsonrpc.Error) {
		return nil, &jsonrpc.Error{Code: -32005, Message: "Node is behind"}
	})

	repo := newTestRepository(t, server.URL, signer)
	_, err := repo.GetBalance(context.Background(), signer.PublicKey())
	assert.ErrorIs(t, err, errs.NetworkFailure)
	assert.True(t, stderrors.Is(err, errs.NetworkFailure))
}
