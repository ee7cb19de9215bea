// Package memory is an in-process ledger that enforces the same rules as the
// remote launchpad service. It backs the --simulate mode and the usecase tests.
package memory

import (
	"context"
	"crypto/rand"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/datagateway"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/entity"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
)

// TransactionFee is charged to the payer of every write.
const TransactionFee uint64 = 5000

var _ datagateway.LedgerDataGateway = (*Repository)(nil)

type mintCounterKey struct {
	machine keypair.PublicKey
	owner   keypair.PublicKey
	id      uint8
}

type Repository struct {
	mu          sync.Mutex
	now         func() time.Time
	entropy     io.Reader
	slot        uint64
	collections map[keypair.PublicKey]entity.Collection
	machines    map[keypair.PublicKey]*entity.Machine
	balances    map[keypair.PublicKey]uint64
	mintCounts  map[mintCounterKey]uint16
}

type Option func(*Repository)

// WithClock sets the clock used to evaluate start date guards.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithEntropy sets the source of generated addresses and signatures.
func WithEntropy(entropy io.Reader) Option {
	return func(r *Repository) {
		r.entropy = entropy
	}
}

func New(opts ...Option) *Repository {
	r := &Repository{
		now:         time.Now,
		entropy:     rand.Reader,
		collections: make(map[keypair.PublicKey]entity.Collection),
		machines:    make(map[keypair.PublicKey]*entity.Machine),
		balances:    make(map[keypair.PublicKey]uint64),
		mintCounts:  make(map[mintCounterKey]uint16),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Airdrop credits lamports to address.
func (r *Repository) Airdrop(address keypair.PublicKey, lamports uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[address] += lamports
}

func (r *Repository) GetBalance(ctx context.Context, address keypair.PublicKey) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[address], nil
}

func (r *Repository) CreateCollection(ctx context.Context, arg datagateway.CreateCollectionParams) (*entity.Collection, *entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if arg.Name == "" || arg.URI == "" {
		return nil, nil, errors.Wrap(errs.ValidationFailure, "collection name and uri are required")
	}
	address, signature, err := r.newAccountTx()
	if err != nil {
		return nil, nil, err
	}
	if err := r.chargeFee(arg.UpdateAuthority); err != nil {
		return nil, nil, err
	}

	collection := entity.Collection{
		Address:              address,
		Name:                 arg.Name,
		URI:                  arg.URI,
		SellerFeeBasisPoints: arg.SellerFeeBasisPoints,
		IsCollection:         arg.IsCollection,
		UpdateAuthority:      arg.UpdateAuthority,
	}
	r.collections[address] = collection
	return &collection, r.commit(signature), nil
}

func (r *Repository) CreateMachine(ctx context.Context, arg datagateway.CreateMachineParams) (*entity.Machine, *entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection, ok := r.collections[arg.Collection]
	if !ok {
		return nil, nil, errors.Wrapf(errs.NotFound, "collection %s", arg.Collection)
	}
	if !collection.IsCollection {
		return nil, nil, errors.Wrapf(errs.ValidationFailure, "%s is not a collection", arg.Collection)
	}
	if collection.UpdateAuthority != arg.CollectionUpdateAuthority {
		return nil, nil, errors.Wrap(errs.ValidationFailure, "collection update authority mismatch")
	}
	if arg.ItemsAvailable == 0 {
		return nil, nil, errors.Wrap(errs.ValidationFailure, "items available must be positive")
	}
	if total := entity.TotalShare(arg.Creators); total != 100 {
		return nil, nil, errors.Wrapf(errs.ValidationFailure, "creator shares sum to %d", total)
	}
	address, signature, err := r.newAccountTx()
	if err != nil {
		return nil, nil, err
	}
	if err := r.chargeFee(arg.Authority); err != nil {
		return nil, nil, err
	}

	machine := &entity.Machine{
		Address:              address,
		Authority:            arg.Authority,
		Collection:           arg.Collection,
		Symbol:               arg.Symbol,
		ItemsAvailable:       arg.ItemsAvailable,
		SellerFeeBasisPoints: arg.SellerFeeBasisPoints,
		MaxEditionSupply:     arg.MaxEditionSupply,
		IsMutable:            arg.IsMutable,
		Creators:             slices.Clone(arg.Creators),
	}
	r.machines[address] = machine
	return cloneMachine(machine), r.commit(signature), nil
}

func (r *Repository) GetMachine(ctx context.Context, address keypair.PublicKey) (*entity.Machine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	machine, ok := r.machines[address]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "machine %s", address)
	}
	return cloneMachine(machine), nil
}

func (r *Repository) UpdateGuards(ctx context.Context, arg datagateway.UpdateGuardsParams) (*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	machine, ok := r.machines[arg.Machine]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "machine %s", arg.Machine)
	}
	signature, err := r.newSignature()
	if err != nil {
		return nil, err
	}
	if err := r.chargeFee(machine.Authority); err != nil {
		return nil, err
	}
	machine.Guards = cloneGuards(arg.Guards)
	return r.commit(signature), nil
}

func (r *Repository) InsertItems(ctx context.Context, arg datagateway.InsertItemsParams) (*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	machine, ok := r.machines[arg.Machine]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "machine %s", arg.Machine)
	}
	if len(arg.Items) == 0 {
		return nil, errors.Wrap(errs.ValidationFailure, "no items to insert")
	}
	if arg.Index != machine.ItemsLoaded {
		return nil, errors.Wrapf(errs.ValidationFailure, "insert index %d, expected %d", arg.Index, machine.ItemsLoaded)
	}
	if arg.Index+uint64(len(arg.Items)) > machine.ItemsAvailable {
		return nil, errors.Wrapf(errs.ValidationFailure, "inserting %d items exceeds %d available", len(arg.Items), machine.ItemsAvailable)
	}
	for i, item := range arg.Items {
		if len(item.Name) > entity.MaxItemNameLength || len(item.URI) > entity.MaxItemURILength {
			return nil, errors.Wrapf(errs.ValidationFailure, "item %d exceeds name or uri length limit", i)
		}
	}
	signature, err := r.newSignature()
	if err != nil {
		return nil, err
	}
	if err := r.chargeFee(machine.Authority); err != nil {
		return nil, err
	}

	for _, item := range arg.Items {
		item.Minted = false
		machine.Items = append(machine.Items, item)
	}
	machine.ItemsLoaded += uint64(len(arg.Items))
	return r.commit(signature), nil
}

func (r *Repository) Mint(ctx context.Context, arg datagateway.MintParams) (*entity.Minted, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	machine, ok := r.machines[arg.Machine]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "machine %s", arg.Machine)
	}
	if machine.ItemsMintable() == 0 {
		return nil, errors.Wrapf(errs.SupplyExhausted, "machine %s has no item to mint", arg.Machine)
	}
	if !machine.IsFullyLoaded() {
		return nil, errors.Wrapf(errs.ValidationFailure, "machine %s has %d of %d items loaded", arg.Machine, machine.ItemsLoaded, machine.ItemsAvailable)
	}
	collection := r.collections[machine.Collection]
	if collection.UpdateAuthority != arg.CollectionUpdateAuthority {
		return nil, errors.Wrap(errs.ValidationFailure, "collection update authority mismatch")
	}

	guards := machine.Guards
	if guards.StartDate != nil && r.now().Before(guards.StartDate.Date) {
		return nil, errors.Wrapf(errs.GuardRejected, "%s: mint starts at %s", entity.GuardStartDate, guards.StartDate.Date.Format(time.RFC3339))
	}
	counterKey := mintCounterKey{machine: machine.Address, owner: arg.Owner}
	if guards.MintLimit != nil {
		counterKey.id = guards.MintLimit.ID
		if r.mintCounts[counterKey] >= guards.MintLimit.Limit {
			return nil, errors.Wrapf(errs.GuardRejected, "%s: limit of %d reached", entity.GuardMintLimit, guards.MintLimit.Limit)
		}
	}
	cost := TransactionFee
	if guards.SolPayment != nil {
		cost += guards.SolPayment.Lamports
	}
	if r.balances[arg.Owner] < cost {
		return nil, errors.Wrapf(errs.InsufficientFunds, "%s has %d lamports, mint costs %d", arg.Owner, r.balances[arg.Owner], cost)
	}
	address, signature, err := r.newAccountTx()
	if err != nil {
		return nil, err
	}

	r.balances[arg.Owner] -= cost
	if guards.SolPayment != nil {
		r.balances[guards.SolPayment.Destination] += guards.SolPayment.Lamports
	}
	if guards.MintLimit != nil {
		r.mintCounts[counterKey]++
	}

	item := &machine.Items[machine.ItemsRedeemed]
	item.Minted = true
	machine.ItemsRedeemed++

	return &entity.Minted{
		Submission: *r.commit(signature),
		Address:    address,
		Item:       *item,
	}, nil
}

func (r *Repository) chargeFee(payer keypair.PublicKey) error {
	if r.balances[payer] < TransactionFee {
		return errors.Wrapf(errs.InsufficientFunds, "%s can't pay the %d lamports fee", payer, TransactionFee)
	}
	r.balances[payer] -= TransactionFee
	return nil
}

// newSignature draws a transaction signature, writes call it before touching any state.
func (r *Repository) newSignature() (keypair.Signature, error) {
	var signature keypair.Signature
	if _, err := io.ReadFull(r.entropy, signature[:]); err != nil {
		return keypair.Signature{}, errors.WithSecondaryError(errors.Wrap(errs.SomethingWentWrong, "can't generate signature"), err)
	}
	return signature, nil
}

// newAccountTx draws the address of a created account and the signature of its transaction.
func (r *Repository) newAccountTx() (keypair.PublicKey, keypair.Signature, error) {
	var address keypair.PublicKey
	if _, err := io.ReadFull(r.entropy, address[:]); err != nil {
		return keypair.PublicKey{}, keypair.Signature{}, errors.WithSecondaryError(errors.Wrap(errs.SomethingWentWrong, "can't generate address"), err)
	}
	signature, err := r.newSignature()
	if err != nil {
		return keypair.PublicKey{}, keypair.Signature{}, err
	}
	return address, signature, nil
}

// commit lands a transaction in the next slot.
func (r *Repository) commit(signature keypair.Signature) *entity.Submission {
	r.slot++
	return &entity.Submission{
		Signature: signature,
		Slot:      r.slot,
	}
}

func cloneMachine(m *entity.Machine) *entity.Machine {
	clone := *m
	clone.Creators = slices.Clone(m.Creators)
	clone.Items = slices.Clone(m.Items)
	clone.Guards = cloneGuards(m.Guards)
	return &clone
}

func cloneGuards(g entity.GuardSet) entity.GuardSet {
	var clone entity.GuardSet
	if g.StartDate != nil {
		startDate := *g.StartDate
		clone.StartDate = &startDate
	}
	if g.MintLimit != nil {
		mintLimit := *g.MintLimit
		clone.MintLimit = &mintLimit
	}
	if g.SolPayment != nil {
		solPayment := *g.SolPayment
		clone.SolPayment = &solPayment
	}
	return clone
}
