package cmd

import (
	"fmt"
	"io"

	"github.com/gaze-network/nft-launchpad/common"
	"github.com/gaze-network/nft-launchpad/modules/launchpad/usecase"
	"github.com/gaze-network/nft-launchpad/pkg/keypair"
	"github.com/gaze-network/nft-launchpad/pkg/lamports"
)

const reportIndent = "     "

// reporter prints stage outcomes followed by their explorer links.
type reporter struct {
	out      io.Writer
	explorer common.Explorer
}

func newReporter(out io.Writer, explorer common.Explorer) *reporter {
	return &reporter{out: out, explorer: explorer}
}

func (r *reporter) success(title, subject string, details ...string) {
	fmt.Fprintf(r.out, "✅ - %s: %s\n", title, subject)
	for _, detail := range details {
		fmt.Fprintln(r.out, reportIndent+detail)
	}
}

func (r *reporter) addressURL(address keypair.PublicKey) string {
	return r.explorer.AddressURL(address.String())
}

func (r *reporter) txURL(signature keypair.Signature) string {
	return r.explorer.TxURL(signature.String())
}

func (r *reporter) collection(result *usecase.CollectionResult) {
	address := result.Collection.Address
	r.success("Minted Collection NFT", address.String(), r.addressURL(address))
}

func (r *reporter) machine(result *usecase.MachineResult) {
	address := result.Machine.Address
	r.success("Created Machine", address.String(), r.addressURL(address))
}

func (r *reporter) guards(result *usecase.GuardsResult) {
	r.success("Updated Machine", result.Machine.String(), r.txURL(result.Submission.Signature))
}

func (r *reporter) items(result *usecase.ItemsResult) {
	r.success("Items added to Machine", result.Machine.String(), r.txURL(result.Submission.Signature))
}

func (r *reporter) mint(result *usecase.MintResult) {
	minted := result.Minted
	remaining := fmt.Sprintf("%d items remaining", result.ItemsRemaining)
	// the endpoint may not report which config line was consumed
	if minted.Item.Name != "" {
		remaining = minted.Item.Name + ", " + remaining
	}
	r.success("Minted NFT", minted.Address.String(),
		r.addressURL(minted.Address),
		r.txURL(minted.Signature),
		remaining,
	)
}

func (r *reporter) status(result *usecase.StatusResult) {
	machine := result.Machine
	r.success("Machine", machine.Address.String(),
		r.addressURL(machine.Address),
		fmt.Sprintf("Collection: %s", machine.Collection),
		fmt.Sprintf("Symbol: %s", machine.Symbol),
		fmt.Sprintf("Items: %d available, %d loaded, %d redeemed, %d remaining",
			machine.ItemsAvailable, machine.ItemsLoaded, machine.ItemsRedeemed, machine.ItemsRemaining()),
		fmt.Sprintf("Guards: %v", machine.Guards.Names()),
		fmt.Sprintf("Operator balance: %s SOL", lamports.ToSol(result.Balance)),
	)
}
