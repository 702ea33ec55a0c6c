package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockpain/ecies-study/internal/crypto"
	"github.com/blockpain/ecies-study/internal/domain"
)

// peer: manage the registry of correspondents and their public keys.
func peerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peer",
		Short: "Manage the peer registry",
	}
	cmd.AddCommand(peerAddCmd(), peerListCmd())
	return cmd
}

// peer add <name> <pubkey-b64>: register a peer's compressed public key.
//
// The registry is the trust decision: registering a key asserts that it
// genuinely belongs to the named peer. Compare fingerprints out of band.
func peerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <pubkey-b64>",
		Short: "Register a peer's public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			raw, err := crypto.B64Decode(args[1])
			if err != nil {
				return fmt.Errorf("decode public key: %w", err)
			}
			if len(raw) != domain.PublicKeySize {
				return fmt.Errorf("public key must be %d bytes compressed SEC1, got %d", domain.PublicKeySize, len(raw))
			}
			var pub domain.PublicKey
			copy(pub[:], raw)

			if err := peers.SavePeer(domain.Peer{Name: name, Pub: pub}); err != nil {
				return err
			}
			logger.Debug().Str("peer", name).Msg("peer registered")
			fmt.Printf("%s %s\n", name, crypto.Fingerprint(pub.Slice()))
			return nil
		},
	}
}

// peer list: print registered peers with fingerprints.
func peerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered peers",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := peers.ListPeers()
			if err != nil {
				return err
			}
			for _, p := range all {
				fmt.Printf("%-20s %s\n", p.Name, crypto.Fingerprint(p.Pub.Slice()))
			}
			return nil
		},
	}
}
