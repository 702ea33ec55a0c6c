package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockpain/ecies-study/internal/wire"
)

// seal <peer> <message>: encrypt and sign a message for a registered peer.
//
// The envelope goes to stdout as JSON, or to --out as the binary wire
// encoding. Delivering it is the caller's business.
func sealCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "seal <peer> <message>",
		Short: "Encrypt and sign a message for a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			peer := args[0]

			env, err := messages.Seal(passphrase, peer, []byte(args[1]))
			if err != nil {
				return err
			}
			logger.Debug().
				Str("peer", peer).
				Int("ciphertext_bytes", len(env.Ciphertext)).
				Msg("envelope sealed")

			if out != "" {
				b, err := wire.Encode(env)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, b, 0o644); err != nil {
					return err
				}
				logger.Info().Str("path", out).Msg("envelope written")
				return nil
			}

			b, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the binary envelope to this file instead of JSON on stdout")
	return cmd
}
