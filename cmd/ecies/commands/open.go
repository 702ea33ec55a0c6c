package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockpain/ecies-study/internal/domain"
	"github.com/blockpain/ecies-study/internal/wire"
)

// open [file]: verify and decrypt an envelope.
//
// With a file argument the binary wire encoding is expected; without one,
// envelope JSON is read from stdin.
func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [file]",
		Short: "Verify and decrypt an envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}

			var env domain.Envelope
			if len(args) == 1 {
				b, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				env, err = wire.Decode(b)
				if err != nil {
					return err
				}
			} else {
				b, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(b, &env); err != nil {
					return fmt.Errorf("parse envelope JSON: %w", err)
				}
			}

			msg, err := messages.Open(passphrase, env)
			if err != nil {
				return err
			}
			logger.Debug().Str("from", msg.From).Msg("envelope opened")
			fmt.Printf("[%s] %s\n", msg.From, string(msg.Plaintext))
			return nil
		},
	}
}
