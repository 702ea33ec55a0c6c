package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockpain/ecies-study/internal/crypto"
)

// init: generate the local identity key pair.
func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the local identity key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			exists, err := identity.HasIdentity()
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("identity already exists in %s (use --force to replace it)", home)
			}

			id, fp, err := identity.GenerateIdentity(passphrase)
			if err != nil {
				return err
			}
			logger.Debug().Str("home", home).Msg("identity written")
			fmt.Printf("fingerprint: %s\n", fp)
			fmt.Printf("public key:  %s\n", crypto.B64(id.Pub.Slice()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing identity (the old key is lost)")
	return cmd
}
