package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	identitysvc "github.com/blockpain/ecies-study/internal/services/identity"
	messagesvc "github.com/blockpain/ecies-study/internal/services/message"
	"github.com/blockpain/ecies-study/internal/store"
)

var (
	home       string
	passphrase string
	verbose    bool

	logger   zerolog.Logger
	peers    store.PeerStore
	identity *identitysvc.Service
	messages *messagesvc.Service
)

// Execute builds and runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "ecies",
		Short:         "Authenticated ECIES messaging over secp256k1",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix("ecies")
			v.AutomaticEnv()
			if err := v.BindPFlag("home", cmd.Flags().Lookup("home")); err != nil {
				return err
			}
			if err := v.BindPFlag("passphrase", cmd.Flags().Lookup("passphrase")); err != nil {
				return err
			}

			home = v.GetString("home")
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".ecies")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			// Optional config file in the home dir overrides nothing the
			// flags or environment already set.
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(home)
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return err
				}
			}
			passphrase = v.GetString("passphrase")

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			identityStore := store.NewIdentityFileStore(home)
			peers = store.NewPeerFileStore(home)
			identity = identitysvc.New(identityStore)
			messages = messagesvc.New(identityStore, peers)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.ecies, env ECIES_HOME)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the identity (env ECIES_PASSPHRASE)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(initCmd(), fingerprintCmd(), peerCmd(), sealCmd(), openCmd())
	return root.Execute()
}

func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p or ECIES_PASSPHRASE)")
	}
	return nil
}
