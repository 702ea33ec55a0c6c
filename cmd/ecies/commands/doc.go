// Package commands defines the ecies CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init           Create the local identity
//   - fingerprint    Print the identity fingerprint
//   - peer           Manage the peer registry (add, list)
//   - seal           Encrypt and sign a message for a peer
//   - open           Verify and decrypt an envelope
//
// # Implementation
//
// The root command resolves configuration (flags, ECIES_* environment
// variables, optional config file in the home directory) via viper, sets
// up a zerolog console logger, and builds the store/service graph before
// any subcommand runs. The CLI is a demo caller around the core: it moves
// envelopes through files and stdout, it does not transport them.
package commands
