package store_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockpain/ecies-study/internal/crypto"
	"github.com/blockpain/ecies-study/internal/domain"
	"github.com/blockpain/ecies-study/internal/store"
)

const passphrase = "Correct-Horse-Battery-7!"

func TestIdentityStoreRoundTrip(t *testing.T) {
	s := store.NewIdentityFileStore(t.TempDir())

	ok, err := s.HasIdentity()
	require.NoError(t, err)
	require.False(t, ok)

	id, err := crypto.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.NoError(t, s.SaveIdentity(passphrase, id))

	ok, err = s.HasIdentity()
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.LoadIdentity(passphrase)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestIdentityStoreWrongPassphrase(t *testing.T) {
	s := store.NewIdentityFileStore(t.TempDir())

	id, err := crypto.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.NoError(t, s.SaveIdentity(passphrase, id))

	_, err = s.LoadIdentity("not the passphrase")
	require.Error(t, err)
}

func TestIdentityStoreMissing(t *testing.T) {
	s := store.NewIdentityFileStore(t.TempDir())

	_, err := s.LoadIdentity(passphrase)
	require.ErrorIs(t, err, store.ErrNoIdentity)
}

func TestPeerStore(t *testing.T) {
	s := store.NewPeerFileStore(t.TempDir())

	alice, err := crypto.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	bob, err := crypto.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	require.NoError(t, s.SavePeer(domain.Peer{Name: "alice", Pub: alice.Pub}))
	require.NoError(t, s.SavePeer(domain.Peer{Name: "bob", Pub: bob.Pub}))

	p, ok, err := s.LoadPeer("alice")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, alice.Pub, p.Pub)

	_, ok, err = s.LoadPeer("nobody")
	require.NoError(t, err)
	require.False(t, ok)

	p, ok, err = s.LookupByKey(bob.Pub)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "bob", p.Name)

	all, err := s.ListPeers()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "alice", all[0].Name)
	require.Equal(t, "bob", all[1].Name)
}

func TestPeerStoreReplacesKey(t *testing.T) {
	s := store.NewPeerFileStore(t.TempDir())

	old, err := crypto.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	rotated, err := crypto.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	require.NoError(t, s.SavePeer(domain.Peer{Name: "alice", Pub: old.Pub}))
	require.NoError(t, s.SavePeer(domain.Peer{Name: "alice", Pub: rotated.Pub}))

	p, ok, err := s.LoadPeer("alice")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, rotated.Pub, p.Pub)

	_, ok, err = s.LookupByKey(old.Pub)
	require.NoError(t, err)
	require.False(t, ok)
}
