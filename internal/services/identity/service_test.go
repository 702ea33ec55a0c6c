package identity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	identitysvc "github.com/blockpain/ecies-study/internal/services/identity"
	"github.com/blockpain/ecies-study/internal/store"
)

func newService(t *testing.T) *identitysvc.Service {
	t.Helper()
	return identitysvc.New(store.NewIdentityFileStore(t.TempDir()))
}

func TestGenerateAndLoad(t *testing.T) {
	svc := newService(t)
	const passphrase = "Correct-Horse-Battery-7!"

	id, fp, err := svc.GenerateIdentity(passphrase)
	require.NoError(t, err)
	require.Len(t, fp, 20)

	got, err := svc.LoadIdentity(passphrase)
	require.NoError(t, err)
	require.Equal(t, id, got)

	fp2, err := svc.FingerprintIdentity(passphrase)
	require.NoError(t, err)
	require.Equal(t, fp, fp2)
}

func TestWeakPassphraseRejected(t *testing.T) {
	svc := newService(t)

	for _, weak := range []string{
		"",
		"short1!A",
		"nouppercase1!aaaa",
		"NOLOWERCASE1!AAAA",
		"NoDigitsHere!!aa",
		"NoSymbolsHere11aa",
	} {
		_, _, err := svc.GenerateIdentity(weak)
		require.ErrorIs(t, err, identitysvc.ErrWeakPassphrase, "passphrase %q", weak)
	}

	ok, err := svc.HasIdentity()
	require.NoError(t, err)
	require.False(t, ok, "weak passphrase must not leave an identity behind")
}
