package wire_test

import (
	"crypto/rand"
	"errors"
	"reflect"
	"testing"

	"github.com/blockpain/ecies-study/internal/crypto"
	"github.com/blockpain/ecies-study/internal/domain"
	"github.com/blockpain/ecies-study/internal/protocol/ecies"
	"github.com/blockpain/ecies-study/internal/wire"
)

func sealedEnvelope(t *testing.T) domain.Envelope {
	t.Helper()
	sender, err := crypto.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	receiver, err := crypto.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	env, err := ecies.Seal(rand.Reader, sender, receiver.Pub, []byte("wire me"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	return env
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	env := sealedEnvelope(t)

	b, err := wire.Encode(env)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := wire.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(env, got) {
		t.Fatal("round trip mismatch")
	}
}

func TestDecodeTruncated(t *testing.T) {
	env := sealedEnvelope(t)
	b, err := wire.Encode(env)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Every proper prefix must fail cleanly, never panic.
	for n := 0; n < len(b); n++ {
		if _, err := wire.Decode(b[:n]); err == nil {
			t.Fatalf("prefix of %d bytes decoded successfully", n)
		}
	}
	if _, err := wire.Decode(b[:10]); !errors.Is(err, wire.ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestDecodeBadVersion(t *testing.T) {
	env := sealedEnvelope(t)
	b, err := wire.Encode(env)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b[0] = 0xFF
	if _, err := wire.Decode(b); !errors.Is(err, wire.ErrVersion) {
		t.Fatalf("want ErrVersion, got %v", err)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	env := sealedEnvelope(t)
	b, err := wire.Encode(env)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := wire.Decode(append(b, 0x00)); err == nil {
		t.Fatal("trailing byte decoded successfully")
	}
}
