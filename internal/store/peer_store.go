package store

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/blockpain/ecies-study/internal/domain"
)

const peersFilename = "peers.json"

// PeerFileStore keeps the peer registry in a plain JSON file. Peers hold
// public material only, so no sealing is involved.
type PeerFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPeerFileStore returns a PeerFileStore rooted at dir.
func NewPeerFileStore(dir string) *PeerFileStore {
	return &PeerFileStore{dir: dir}
}

// SavePeer adds or replaces a peer by name.
func (s *PeerFileStore) SavePeer(p domain.Peer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.PublicKey)
	if err := readJSON(s.path(), &m); err != nil {
		return err
	}
	m[p.Name] = p.Pub
	return writeJSON(s.path(), m, 0o600)
}

// LoadPeer returns the peer with the given name, if present.
func (s *PeerFileStore) LoadPeer(name string) (domain.Peer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.PublicKey)
	if err := readJSON(s.path(), &m); err != nil {
		return domain.Peer{}, false, err
	}
	pub, ok := m[name]
	if !ok {
		return domain.Peer{}, false, nil
	}
	return domain.Peer{Name: name, Pub: pub}, true, nil
}

// LookupByKey finds the peer registered under the given public key.
func (s *PeerFileStore) LookupByKey(pub domain.PublicKey) (domain.Peer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.PublicKey)
	if err := readJSON(s.path(), &m); err != nil {
		return domain.Peer{}, false, err
	}
	for name, p := range m {
		if p == pub {
			return domain.Peer{Name: name, Pub: p}, true, nil
		}
	}
	return domain.Peer{}, false, nil
}

// ListPeers returns all peers sorted by name.
func (s *PeerFileStore) ListPeers() ([]domain.Peer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.PublicKey)
	if err := readJSON(s.path(), &m); err != nil {
		return nil, err
	}
	out := make([]domain.Peer, 0, len(m))
	for name, pub := range m {
		out = append(out, domain.Peer{Name: name, Pub: pub})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *PeerFileStore) path() string { return filepath.Join(s.dir, peersFilename) }

// Compile-time assertion that PeerFileStore implements PeerStore.
var _ PeerStore = (*PeerFileStore)(nil)
