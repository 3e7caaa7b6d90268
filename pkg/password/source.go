package password

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

type readerSource struct {
	r io.Reader
}

// NewReaderSource draws integers from an arbitrary byte stream using
// rejection sampling, so every value in range is equally likely as long as the
// stream itself is uniform.
func NewReaderSource(r io.Reader) Source {
	return readerSource{r: r}
}

// CryptoSource returns the operating system's cryptographically secure
// generator. It is safe for concurrent use.
func CryptoSource() Source {
	return readerSource{r: rand.Reader}
}

func (s readerSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: invalid bound %d", ErrEntropy, n)
	}
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Join(ErrEntropy, err)
	}
	return int(v.Int64()), nil
}

// keystream exposes a ChaCha20 keystream as an io.Reader.
type keystream struct {
	cipher *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	clear(p)
	k.cipher.XORKeyStream(p, p)
	return len(p), nil
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (s *lockedSource) IntN(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}

// NewSeededSource returns a deterministic Source: the same seed always
// produces the same sequence. Intended for tests and reproducible fixtures.
// Draws are serialized, so sharing it between goroutines is safe but the
// interleaving, and therefore the output, is no longer reproducible.
func NewSeededSource(seed uint64) Source {
	key := make([]byte, chacha20.KeySize)
	binary.LittleEndian.PutUint64(key, seed)
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// Key and nonce sizes are constants, this cannot fail.
		panic(err)
	}
	return &lockedSource{src: NewReaderSource(&keystream{cipher: c})}
}
