package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

var ErrInvalidSeed = errors.New("seed must not be empty")

// Source supplies uniformly distributed integers for character draws and shuffles.
type Source interface {
	// Intn returns a uniform random integer in [0, n). n must be positive.
	Intn(n int) (int, error)
}

type readerSource struct {
	r io.Reader
}

// NewReaderSource adapts a byte stream into a Source.
// Draws use rejection sampling so the result is unbiased for any n.
func NewReaderSource(r io.Reader) Source {
	return readerSource{r: r}
}

// SystemSource returns a Source backed by the operating system CSPRNG.
// It is safe for concurrent use.
func SystemSource() Source {
	return readerSource{r: rand.Reader}
}

func (s readerSource) Intn(n int) (int, error) {
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// keystream yields the raw ChaCha20 keystream.
type keystream struct {
	cipher *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	clear(p)
	k.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// NewSeededSource returns a deterministic Source derived from seed.
// The same seed always yields the same sequence of draws. The returned
// Source is not safe for concurrent use.
func NewSeededSource(seed []byte) (Source, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}

	key := sha256.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, err
	}

	return NewReaderSource(&keystream{cipher: c}), nil
}
