package crypto

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/vaultpass/passkit/internal/strength"
)

func seeded(t *testing.T, seed string) Source {
	t.Helper()
	src, err := NewSeededSource([]byte(seed))
	if err != nil {
		t.Fatalf("NewSeededSource(%q) unexpected error: %v", seed, err)
	}
	return src
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GenerationConfig
		wantErr error
	}{
		{
			name: "default config",
			cfg:  DefaultConfig(),
		},
		{
			name: "all classes enabled",
			cfg: GenerationConfig{
				Length: 32, IncludeUppercase: true, IncludeLowercase: true, IncludeNumbers: true, IncludeSymbols: true,
			},
		},
		{
			name: "uppercase only",
			cfg:  GenerationConfig{Length: 16, IncludeUppercase: true},
		},
		{
			name: "symbols only",
			cfg:  GenerationConfig{Length: 16, IncludeSymbols: true},
		},
		{
			name: "minimum length with every class",
			cfg: GenerationConfig{
				Length: MinLength, IncludeUppercase: true, IncludeLowercase: true, IncludeNumbers: true, IncludeSymbols: true,
			},
		},
		{
			name: "maximum length",
			cfg:  GenerationConfig{Length: MaxLength, IncludeUppercase: true, IncludeLowercase: true},
		},
		{
			name:    "length too short",
			cfg:     GenerationConfig{Length: 3, IncludeUppercase: true},
			wantErr: ErrLengthOutOfRange,
		},
		{
			name:    "length too long",
			cfg:     GenerationConfig{Length: 129, IncludeUppercase: true},
			wantErr: ErrLengthOutOfRange,
		},
		{
			name:    "no character classes selected",
			cfg:     GenerationConfig{Length: 16, ExcludeSimilar: true},
			wantErr: ErrNoCharacterClassSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(SystemSource(), tt.cfg)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.cfg.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.cfg.Length)
			}
		})
	}
}

func TestGenerateNoClassesFailsForEveryLength(t *testing.T) {
	for length := -1; length <= MaxLength+1; length++ {
		_, err := Generate(SystemSource(), GenerationConfig{Length: length})
		if !errors.Is(err, ErrNoCharacterClassSelected) {
			t.Errorf("Generate() with length %d error = %v, want %v", length, err, ErrNoCharacterClassSelected)
		}
	}
}

func TestGenerateContainsEveryEnabledClass(t *testing.T) {
	src := seeded(t, "coverage")

	for length := MinLength; length <= 24; length++ {
		cfg := DefaultConfig()
		cfg.Length = length

		// Run multiple times per length to exercise different draws.
		for i := 0; i < 25; i++ {
			password, err := Generate(src, cfg)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(password) != length {
				t.Fatalf("Generate() length = %d, want %d", len(password), length)
			}

			if !strings.ContainsAny(password, uppercaseChars) {
				t.Errorf("password %q missing uppercase character", password)
			}
			if !strings.ContainsAny(password, lowercaseChars) {
				t.Errorf("password %q missing lowercase character", password)
			}
			if !strings.ContainsAny(password, numberChars) {
				t.Errorf("password %q missing number character", password)
			}
			if !strings.ContainsAny(password, symbolChars) {
				t.Errorf("password %q missing symbol character", password)
			}
		}
	}
}

func TestGenerateSingleClassContainsOnlyThatClass(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GenerationConfig
		charset string
	}{
		{"uppercase only", GenerationConfig{Length: 32, IncludeUppercase: true}, uppercaseChars},
		{"lowercase only", GenerationConfig{Length: 32, IncludeLowercase: true}, lowercaseChars},
		{"numbers only", GenerationConfig{Length: 32, IncludeNumbers: true}, numberChars},
		{"symbols only", GenerationConfig{Length: 32, IncludeSymbols: true}, symbolChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(SystemSource(), tt.cfg)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateExcludeSimilar(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = MaxLength
	cfg.ExcludeSimilar = true

	src := seeded(t, "similar")
	for i := 0; i < 50; i++ {
		password, err := Generate(src, cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, SimilarChars) {
			t.Errorf("password %q contains a similar glyph", password)
		}
	}
}

func TestActiveClassesFiltering(t *testing.T) {
	cfg := GenerationConfig{
		IncludeUppercase: true, IncludeLowercase: true, IncludeNumbers: true, IncludeSymbols: true,
		ExcludeSimilar: true,
	}

	want := []string{
		"ABCDEFGHIJKMNPQRSTUVWXYZ",
		"abcdefghjkmnpqrstuvwxyz",
		"23456789",
		symbolChars,
	}
	if got := cfg.ActiveClasses(); !slices.Equal(got, want) {
		t.Errorf("ActiveClasses() = %q, want %q", got, want)
	}
}

func TestActiveClassesOrderIgnoresDisabled(t *testing.T) {
	cfg := GenerationConfig{IncludeNumbers: true, IncludeUppercase: true}

	want := []string{uppercaseChars, numberChars}
	if got := cfg.ActiveClasses(); !slices.Equal(got, want) {
		t.Errorf("ActiveClasses() = %q, want %q", got, want)
	}
	if got := (GenerationConfig{}).ActiveClasses(); len(got) != 0 {
		t.Errorf("ActiveClasses() with nothing enabled = %q, want none", got)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	cfg := DefaultConfig()

	gen := func(seed string) string {
		t.Helper()
		password, err := Generate(seeded(t, seed), cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		return password
	}

	first, second, other := gen("repeatable"), gen("repeatable"), gen("different")
	if first != second {
		t.Errorf("same seed produced %q and %q", first, second)
	}
	if first == other {
		t.Errorf("different seeds both produced %q", first)
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(SystemSource(), DefaultConfig())
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGenerateConcurrent(t *testing.T) {
	const (
		workers = 32
		rounds  = 200
	)

	src := SystemSource()
	cfg := DefaultConfig()
	cfg.ExcludeSimilar = true

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				password, err := Generate(src, cfg)
				if err != nil {
					errs <- err
					return
				}
				if len(password) != cfg.Length || strings.ContainsAny(password, SimilarChars) {
					errs <- errors.New("bad password " + password)
					return
				}
				if r := strength.Evaluate(password); r.Score < 0 || r.Score > strength.MaxScore {
					errs <- errors.New("score out of range for " + password)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

type failingSource struct {
	err   error
	after int
}

func (f *failingSource) Intn(n int) (int, error) {
	if f.after == 0 {
		return 0, f.err
	}
	f.after--
	return 0, nil
}

func TestGeneratePropagatesSourceErrors(t *testing.T) {
	boom := errors.New("entropy unavailable")

	// Fail during the guaranteed draws, the fill and the shuffle.
	for _, after := range []int{0, 2, 10, 20} {
		_, err := Generate(&failingSource{err: boom, after: after}, DefaultConfig())
		if err != boom {
			t.Errorf("Generate() after %d draws error = %v, want %v", after, err, boom)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	const input = "abcdefghijklmnop"

	data := []byte(input)
	if err := shuffle(seeded(t, "perm"), data); err != nil {
		t.Fatalf("shuffle() unexpected error: %v", err)
	}

	got := slices.Clone(data)
	slices.Sort(got)
	if string(got) != input {
		t.Errorf("shuffle() = %q, not a permutation of %q", data, input)
	}
}

// The guaranteed characters are drawn into the leading slots before the
// shuffle, so an unshuffled or biased result would show up as a skew in
// where symbols land.
func TestGenerateSpreadsGuaranteedCharacters(t *testing.T) {
	const runs = 20000

	src := seeded(t, "positions")
	cfg := GenerationConfig{Length: 4, IncludeUppercase: true, IncludeSymbols: true}

	var counts [4]int
	for i := 0; i < runs; i++ {
		password, err := Generate(src, cfg)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for pos := range password {
			if strings.IndexByte(symbolChars, password[pos]) >= 0 {
				counts[pos]++
			}
		}
	}

	// One guaranteed symbol plus two fill draws at even odds gives two
	// symbols per password, half of every position on average.
	const want, tolerance = runs / 2, runs / 20
	for pos, n := range counts {
		if n < want-tolerance || n > want+tolerance {
			t.Errorf("symbols at position %d = %d, want %d±%d (all positions %v)", pos, n, want, tolerance, counts)
		}
	}
}
