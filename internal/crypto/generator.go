package crypto

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// SimilarChars lists the glyphs that are easy to confuse when read back.
	SimilarChars = "il1Lo0O"

	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16
)

var (
	ErrNoCharacterClassSelected = errors.New("at least one character type must be selected")
	ErrLengthOutOfRange         = errors.New("password length must be between 4 and 128")
)

// GenerationConfig configures the password generator.
type GenerationConfig struct {
	Length           int
	IncludeUppercase bool
	IncludeLowercase bool
	IncludeNumbers   bool
	IncludeSymbols   bool
	ExcludeSimilar   bool
}

// DefaultConfig returns 16 characters with all classes enabled.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		Length:           DefaultLength,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

// characterClass is a named set of candidate characters. similar holds the
// characters dropped from chars when similar-looking glyphs are excluded.
type characterClass struct {
	chars   string
	similar string
}

var (
	upperClass  = characterClass{chars: uppercaseChars, similar: "LO"}
	lowerClass  = characterClass{chars: lowercaseChars, similar: "ilo"}
	numberClass = characterClass{chars: numberChars, similar: "10"}
	symbolClass = characterClass{chars: symbolChars}
)

func (c characterClass) candidates(excludeSimilar bool) string {
	if !excludeSimilar || c.similar == "" {
		return c.chars
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(c.similar, r) {
			return -1
		}
		return r
	}, c.chars)
}

// ActiveClasses returns the filtered candidate set of every enabled class,
// in the fixed order uppercase, lowercase, numbers, symbols.
func (cfg GenerationConfig) ActiveClasses() []string {
	var sets []string
	for _, c := range []struct {
		on    bool
		class characterClass
	}{
		{cfg.IncludeUppercase, upperClass},
		{cfg.IncludeLowercase, lowerClass},
		{cfg.IncludeNumbers, numberClass},
		{cfg.IncludeSymbols, symbolClass},
	} {
		if c.on {
			sets = append(sets, c.class.candidates(cfg.ExcludeSimilar))
		}
	}
	return sets
}

// Generate creates a random password from cfg, drawing every character and
// the final permutation from src.
//
// One character is guaranteed from each enabled class, capped at cfg.Length
// draws, so the output is always exactly cfg.Length characters long.
// Errors returned by src are passed through unchanged.
func Generate(src Source, cfg GenerationConfig) (string, error) {
	classes := cfg.ActiveClasses()
	if len(classes) == 0 {
		return "", ErrNoCharacterClassSelected
	}
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return "", ErrLengthOutOfRange
	}

	pool := strings.Join(classes, "")
	guaranteed := min(len(classes), cfg.Length)

	result := make([]byte, cfg.Length)

	for i := 0; i < guaranteed; i++ {
		ch, err := randChar(src, classes[i])
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := guaranteed; i < cfg.Length; i++ {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset.
func randChar(src Source, charset string) (byte, error) {
	n, err := src.Intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
