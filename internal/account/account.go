package account

import (
	"errors"
	"fmt"
)

// ErrInvalidCredential is returned when a letter/code pair does not have the
// expected shape. It says nothing about whether the pair exists.
var ErrInvalidCredential = errors.New("invalid letter or code")

// Key identifies an account partition. Every ledger collection is stored and
// synced under exactly one Key.
type Key struct {
	Letter string
	Code   string
}

// Route maps a credential pair to a human-facing account.
type Route struct {
	Key
	Label   string
	IsAdmin bool
}

// ParseKey validates a raw letter/code pair: a single uppercase A-Z letter and
// exactly four digits.
func ParseKey(letter, code string) (Key, error) {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return Key{}, fmt.Errorf("letter %q: %w", letter, ErrInvalidCredential)
	}

	if len(code) != 4 {
		return Key{}, fmt.Errorf("code must be 4 digits: %w", ErrInvalidCredential)
	}

	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return Key{}, fmt.Errorf("code must be 4 digits: %w", ErrInvalidCredential)
		}
	}

	return Key{Letter: letter, Code: code}, nil
}

func (k Key) String() string {
	return k.Letter + "-" + k.Code
}
