// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

// MinPasswordLength is the minimum number of characters of a new master
// password.
const MinPasswordLength = 8

// WeakScore is the highest zxcvbn score still reported as weak.
const WeakScore = 2

// Strength describes a candidate master password.
type Strength struct {
	// Score is the zxcvbn score, 0 (guessable) to 4 (very strong).
	Score int
	// CrackTime is zxcvbn's human readable offline crack time estimate.
	CrackTime string
}

// Weak reports whether the password should trigger a warning.
func (s Strength) Weak() bool {
	return s.Score <= WeakScore
}

// CheckPolicy validates a master password chosen at setup time and scores
// it. userInputs (e.g. the account e-mail) penalise passwords built from
// them. Unlocking an existing session does not go through the policy.
func CheckPolicy(password string, userInputs ...string) (Strength, error) {
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return Strength{}, fmt.Errorf("%w: %d characters, need at least %d", ErrPasswordTooShort, n, MinPasswordLength)
	}

	m := zxcvbn.PasswordStrength(password, userInputs)
	return Strength{Score: m.Score, CrackTime: m.CrackTimeDisplay}, nil
}
