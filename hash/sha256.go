// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adil Murzabekov

// Package hash contains password hash configurations accepted by the user
// import API.
//
// The types here are pure parameter bags: they identify the algorithm a
// password was hashed with and carry its parameters so the server can verify
// imported users. No hashing is ever performed locally.
package hash

import (
	"errors"
	"fmt"
)

const (
	sha256AlgorithmName = "SHA256"
	sha256MinRounds     = 1
	sha256MaxRounds     = 8192
)

// ErrInvalidRounds is returned when a rounds value falls outside the range
// the algorithm supports.
var ErrInvalidRounds = errors.New("rounds out of supported range")

// Sha256 configures the SHA256 password hashing algorithm for user import.
// Construct it with [NewSha256]; the zero value is not valid.
type Sha256 struct {
	rounds int
}

// NewSha256 returns a SHA256 hash configuration with the given number of
// hashing rounds. Rounds must be in [1, 8192].
func NewSha256(rounds int) (*Sha256, error) {
	if rounds < sha256MinRounds || rounds > sha256MaxRounds {
		return nil, fmt.Errorf("%w: sha256 rounds must be in [%d, %d], got %d",
			ErrInvalidRounds, sha256MinRounds, sha256MaxRounds, rounds)
	}

	return &Sha256{rounds: rounds}, nil
}

// Rounds returns the configured number of hashing rounds.
func (h *Sha256) Rounds() int { return h.rounds }

// Config returns the serialisable parameter bag handed to the user import
// API.
func (h *Sha256) Config() map[string]any {
	return map[string]any{
		"hashAlgorithm": sha256AlgorithmName,
		"rounds":        h.rounds,
	}
}
