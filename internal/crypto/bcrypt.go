// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMismatchedPassword is returned by Compare for a wrong password.
	ErrMismatchedPassword = errors.New("password does not match")
	// ErrPasswordTooLong is returned for passwords over bcrypt's 72 byte limit.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

// bcryptHasher is the [PasswordHasher] backed by golang.org/x/crypto/bcrypt.
type bcryptHasher struct {
	cost int
	// dummyHash has the same cost as real hashes so that DummyCompare takes
	// as long as Compare.
	dummyHash []byte
}

// NewBcryptHasher returns a [PasswordHasher] using the given work factor.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("go-flix-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &bcryptHasher{cost: cost, dummyHash: dummy}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatchedPassword
	}
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}

	return nil
}

func (h *bcryptHasher) DummyCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
