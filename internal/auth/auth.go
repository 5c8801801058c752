// Package auth verifies seller credentials against the closed identity
// set configured at startup. The rest of the system only ever sees the
// resolved SellerID, never a credential.
package auth

import (
	"errors"

	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/utils"
)

// ErrInvalidCredentials covers both unknown identity and wrong password;
// callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Registry maps seller identities to bcrypt password hashes.
type Registry struct {
	hashes map[model.SellerID]string
}

// NewRegistry builds the registry from the configured identity->hash map.
func NewRegistry(hashes map[string]string) *Registry {
	r := &Registry{hashes: make(map[model.SellerID]string, len(hashes))}
	for name, hash := range hashes {
		r.hashes[model.NormalizeSeller(name)] = hash
	}
	return r
}

// Authenticate resolves (username, password) to a SellerID or fails.
func (r *Registry) Authenticate(username, password string) (model.SellerID, error) {
	id := model.NormalizeSeller(username)
	hash, ok := r.hashes[id]
	if !ok || !utils.VerifyPassword(hash, password) {
		return "", ErrInvalidCredentials
	}
	return id, nil
}
