// Package session holds the client-side authentication flag and the durable
// marker backing it.
//
// The marker is a bare "a session exists" flag. It carries no token, scope
// or expiry and is never verified against the backend.
package session

import "fmt"

// Marker is the durable "a session exists" flag on the client device.
type Marker interface {
	// Present reports whether the marker exists. Read failures and
	// malformed values count as absent.
	Present() bool
	Set() error
	Clear() error
}

// Store is the single writer of the authenticated flag. Create one with Load
// and hand it to every view that needs it.
type Store struct {
	marker        Marker
	authenticated bool
}

// Load initialises the flag from the marker: present means authenticated.
func Load(marker Marker) *Store {
	return &Store{
		marker:        marker,
		authenticated: marker.Present(),
	}
}

// IsAuthenticated returns the current flag.
func (s *Store) IsAuthenticated() bool {
	return s.authenticated
}

// Login sets the durable marker and flips the flag to true. A second call
// is a no-op. If the marker cannot be written the flag is left unchanged.
func (s *Store) Login() error {
	if s.authenticated {
		return nil
	}
	if err := s.marker.Set(); err != nil {
		return fmt.Errorf("session: set marker: %w", err)
	}
	s.authenticated = true
	return nil
}

// Logout clears the durable marker and flips the flag to false. A second
// call is a no-op.
func (s *Store) Logout() error {
	if !s.authenticated {
		return nil
	}
	if err := s.marker.Clear(); err != nil {
		return fmt.Errorf("session: clear marker: %w", err)
	}
	s.authenticated = false
	return nil
}
