package vault

import (
	"sync"
)

// Session holds the decrypted mnemonic for the unlocked period. It is owned
// by a single controller and passed by handle to operations that need the
// secret. Lock zeroes the underlying buffer; garbage collection is never
// relied on to scrub it.
type Session struct {
	mu     sync.Mutex
	secret []byte
}

func newSession(mnemonic []byte) *Session {
	secret := make([]byte, len(mnemonic))
	copy(secret, mnemonic)
	return &Session{secret: secret}
}

// Mnemonic returns the phrase, or "" if the session has been locked.
func (s *Session) Mnemonic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.secret)
}

// Active reports whether the session still holds the secret.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.secret) > 0
}

// Lock zeroes the secret buffer. The session cannot be reused afterwards.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.secret)
	s.secret = nil
}
