package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// Manager is the mock session registry. Sessions exist only in memory for
// the lifetime of the process; there are no credentials to verify and the
// asserted role is taken at face value.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]models.User
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]models.User)}
}

// Login mints a session for the asserted identity and returns the user with
// the opaque session token.
func (m *Manager) Login(name, email string, role models.Role) (models.User, string) {
	if name == "" {
		name = "Demo User"
	}
	user := models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}

	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = user
	m.mu.Unlock()

	return user, token
}

// Get resolves a session token to its user.
func (m *Manager) Get(token string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.sessions[token]
	return user, ok
}

// Logout drops the session. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
