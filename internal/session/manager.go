// Package session implements the session/credential manager: it validates
// and persists user records and credentials in a durable key-value store,
// owns the authentication state machine, and restores the session at
// process start.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/config"
	"github.com/dmitrijs2005/authkeeper/internal/kv"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
)

// emailPattern is deliberately loose: local part, @, domain, dot, tld,
// no whitespace anywhere. The stricter per-field check lives in the
// validate package and runs in the form layer.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Manager owns the session state and is the sole writer of the auth keys
// in the store. All operations run their storage steps sequentially within
// one call; concurrent calls are not serialized against each other, except
// that Signup performs its uniqueness check and writes in one store
// transaction.
type Manager struct {
	store   kv.Store
	codec   Codec
	log     logging.Logger
	latency time.Duration

	// newID is a seam for tests; defaults to uuid.NewString.
	newID func() string

	mu    sync.RWMutex
	state State
}

// NewManager builds a Manager over the given store. The credential
// encoding follows cfg.HashCredentials. The initial phase is
// PhaseRestoring until Restore resolves it.
func NewManager(store kv.Store, cfg *config.Config, log logging.Logger) *Manager {
	var codec Codec = PlainCodec{}
	if cfg.HashCredentials {
		codec = HashedCodec{}
	}
	return &Manager{
		store:   store,
		codec:   codec,
		log:     log,
		latency: cfg.SimulatedLatency,
		newID:   uuid.NewString,
		state:   State{Phase: PhaseRestoring},
	}
}

func (m *Manager) dispatch(ev Event) {
	m.mu.Lock()
	m.state = Reduce(m.state, ev)
	m.mu.Unlock()
}

// State returns a snapshot of the observable session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser returns the logged-in user, or nil.
func (m *Manager) CurrentUser() *User { return m.State().User }

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool { return m.State().IsAuthenticated() }

// IsLoading reports whether the startup restore has not resolved yet.
func (m *Manager) IsLoading() bool { return m.State().IsLoading() }

// Restore resolves the startup phase from the stored session marker.
// A valid marker yields PhaseAuthenticated with that user; an absent or
// unreadable marker yields PhaseAnonymous. It never fails outward and is
// idempotent for a given store content.
func (m *Manager) Restore(ctx context.Context) {
	raw, err := m.store.Get(ctx, common.KeyUser)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored session, starting anonymous", "error", err)
		m.dispatch(Restored{})
		return
	}
	if raw == nil {
		m.dispatch(Restored{})
		return
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		m.log.Warn(ctx, "stored session is not parseable, starting anonymous", "error", err)
		m.dispatch(Restored{})
		return
	}

	m.log.Debug(ctx, "session restored", "email", u.Email)
	m.dispatch(Restored{User: &u})
}

// Login authenticates against the stored records. On success it writes the
// session marker, then bumps the session counter (counter failures are
// logged, not surfaced), and transitions to PhaseAuthenticated. On any
// failure the state and the store are left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return common.ErrCredentialsRequired
	}
	if !emailPattern.MatchString(email) {
		return common.ErrInvalidEmailFormat
	}

	m.simulateLatency(ctx)

	users, err := loadUsers(ctx, m.store)
	if err != nil {
		m.log.Error(ctx, "failed to load user records", "error", err)
		return common.ErrLoginFailed
	}
	secrets, err := loadSecrets(ctx, m.store)
	if err != nil {
		m.log.Error(ctx, "failed to load credentials", "error", err)
		return common.ErrLoginFailed
	}

	lower := strings.ToLower(email)
	user := findByEmail(users, lower)
	stored, hasSecret := secrets[lower]

	// One generic error regardless of which half was wrong.
	if user == nil || !hasSecret || !m.codec.Verify(stored, password) {
		return common.ErrInvalidCredentials
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return common.ErrLoginFailed
	}
	// The marker write happens-before the counter write; a crash between
	// the two is an accepted inconsistency.
	if err := m.store.Set(ctx, common.KeyUser, raw); err != nil {
		m.log.Error(ctx, "failed to persist session", "error", err)
		return common.ErrLoginFailed
	}

	if _, err := m.IncrementSessionCount(ctx); err != nil {
		m.log.Warn(ctx, "failed to update session count", "error", err)
	}

	m.dispatch(LoggedIn{User: user})
	m.log.Info(ctx, "login succeeded", "email", user.Email)
	return nil
}

// Signup registers a new account and logs it in. The uniqueness check and
// all three writes (records, credentials, marker) run in one store
// transaction, so a failed signup leaves no partial state and two
// concurrent signups for the same email cannot both succeed. Signup does
// not touch the session counter.
func (m *Manager) Signup(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return common.ErrAllFieldsRequired
	}
	if !emailPattern.MatchString(email) {
		return common.ErrInvalidEmailFormat
	}
	if len(password) < 6 {
		return common.ErrPasswordTooShort
	}

	m.simulateLatency(ctx)

	var user *User
	err := m.store.Update(ctx, func(ctx context.Context, st kv.Store) error {
		users, err := loadUsers(ctx, st)
		if err != nil {
			return err
		}

		lower := strings.ToLower(strings.TrimSpace(email))
		if findByEmail(users, lower) != nil {
			return common.ErrDuplicateAccount
		}

		secrets, err := loadSecrets(ctx, st)
		if err != nil {
			return err
		}
		encoded, err := m.codec.Encode(password)
		if err != nil {
			return err
		}

		u := User{ID: m.newID(), Name: strings.TrimSpace(name), Email: lower}

		rawUsers, err := json.Marshal(append(users, u))
		if err != nil {
			return err
		}
		if err := st.Set(ctx, common.KeyUsers, rawUsers); err != nil {
			return err
		}

		secrets[u.Email] = encoded
		rawSecrets, err := json.Marshal(secrets)
		if err != nil {
			return err
		}
		if err := st.Set(ctx, common.KeyPasswords, rawSecrets); err != nil {
			return err
		}

		rawUser, err := json.Marshal(u)
		if err != nil {
			return err
		}
		if err := st.Set(ctx, common.KeyUser, rawUser); err != nil {
			return err
		}

		user = &u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return common.ErrDuplicateAccount
		}
		m.log.Error(ctx, "signup failed", "error", err)
		return common.ErrSignupFailed
	}

	m.dispatch(LoggedIn{User: user})
	m.log.Info(ctx, "signup succeeded", "email", user.Email)
	return nil
}

// Logout removes the stored session marker best-effort and transitions to
// PhaseAnonymous. A storage failure is logged; the in-memory state
// transitions regardless.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Delete(ctx, common.KeyUser); err != nil {
		m.log.Warn(ctx, "failed to remove stored session", "error", err)
	}
	m.dispatch(LoggedOut{})
}

// SessionCount returns the persisted login counter, initializing it to 1
// when absent or unreadable.
func (m *Manager) SessionCount(ctx context.Context) (int64, error) {
	raw, err := m.store.Get(ctx, common.KeySessionCount)
	if err != nil {
		return 0, err
	}
	if raw != nil {
		count, err := strconv.ParseInt(string(raw), 10, 64)
		if err == nil {
			return count, nil
		}
		m.log.Warn(ctx, "stored session count is not a number, resetting", "value", string(raw))
	}
	if err := m.store.Set(ctx, common.KeySessionCount, []byte("1")); err != nil {
		return 0, err
	}
	return 1, nil
}

// IncrementSessionCount bumps the persisted counter by one, starting from
// 1 when absent, and returns the new value.
func (m *Manager) IncrementSessionCount(ctx context.Context) (int64, error) {
	raw, err := m.store.Get(ctx, common.KeySessionCount)
	if err != nil {
		return 0, err
	}
	var count int64
	if raw != nil {
		parsed, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			m.log.Warn(ctx, "stored session count is not a number, restarting from zero", "value", string(raw))
		} else {
			count = parsed
		}
	}
	count++
	if err := m.store.Set(ctx, common.KeySessionCount, []byte(strconv.FormatInt(count, 10))); err != nil {
		return 0, err
	}
	return count, nil
}

// ResetSessionCount sets the persisted counter back to 1.
func (m *Manager) ResetSessionCount(ctx context.Context) error {
	return m.store.Set(ctx, common.KeySessionCount, []byte("1"))
}

// Users returns all registered account records.
func (m *Manager) Users(ctx context.Context) ([]User, error) {
	return loadUsers(ctx, m.store)
}

// Wipe removes every stored record and drops the in-memory session.
func (m *Manager) Wipe(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.dispatch(LoggedOut{})
	return nil
}

func (m *Manager) simulateLatency(ctx context.Context) {
	if m.latency <= 0 {
		return
	}
	select {
	case <-time.After(m.latency):
	case <-ctx.Done():
	}
}

func findByEmail(users []User, lowerEmail string) *User {
	for i := range users {
		if strings.ToLower(users[i].Email) == lowerEmail {
			return &users[i]
		}
	}
	return nil
}

func loadUsers(ctx context.Context, st kv.Store) ([]User, error) {
	raw, err := st.Get(ctx, common.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func loadSecrets(ctx context.Context, st kv.Store) (map[string]string, error) {
	raw, err := st.Get(ctx, common.KeyPasswords)
	if err != nil {
		return nil, err
	}
	secrets := make(map[string]string)
	if raw == nil {
		return secrets, nil
	}
	if err := json.Unmarshal(raw, &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}
