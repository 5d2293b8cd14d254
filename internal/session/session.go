package session

import (
	"fmt"
	"strconv"
	"sync"

	"entrega-tracker/internal/apperr"
	"entrega-tracker/internal/logx"
)

// Context holds the authenticated user id for the process lifetime.
// It is set by Login, cleared by Logout and read by every component
// that scopes a request to "my deliveries". There is no default user:
// reading without a session is a NotAuthenticated condition.
type Context struct {
	mu     sync.RWMutex
	store  Store
	logger logx.Logger

	userID int64
	authed bool
	epoch  uint64
}

// New creates a session Context, restoring a previously persisted
// user id if one exists. A corrupt persisted value is discarded.
func New(store Store, logger logx.Logger) (*Context, error) {
	c := &Context{store: store, logger: logger}

	raw, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if raw == "" {
		return c, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("discarding corrupt persisted session", logx.String("value", raw))
		return c, nil
	}

	c.userID = id
	c.authed = true
	logger.Info("session restored", logx.Int64("user_id", id))
	return c, nil
}

// CurrentUserID returns the authenticated user id, or NotAuthenticated
// when no session is established.
func (c *Context) CurrentUserID() (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.authed {
		return 0, apperr.NotAuthenticated
	}
	return c.userID, nil
}

// Epoch returns the current session epoch. The epoch changes on every
// login and logout; a fetch started under one epoch must not apply its
// result under another.
func (c *Context) Epoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Login establishes the session for the given user and persists it.
func (c *Context) Login(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("login user id %d: %w", userID, apperr.Invalid)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Write(strconv.FormatInt(userID, 10)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	c.userID = userID
	c.authed = true
	c.epoch++
	c.logger.Info("session established", logx.Int64("user_id", userID))
	return nil
}

// Logout destroys the session and removes the persisted key.
func (c *Context) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		return err
	}
	c.userID = 0
	c.authed = false
	c.epoch++
	c.logger.Info("session cleared")
	return nil
}
