package repository

import (
	"context"
	"encoding/json"
	"errors"

	"rentify/database/store"
	"rentify/models"
)

// loadFlag reports whether the boolean flag at key is set true. A missing
// key is simply false.
func (r *KVRepository) loadFlag(ctx context.Context, key string) (bool, error) {
	data, err := r.Store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var flag bool
	if err := json.Unmarshal(data, &flag); err != nil {
		// A corrupt flag reads as logged out.
		return false, nil
	}
	return flag, nil
}

// loadIdentity decodes the identity blob at key, or nil if absent/corrupt.
func (r *KVRepository) loadIdentity(ctx context.Context, key string) (*models.Identity, error) {
	data, err := r.Store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, nil
	}
	return &id, nil
}

// LoadSession rehydrates the dual-slot session. A slot is authenticated only
// when its flag and its identity blob agree; an identity blob with the flag
// absent (or the reverse) reads as logged out.
func (r *KVRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	userFlag, err := r.loadFlag(ctx, store.KeyUserLoggedIn)
	if err != nil {
		return session, err
	}
	if userFlag {
		id, err := r.loadIdentity(ctx, store.KeyUserIdentity)
		if err != nil {
			return session, err
		}
		session.User = id
	}

	adminFlag, err := r.loadFlag(ctx, store.KeyAdminLoggedIn)
	if err != nil {
		return session, err
	}
	if adminFlag {
		id, err := r.loadIdentity(ctx, store.KeyAdminIdentity)
		if err != nil {
			return session, err
		}
		session.Admin = id
	}

	return session, nil
}

func (r *KVRepository) saveSlot(ctx context.Context, identityKey, flagKey string, id models.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.save(ctx, identityKey, id); err != nil {
		return err
	}
	return r.save(ctx, flagKey, true)
}

func (r *KVRepository) clearSlot(ctx context.Context, identityKey, flagKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Store.Delete(ctx, flagKey); err != nil {
		return err
	}
	return r.Store.Delete(ctx, identityKey)
}

func (r *KVRepository) SaveUserSession(ctx context.Context, id models.Identity) error {
	return r.saveSlot(ctx, store.KeyUserIdentity, store.KeyUserLoggedIn, id)
}

func (r *KVRepository) ClearUserSession(ctx context.Context) error {
	return r.clearSlot(ctx, store.KeyUserIdentity, store.KeyUserLoggedIn)
}

func (r *KVRepository) SaveAdminSession(ctx context.Context, id models.Identity) error {
	return r.saveSlot(ctx, store.KeyAdminIdentity, store.KeyAdminLoggedIn, id)
}

func (r *KVRepository) ClearAdminSession(ctx context.Context) error {
	return r.clearSlot(ctx, store.KeyAdminIdentity, store.KeyAdminLoggedIn)
}
