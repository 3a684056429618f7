package database

import (
	"context"
	"fmt"

	"github.com/nfrund/remora/internal/models"
	"github.com/surrealdb/surrealdb.go"
)

// DeviceStore implements domain.DeviceStore on SurrealDB.
type DeviceStore struct {
	db *surrealdb.DB
}

// NewDeviceStore creates a new DeviceStore instance.
func NewDeviceStore(db *surrealdb.DB) *DeviceStore {
	return &DeviceStore{db: db}
}

// DefaultDevice returns the user's confirmed second-factor device, or nil
// when none is registered.
func (s *DeviceStore) DefaultDevice(ctx context.Context, user *models.User) (*models.Device, error) {
	query := "SELECT * FROM device WHERE user = $user AND confirmed = true ORDER BY name"
	device, err := QueryOne[models.Device](ctx, s.db, query, map[string]any{"user": user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to query default device: %w", err)
	}
	return device, nil
}
