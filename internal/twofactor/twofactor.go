// Package twofactor exposes the read side of two-factor authentication:
// whether a user has a usable second-factor device. Enrollment and challenge
// verification live elsewhere.
package twofactor

import (
	"context"

	"github.com/nfrund/remora/internal/domain"
	"github.com/nfrund/remora/internal/models"
)

// Service answers second-factor device questions for the snapshot pipeline.
type Service struct {
	devices domain.DeviceStore
}

// NewService creates a new Service instance.
func NewService(devices domain.DeviceStore) *Service {
	return &Service{devices: devices}
}

// DefaultDevice returns the user's confirmed second-factor device, or nil
// when the user has none.
func (s *Service) DefaultDevice(ctx context.Context, user *models.User) (*models.Device, error) {
	if user == nil {
		return nil, nil
	}
	return s.devices.DefaultDevice(ctx, user)
}
