package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/nowplaying/internal/services/access"
)

// ErrRoleNotFound is returned when the guild has no role with the configured name
var ErrRoleNotFound = errors.New("role not found")

// RoleControllerConfig holds configuration for the role controller
type RoleControllerConfig struct {
	Roles    RoleManager
	GuildID  string
	RoleName string
}

// RoleController marks the machine holder with a guild role
type RoleController struct {
	roles    RoleManager
	guildID  string
	roleName string

	mu     sync.Mutex
	roleID string
}

var _ access.Controller = (*RoleController)(nil)

// NewRoleController creates a role controller
func NewRoleController(cfg *RoleControllerConfig) (*RoleController, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Roles == nil {
		return nil, errors.New("role manager cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	if cfg.RoleName == "" {
		return nil, errors.New("role name cannot be empty")
	}

	return &RoleController{
		roles:    cfg.Roles,
		guildID:  cfg.GuildID,
		roleName: cfg.RoleName,
	}, nil
}

// Grant gives the account the access role
func (r *RoleController) Grant(ctx context.Context, accountID string) error {
	roleID, err := r.resolveRole()
	if err != nil {
		return err
	}

	if err := r.roles.AddRole(r.guildID, accountID, roleID); err != nil {
		return fmt.Errorf("failed to add role %s to %s: %w", r.roleName, accountID, err)
	}
	return nil
}

// Revoke removes the access role from the account
func (r *RoleController) Revoke(ctx context.Context, accountID string) error {
	roleID, err := r.resolveRole()
	if err != nil {
		return err
	}

	if err := r.roles.RemoveRole(r.guildID, accountID, roleID); err != nil {
		return fmt.Errorf("failed to remove role %s from %s: %w", r.roleName, accountID, err)
	}
	return nil
}

// resolveRole looks the role up by name once and caches its ID
func (r *RoleController) resolveRole() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roleID != "" {
		return r.roleID, nil
	}

	roles, err := r.roles.GuildRoles(r.guildID)
	if err != nil {
		return "", fmt.Errorf("failed to list guild roles: %w", err)
	}

	for _, role := range roles {
		if role.Name == r.roleName {
			r.roleID = role.ID
			return r.roleID, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrRoleNotFound, r.roleName)
}
