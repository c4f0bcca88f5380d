// Package permissions decides whether a user may act on a post: ban checks
// against the community and the site, and edit authority resolved from the
// post creator, the community moderators and the site admins.
package permissions

import (
	"context"
	"fmt"
	"slices"

	"Agora/internal/core/communities"
	"Agora/internal/core/users"
)

// BanReader reports community bans
type BanReader interface {
	IsBanned(ctx context.Context, userID, communityID int) (bool, error)
}

// ModeratorReader lists a community's moderators
type ModeratorReader interface {
	ListModerators(ctx context.Context, communityID int) ([]*communities.ModeratorView, error)
}

// UserReader reads user records and the admin roster
type UserReader interface {
	GetView(ctx context.Context, id int) (*users.UserView, error)
	ListAdmins(ctx context.Context) ([]*users.UserView, error)
}

// Engine evaluates bans and edit authority.
// Rosters are read on every call; nothing is cached between requests.
type Engine struct {
	bans       BanReader
	moderators ModeratorReader
	users      UserReader
}

// NewEngine creates an authorization engine
func NewEngine(bans BanReader, moderators ModeratorReader, users UserReader) *Engine {
	return &Engine{
		bans:       bans,
		moderators: moderators,
		users:      users,
	}
}

// CheckBans fails with ErrCommunityBanned or ErrSiteBanned.
// The community ban is checked first.
func (e *Engine) CheckBans(ctx context.Context, userID, communityID int) error {
	banned, err := e.bans.IsBanned(ctx, userID, communityID)
	if err != nil {
		return fmt.Errorf("failed to check community ban: %w", err)
	}
	if banned {
		return ErrCommunityBanned
	}

	user, err := e.users.GetView(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to read user %d: %w", userID, err)
	}
	if user.Banned {
		return ErrSiteBanned
	}

	return nil
}

// Editors returns every user id allowed to edit a post:
// the creator, then the community's moderators, then the site admins
func (e *Engine) Editors(ctx context.Context, creatorID, communityID int) ([]int, error) {
	editors := []int{creatorID}

	mods, err := e.moderators.ListModerators(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderators: %w", err)
	}
	for _, m := range mods {
		if !slices.Contains(editors, m.UserID) {
			editors = append(editors, m.UserID)
		}
	}

	admins, err := e.users.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	for _, a := range admins {
		if !slices.Contains(editors, a.ID) {
			editors = append(editors, a.ID)
		}
	}

	return editors, nil
}

// CheckEditAuthority fails with ErrEditNotAllowed unless userID is an editor
func (e *Engine) CheckEditAuthority(ctx context.Context, userID, creatorID, communityID int) error {
	editors, err := e.Editors(ctx, creatorID, communityID)
	if err != nil {
		return err
	}
	if !slices.Contains(editors, userID) {
		return ErrEditNotAllowed
	}
	return nil
}
