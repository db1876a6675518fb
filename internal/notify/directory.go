package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cabinetmed/cabinet_backend/internal/repo"
	entuser "github.com/cabinetmed/cabinet_backend/internal/repo/user"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
)

// entDirectory resolves delivery addresses from the database: the
// reminder preference override when set, the user's email otherwise.
type entDirectory struct {
	db    *repo.Client
	prefs notification.Service
}

func NewDirectory(db *repo.Client, prefs notification.Service) Directory {
	return &entDirectory{db: db, prefs: prefs}
}

func (d *entDirectory) Address(ctx context.Context, userID uuid.UUID) (string, error) {
	p, err := d.prefs.ResolvePrefs(ctx, userID)
	if err != nil {
		return "", err
	}
	if p.OverrideEmail != nil && *p.OverrideEmail != "" {
		return *p.OverrideEmail, nil
	}

	u, err := d.db.User.Query().
		Where(entuser.ID(userID)).
		Only(ctx)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	return u.Email, nil
}
