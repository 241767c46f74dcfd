package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/party"
)

// DirectoryRepository reads the users, clients and owners maintained by the
// account subsystem. Lookups are scoped by owner: a record of another owner is
// reported as not found.
type DirectoryRepository interface {
	GetUser(ctx context.Context, ownerID kernel.ID, userID kernel.ID) (*party.User, error)
	GetClient(ctx context.Context, ownerID kernel.ID, clientID kernel.ID) (*party.Client, error)
	GetOwner(ctx context.Context, ownerID kernel.ID) (*party.Owner, error)
}
