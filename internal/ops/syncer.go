package ops

import (
	"context"
	"encoding/json"

	"github.com/jacksmith/addonsync/internal/stremio"
)

// Syncer is the remote collaborator that accepts an addon collection.
// The concrete implementation is stremio.Client; tests substitute fakes.
type Syncer interface {
	SetAddonCollection(ctx context.Context, authKey string, addons json.RawMessage) (*stremio.Response, error)
}
