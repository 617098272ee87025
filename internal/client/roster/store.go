package roster

import "context"

// KV is the local persistence collaborator: a single keyed entry holding the
// JSON-serialized contact list, read at startup and rewritten after every
// mutation.
type KV interface {
	// Load returns the stored payload and whether the entry exists.
	Load(ctx context.Context) (payload []byte, ok bool, err error)
	Save(ctx context.Context, payload []byte) error
}
