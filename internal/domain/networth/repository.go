package networth

import "context"

// SnapshotRepository stores the net-worth trend. Save is an upsert on
// (user, date): recording twice in one day replaces the earlier point.
type SnapshotRepository interface {
	Save(ctx context.Context, s *Snapshot) (int, error)
	List(ctx context.Context, userID, limit int) ([]Snapshot, error)
}
