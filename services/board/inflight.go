package board

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// inFlightTTL bounds how long a submission mark can linger if a process dies
// mid-request.
const inFlightTTL = 30 * time.Second

// inFlightGuard is the per-shoot mutual exclusion for transition submission.
// One outstanding submission per shoot; different shoots are independent.
type inFlightGuard struct {
	cache *redis.Client
}

func (g *inFlightGuard) key(shootID string) string {
	return "inflight:" + shootID
}

// acquire marks a shoot as having a submission outstanding. Returns false if
// one already is.
func (g *inFlightGuard) acquire(ctx context.Context, shootID string) (bool, error) {
	return g.cache.SetNX(ctx, g.key(shootID), 1, inFlightTTL).Result()
}

// release clears the mark once the submission resolves.
func (g *inFlightGuard) release(ctx context.Context, shootID string) {
	g.cache.Del(ctx, g.key(shootID))
}

// inFlight reports whether a submission is outstanding, for disabling the
// triggering control.
func (g *inFlightGuard) inFlight(ctx context.Context, shootID string) (bool, error) {
	n, err := g.cache.Exists(ctx, g.key(shootID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
