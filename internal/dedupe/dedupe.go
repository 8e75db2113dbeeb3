package dedupe

// Package dedupe provides the shared singleflight group used to collapse
// concurrent duplicate work behind a single in-flight call. Today that is
// the health endpoint's database ping: a burst of probes results in one
// ping while the other callers wait for its result.

import "golang.org/x/sync/singleflight"

// HealthGroup deduplicates concurrent database pings from /api/health.
var HealthGroup singleflight.Group
