package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories run against. Both the
// single instance and the cluster client satisfy it.
type Client interface {
	redis.UniversalClient
}
