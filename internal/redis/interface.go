package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the application depends on. It embeds
// UniversalClient so tests can substitute miniredis or a mock.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys
const Nil = redis.Nil

// Tx is a transaction bound to the keys passed to Watch
type Tx = redis.Tx

// Pipeliner queues commands for a MULTI/EXEC block
type Pipeliner = redis.Pipeliner

// TxFailedErr is returned by Watch when a watched key changed before EXEC
var TxFailedErr = redis.TxFailedErr

// StringCmd is the result of a single-value read
type StringCmd = redis.StringCmd
