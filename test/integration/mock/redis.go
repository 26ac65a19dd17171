package mock

import (
	"github.com/alicebob/miniredis/v2"
)

// Redis is an in-process redis server the submission gate connects to.
type Redis struct {
	server *miniredis.Miniredis
}

func NewRedis() (*Redis, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, err
	}
	return &Redis{server: server}, nil
}

// URL returns a redis:// URL for config.RedisConfig.
func (r *Redis) URL() string {
	return "redis://" + r.server.Addr()
}

// Set stores a raw key, bypassing the application.
func (r *Redis) Set(key, value string) error {
	return r.server.Set(key, value)
}

// Exists reports whether key is present.
func (r *Redis) Exists(key string) bool {
	return r.server.Exists(key)
}

func (r *Redis) Clear() {
	r.server.FlushAll()
}

func (r *Redis) Close() {
	r.server.Close()
}
