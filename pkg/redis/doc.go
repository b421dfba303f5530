// Package redis connects to Redis with github.com/redis/go-redis/v9 and
// exposes a health check. The site package uses the client for its shared
// host cache (site.RedisCache).
package redis
