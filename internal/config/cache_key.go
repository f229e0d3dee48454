package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SessionKey returns the Redis key holding a user's active token JTI.
func (r *CacheKeyStruct) SessionKey(email string) string {
	return fmt.Sprintf("session:%s", email)
}

// LogRateKey returns the Redis key counting log messages for an origin
// within the current rate window.
func (r *CacheKeyStruct) LogRateKey(origin string) string {
	return fmt.Sprintf("lograte:%s", origin)
}

var CacheKey = NewCacheKeyStruct()
