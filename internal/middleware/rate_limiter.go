package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/TuringTechX/openfoodnetwork/internal/apierror"

	"github.com/gin-gonic/gin"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	rateMap   = make(map[string]*rateEntry)
	rateMapMu sync.Mutex
)

// RateLimiter limits requests per IP to maxRequests per window.
// Catalog resolution is read-only but unauthenticated, so per-IP limiting is
// the only backpressure against scrapers.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	startPurgeLoop(window)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		rateMapMu.Lock()
		entry, exists := rateMap[ip]
		if !exists {
			entry = &rateEntry{}
			rateMap[ip] = entry
		}
		rateMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests"))
			return
		}
		c.Next()
	}
}

var purgeOnce sync.Once

// startPurgeLoop drops expired entries so the map does not grow with every
// IP ever seen.
func startPurgeLoop(window time.Duration) {
	purgeOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(5 * window)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				rateMapMu.Lock()
				for ip, entry := range rateMap {
					entry.mu.Lock()
					expired := now.After(entry.windowEnd)
					entry.mu.Unlock()
					if expired {
						delete(rateMap, ip)
					}
				}
				rateMapMu.Unlock()
			}
		}()
	})
}
