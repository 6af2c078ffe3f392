package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

///---------------------------------------------------------------------------------------------------------------------Throttle

type bodyCache struct {
	LastTime  time.Time
	CountTime int64
}

type keyCache struct {
	Maps     map[string]bodyCache
	RuleTime *time.Time
}

// Throttle blocks a client for WaitTime once it repeats a route
// MaxRepeat times with less than Duration between requests.
type Throttle struct {
	mu    sync.Mutex
	cache *gocache.Cache
	rules models.CacheStruct
	now   func() time.Time
}

func NewThrottle(rules models.CacheStruct) *Throttle {
	return &Throttle{
		cache: gocache.New(
			time.Second*time.Duration(rules.CleaningTime),
			time.Second*time.Duration(rules.CheckingTIme),
		),
		rules: rules,
		now:   time.Now,
	}
}

// Allow records a request of client on route. When it is refused, wait is
// the time left until the client may try again.
func (t *Throttle) Allow(client, route string) (wait time.Duration, ok bool) {
	lessMax := t.rules.LessRequestTime.MaxRepeat
	if lessMax <= 0 {
		return 0, true
	}
	lessDur := time.Second * time.Duration(t.rules.LessRequestTime.Duration)
	waitTime := time.Second * time.Duration(t.rules.WaitTime)

	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()

	item, has := t.cache.Get(client)
	if !has {
		t.cache.Set(client, keyCache{
			Maps: map[string]bodyCache{route: {LastTime: now, CountTime: 1}},
		}, gocache.DefaultExpiration)
		return 0, true
	}
	entry := item.(keyCache)

	/// wait for ending ruleTime
	if entry.RuleTime != nil {
		if now.Before(*entry.RuleTime) {
			return entry.RuleTime.Sub(now), false
		}
		entry.RuleTime = nil
		entry.Maps = map[string]bodyCache{route: {LastTime: now, CountTime: 1}}
		t.cache.Set(client, entry, gocache.DefaultExpiration)
		return 0, true
	}

	body := entry.Maps[route]
	recent := now.Before(body.LastTime.Add(lessDur))
	if body.CountTime >= lessMax && recent {
		tm := now.Add(waitTime)
		entry.RuleTime = &tm
		entry.Maps[route] = bodyCache{LastTime: now, CountTime: 1}
		t.cache.Set(client, entry, gocache.DefaultExpiration)
		return waitTime, false
	}

	if recent {
		body.CountTime++
	} else {
		body.CountTime = 1
	}
	body.LastTime = now
	entry.Maps[route] = body
	t.cache.Set(client, entry, gocache.DefaultExpiration)
	return 0, true
}

// Middleware refuses throttled clients with 429 and a Retry-After header.
func (t *Throttle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		wait, ok := t.Allow(c.ClientIP(), c.Request.Method+" "+c.FullPath())
		if ok {
			c.Next()
			return
		}
		secs := int64(wait.Seconds() + 0.999)
		c.Header("Retry-After", strconv.FormatInt(secs, 10))
		e.With(e.TooManyRequests("Too many requests, next attempt possible in %d sec.", secs)).Write(c)
	}
}
