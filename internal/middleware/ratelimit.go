package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/octobees/automatelabs-site/internal/config"
)

const maxTrackedClients = 4096

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore keeps one token bucket per client key and never tracks more
// than max clients.
type limiterStore struct {
	mu         sync.Mutex
	clients    map[string]*clientLimiter
	perRequest time.Duration
	burst      int
	idle       time.Duration
	max        int
}

func newLimiterStore(cfg config.RateLimitConfig, max int) *limiterStore {
	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}
	return &limiterStore{
		clients:    make(map[string]*clientLimiter),
		perRequest: perRequest,
		burst:      cfg.Requests,
		idle:       cfg.Interval,
		max:        max,
	}
}

func (s *limiterStore) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cl, ok := s.clients[key]
	if !ok {
		if len(s.clients) >= s.max {
			s.evictLocked(now)
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(s.perRequest), s.burst)}
		s.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// evictLocked drops stale clients, and the least recently seen one when
// none are stale.
func (s *limiterStore) evictLocked(now time.Time) {
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, cl := range s.clients {
		if now.Sub(cl.lastSeen) > s.idle {
			delete(s.clients, k)
			continue
		}
		if oldestKey == "" || cl.lastSeen.Before(oldest) {
			oldestKey, oldest = k, cl.lastSeen
		}
	}
	if len(s.clients) >= s.max && oldestKey != "" {
		delete(s.clients, oldestKey)
	}
}

func (s *limiterStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// ClientIPExtractor picks how the client address is derived for rate
// limiting. Forwarding headers are honored only behind a trusted proxy;
// otherwise the TCP peer address is used.
func ClientIPExtractor(trustProxyHeaders bool) echo.IPExtractor {
	if trustProxyHeaders {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}

// FormRateLimiter applies a token bucket per client IP to form submissions
// (POST requests under /forms/). The client IP comes from c.RealIP, so the
// echo instance should carry an IPExtractor such as ClientIPExtractor.
func FormRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}
	return formRateLimiter(newLimiterStore(cfg, maxTrackedClients))
}

func formRateLimiter(store *limiterStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost || !strings.HasPrefix(req.URL.Path, "/forms/") {
				return next(c)
			}

			if !store.allow(c.RealIP(), time.Now()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"status":  "error",
					"message": "Too many submissions. Please wait a moment and try again.",
				})
			}

			return next(c)
		}
	}
}
