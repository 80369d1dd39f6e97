package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

const (
	msgRateLimited = "слишком много запросов, попробуйте позже"

	defaultIdleTTL = 10 * time.Minute
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RateLimiterOptions параметры лимитера.
// TrustForwardedFor включается только за своим прокси: иначе клиент подставит любой X-Forwarded-For
type RateLimiterOptions struct {
	RequestsPerMinute int
	Burst             int
	TrustForwardedFor bool
	IdleTTL           time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket на каждый IP клиента. Лимитеры клиентов, молчащих дольше IdleTTL, удаляются
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time

	limit             rate.Limit
	burst             int
	trustForwardedFor bool
	idleTTL           time.Duration
	now               func() time.Time
	logger            Logger
}

// NewRateLimiter создает лимитер на RequestsPerMinute запросов в минуту с запасом Burst
func NewRateLimiter(opts RateLimiterOptions, logger Logger) *RateLimiter {
	idleTTL := opts.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}

	return &RateLimiter{
		limiters:          make(map[string]*clientLimiter),
		limit:             rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute)),
		burst:             opts.Burst,
		trustForwardedFor: opts.TrustForwardedFor,
		idleTTL:           idleTTL,
		now:               time.Now,
		logger:            logger,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.evictIdle(now)
		rl.lastSweep = now
	}

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// evictIdle вызывается под mu
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) >= rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// Middleware отвечает 429, когда клиент исчерпал лимит
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r, rl.trustForwardedFor)
		if !rl.limiter(ip).Allow() {
			rl.logger.Warn("rate limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request, trustForwardedFor bool) string {
	if trustForwardedFor {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			return strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
