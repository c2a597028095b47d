package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
)

const MsgMuitasRequisicoes = "Muitas requisições. Tente novamente em instantes."

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) Limiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[key]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[key] = limiter
	}
	return limiter
}

// RateLimitByIP limita tentativas por IP; usado no login.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.Limiter(c.ClientIP()).Allow() {
			httpresp.Fail(c, http.StatusTooManyRequests, MsgMuitasRequisicoes)
			c.Abort()
			return
		}
		c.Next()
	}
}
