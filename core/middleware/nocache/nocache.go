package nocache

import "github.com/gofiber/fiber/v2"

// Header values disabling caching at the client and at CDN edges.
const (
	CacheControl    = "Cache-Control"
	CDNCacheControl = "CDN-Cache-Control"
	NoStore         = "no-store"
)

// New returns a middleware that marks every response as non-cacheable.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(CDNCacheControl, NoStore)
		c.Set(CacheControl, NoStore)
		return c.Next()
	}
}
