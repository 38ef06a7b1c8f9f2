package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response (and accepted request) header carrying the ray id.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key under which the ray id is stored.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a ray id.
// A well-formed incoming X-Ray-ID is reused; otherwise a fresh UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}

// FromContext returns the ray id of the request, or "".
func FromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
