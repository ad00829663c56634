package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientMeta is the request metadata captured at chat creation when the
// widget does not send it in the body.
type ClientMeta struct {
	IpAddress string
	UserAgent string
}

// ExtractClientMeta derives the caller's IP and user agent from proxy
// headers, falling back to the connection address.
func ExtractClientMeta(ctx *fiber.Ctx) ClientMeta {
	ip := ctx.Get("X-Forwarded-For")
	if ip != "" {
		// First hop is the original client.
		if idx := strings.Index(ip, ","); idx >= 0 {
			ip = ip[:idx]
		}
		ip = strings.TrimSpace(ip)
	}
	if ip == "" {
		ip = ctx.Get("X-Real-IP")
	}
	if ip == "" {
		ip = ctx.IP()
	}

	return ClientMeta{
		IpAddress: ip,
		UserAgent: ctx.Get("User-Agent"),
	}
}
