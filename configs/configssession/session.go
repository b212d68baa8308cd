package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession creates the session store backing the builder draft and
// flash messages. In-memory storage is enough for a single instance;
// swap the Storage field for a shared backend when scaling out.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     12 * time.Hour,
		KeyLookup:      "cookie:formulate_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
