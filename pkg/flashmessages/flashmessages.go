// Package flashmessages stores one-shot UI notices in the session:
// written on a redirect, consumed by the next render.
package flashmessages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// Messages is what a render consumes.
type Messages struct {
	Success string
	Error   string
}

// SetFlashMessage records a one-shot message under the given key.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := sessionFromCtx(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages consumes and returns the pending messages.
func GetFlashMessages(c *fiber.Ctx) Messages {
	sess, err := sessionFromCtx(c)
	if err != nil {
		return Messages{}
	}

	var msgs Messages
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
	}
	if msgs.Success != "" || msgs.Error != "" {
		_ = sess.Save()
	}
	return msgs
}

func sessionFromCtx(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok {
		return nil, fiber.ErrInternalServerError
	}
	return store.Get(c)
}
