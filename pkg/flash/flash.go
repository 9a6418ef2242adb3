package flash

import (
	"encoding/gob"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	CategorySuccess = "success"
	CategoryInfo    = "info"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
)

type Message struct {
	Category string
	Text     string
}

func init() {
	gob.Register(Message{})
}

// Add queues a one-shot message on the cookie session. It is consumed by the
// next rendered page.
func Add(c echo.Context, category, text string) {
	sess, err := session.Get("session", c)
	if err != nil {
		log.Error().Err(err).Str("component", "Add").Msg("")
		return
	}

	sess.AddFlash(Message{Category: category, Text: text})
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Error().Err(err).Str("component", "Add").Msg("")
	}
}

// Pop drains all queued messages.
func Pop(c echo.Context) []Message {
	sess, err := session.Get("session", c)
	if err != nil {
		log.Error().Err(err).Str("component", "Pop").Msg("")
		return nil
	}

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Error().Err(err).Str("component", "Pop").Msg("")
	}

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		if msg, ok := item.(Message); ok {
			messages = append(messages, msg)
		}
	}

	return messages
}
