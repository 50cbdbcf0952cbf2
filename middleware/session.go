package middleware

import "github.com/gofiber/fiber/v2/middleware/session"

// SessionStore correlates the registration initiate and payment verify
// steps: initiate stores the new registration id, verify reads it back.
var SessionStore = session.New()
