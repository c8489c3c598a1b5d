package echoapi

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4/middleware"
)

// requestID tags every request & response with a X-Request-ID, generated unless sent by the client.
var requestID = middleware.RequestIDWithConfig(middleware.RequestIDConfig{
	Generator: func() string { return uuid.New().String() },
})
