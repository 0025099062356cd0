package domain

type CtxKey string

const (
	// KeyRequestID is the gin context key holding the request ID
	KeyRequestID CtxKey = "RequestID"
)

// RequestIDHeader carries the request ID in and out of the service.
const RequestIDHeader = "X-Request-ID"
