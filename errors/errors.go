package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrUnknownEvent   = fmt.Errorf("unknown event")
	ErrInvalidPayload = fmt.Errorf("invalid payload")
)
