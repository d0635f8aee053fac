package model

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Error   *string `json:"error"`
}

// Success wraps data in a successful envelope.
func Success[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: &data}
}

// Failure builds an error envelope.
func Failure(message string) APIResponse[any] {
	return APIResponse[any]{Success: false, Error: &message}
}

// CreatedResult is returned by the endpoints that create a resource.
type CreatedResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
