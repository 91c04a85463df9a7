package ollama

import "errors"

// ErrRateLimited is returned when the server answers 429 Too Many Requests.
var ErrRateLimited = errors.New("ollama: rate limited")
