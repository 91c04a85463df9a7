package reply

import "errors"

var (
	ErrEmptyPrompt = errors.New("reply: prompt is empty")
	ErrEmptyReply  = errors.New("reply: generator returned empty text")
)
