package reply

import "time"

const (
	LogPrefixGenerate = "internal.reply.Generate"

	// DefaultTimeout bounds a generation call when none is configured.
	DefaultTimeout = 20 * time.Second

	SystemPrompt = `You are a concise, friendly customer support agent.
Answer using only the facts given in the prompt. Do not invent ticket numbers, prices or policies.
Keep replies under 120 words.`
)
