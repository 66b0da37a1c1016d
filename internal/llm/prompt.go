package llm

import "strings"

// SystemPreamble steers the general-purpose model toward rural and
// agricultural questions. It is sent verbatim, trailing space included.
const SystemPreamble = "You are a helpful AI assistant specializing in rural living, agriculture, and farming. \n" +
	"Provide practical, clear answers about farming techniques, crop management, animal husbandry, and rural life.\n" +
	"Keep responses concise and helpful for farmers and rural communities."

// Role tags for the chat turn format. They double as stop sequences so the
// model halts before inventing the next turn.
const (
	HumanTag     = "Human:"
	AssistantTag = "Assistant:"
)

// StopSequences returns a fresh copy of the stop sequences sent with every completion.
func StopSequences() []string { return []string{HumanTag, AssistantTag} }

// BuildPrompt joins the preamble and a single user turn.
func BuildPrompt(question string) string {
	return SystemPreamble + "\n\n" + HumanTag + " " + strings.TrimSpace(question)
}
