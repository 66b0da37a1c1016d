package types

// AskRequest is the JSON payload for POST /api/ask.
type AskRequest struct {
	// Question to answer. Surrounding whitespace is ignored.
	// example: How do I rotate crops?
	Prompt string `json:"prompt" example:"How do I rotate crops?"`
}

// AskResponse carries the generated answer.
type AskResponse struct {
	// Generated answer, trimmed.
	// example: Rotate corn, soy, and clover each season.
	Response string `json:"response" example:"Rotate corn, soy, and clover each season."`
}

// HealthResponse is the liveness payload for GET /health.
type HealthResponse struct {
	// Always "healthy" while the process serves requests.
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// Whether a model handle is currently loaded.
	// example: true
	ModelLoaded bool `json:"model_loaded" example:"true"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: Please enter a question.
	Error string `json:"error" example:"Please enter a question."`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse summarizes the model handle for GET /status.
type StatusResponse struct {
	// Lifecycle state: uninitialized, loading, ready or error.
	// example: ready
	State string `json:"state" example:"ready"`
	// Model file path (absolute once loaded).
	// example: /srv/ruralai/model/tinyllama/tinyllama-1.1b-chat-v1.0.q4_k_m.gguf
	ModelPath string `json:"model_path" example:"/srv/ruralai/model/tinyllama/tinyllama-1.1b-chat-v1.0.q4_k_m.gguf"`
	// Whether a model handle is loaded.
	// example: true
	ModelLoaded bool `json:"model_loaded" example:"true"`
	// Last load error, if any.
	// example: model file not found at /srv/ruralai/model/tinyllama/x.gguf
	Error string `json:"error,omitempty"`
	// Number of load attempts since start.
	// example: 1
	LoadAttempts int `json:"load_attempts" example:"1"`
	// Whether this binary was built with llama.cpp support.
	// example: true
	LlamaBuilt bool `json:"llama_built" example:"true"`
	// Maximum generated tokens per answer.
	// example: 200
	MaxTokens int `json:"max_tokens" example:"200"`
	// Sampling temperature.
	// example: 0.7
	Temperature float32 `json:"temperature" example:"0.7"`
	// Seconds since the process started.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
}
