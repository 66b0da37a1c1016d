package llm

// Outcome tags a Result.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeModelUnavailable
	OutcomeGenerationFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeModelUnavailable:
		return "model_unavailable"
	case OutcomeGenerationFailed:
		return "generation_failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one generation: Ok(text), ModelUnavailable or
// GenerationFailed(reason). The two failure kinds are rendered differently
// by callers and are never collapsed.
type Result struct {
	Outcome Outcome
	Text    string
	Reason  string
}

// Ok wraps generated text.
func Ok(text string) Result { return Result{Outcome: OutcomeOK, Text: text} }

// Unavailable reports that no engine was loaded.
func Unavailable() Result {
	return Result{Outcome: OutcomeModelUnavailable, Reason: ErrModelNotLoaded.Error()}
}

// Failed reports a failed completion.
func Failed(reason string) Result {
	return Result{Outcome: OutcomeGenerationFailed, Reason: reason}
}

// OK reports whether the result carries generated text.
func (r Result) OK() bool { return r.Outcome == OutcomeOK }

// Err converts a failed result into an error, nil on success.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeOK:
		return nil
	case OutcomeModelUnavailable:
		return ErrModelNotLoaded
	default:
		return generationError{reason: r.Reason}
	}
}

// String renders the soft-failure form: the text on success, a readable
// error string otherwise.
func (r Result) String() string {
	switch r.Outcome {
	case OutcomeOK:
		return r.Text
	case OutcomeModelUnavailable:
		return "Error: Model not loaded"
	default:
		return generationError{reason: r.Reason}.Error()
	}
}
