package setgen

// Config controls the behavior of the LLM set generator.
type Config struct {
	// MaxTokens is the token budget for the response. Whole sets are
	// large, so this is well above a single-question budget.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts is how many times a set failing the balance checks is
	// regenerated before giving up.
	MaxAttempts int
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
		MaxAttempts: 3,
	}
}
