package quiz

// MaxTokens is the output ceiling for one quiz.
const MaxTokens = 4096

// Config controls the LLMGenerator.
type Config struct {
	// Validators run in order on every parsed quiz; the first failure
	// stops the chain.
	Validators []Validator

	MaxTokens int

	// Temperature of zero keeps the provider default.
	Temperature float64
}

// DefaultConfig returns the standard validator chain and the fixed
// token ceiling.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
		},
		MaxTokens: MaxTokens,
	}
}
