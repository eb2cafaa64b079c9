package testutil

// FixedTokenGenerator returns the same run token every time.
//
// Journal tests inject it in place of the UUIDv7 generator so the same
// scenario produces byte-identical snapshots. Implements
// trace.TokenGenerator.
//
// Thread-safety: stateless, safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a generator for the given token.
// An empty token defaults to "test-run-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedTokenGenerator) Generate() (string, error) {
	return g.token, nil
}
