package classifier

import "context"

// AIClient defines the interface for AI-based categorization services.
// The abstraction keeps the classifier testable without network calls and
// leaves room for providers other than Gemini.
type AIClient interface {
	// SuggestCategory returns a category name for the description, chosen
	// from the given candidate names, or an error if the service fails.
	SuggestCategory(ctx context.Context, description string, categories []string) (string, error)
}

// MockAIClient is a test double for AIClient.
type MockAIClient struct {
	// Responses maps normalized descriptions to the category to return.
	Responses map[string]string
	// Err, when set, is returned by every call.
	Err error
	// Calls records the descriptions this client was asked about.
	Calls []string
}

// SuggestCategory implements AIClient.
func (m *MockAIClient) SuggestCategory(_ context.Context, description string, _ []string) (string, error) {
	m.Calls = append(m.Calls, description)
	if m.Err != nil {
		return "", m.Err
	}
	if category, ok := m.Responses[description]; ok {
		return category, nil
	}
	return "", nil
}
