package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
	// Calls acumula los prompts recibidos, en orden.
	Calls []string
}

func (m *MockClient) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.Calls = append(m.Calls, systemPrompt+"\n"+userPrompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
