package ai

import (
	"context"
	"testing"

	"finera/internal/testutil"
)

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, statementText string, categoryNames []string) (*ExtractedStatement, error) {
	return &ExtractedStatement{Transactions: []ExtractedTransaction{}}, nil
}

func TestParseProvider(t *testing.T) {
	for _, valid := range []string{"gemini", "openai", "deepseek"} {
		p, err := ParseProvider(valid)
		testutil.AssertNoError(t, err)
		if string(p) != valid {
			t.Errorf("expected %q, got %q", valid, p)
		}
	}

	_, err := ParseProvider("claude")
	testutil.AssertAppError(t, err, "UNKNOWN_PROVIDER")
}

func TestRegistry(t *testing.T) {
	t.Run("registered_extractor_is_returned", func(t *testing.T) {
		registry := NewRegistry()
		registry.RegisterExtractor(ProviderGemini, stubExtractor{})

		extractor, err := registry.Extractor(ProviderGemini)
		testutil.AssertNoError(t, err)
		if extractor == nil {
			t.Fatal("expected an extractor")
		}
	})

	t.Run("unconfigured_provider_is_a_config_error", func(t *testing.T) {
		registry := NewRegistry()
		registry.RegisterExtractor(ProviderGemini, stubExtractor{})

		_, err := registry.Extractor(ProviderOpenAI)
		testutil.AssertAppError(t, err, "PROVIDER_NOT_CONFIGURED")
	})

	t.Run("unconfigured_advisor", func(t *testing.T) {
		registry := NewRegistry()
		_, err := registry.Advisor(ProviderDeepSeek)
		testutil.AssertAppError(t, err, "PROVIDER_NOT_CONFIGURED")
	})
}
