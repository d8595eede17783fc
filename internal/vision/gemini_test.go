package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []*genai.Part{
			genai.NewPartFromText(`{"itemType": "Dress"}`),
		}},
	}}}

	text, err := geminiResponseText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"itemType": "Dress"}`, text)
}

func TestGeminiResponseTextEmptyResults(t *testing.T) {
	tests := map[string]*genai.GenerateContentResponse{
		"no candidates": {},
		// Safety-blocked candidates come back with nil Content.
		"nil content": {Candidates: []*genai.Candidate{{}}},
		"no parts":    {Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
	}
	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := geminiResponseText(resp)
			assert.Error(t, err)
		})
	}
}
