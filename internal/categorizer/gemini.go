package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/almasriprojects/BankAPI/internal/logging"
	"github.com/almasriprojects/BankAPI/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// knownCategories constrains what the model may answer.
var knownCategories = []string{
	models.CategorySalary,
	models.CategoryTransfer,
	models.CategorySubscription,
	models.CategoryPayment,
	models.CategoryCarRental,
	models.CategoryCreditCard,
	models.CategoryOther,
}

// GeminiRefiner asks the Gemini API to refine transactions the keyword table
// left at "Other". It is an optional fallback, disabled by default; the
// pipeline stays fully deterministic without it.
type GeminiRefiner struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiRefiner creates a refiner backed by the Gemini API.
func NewGeminiRefiner(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiRefiner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRefiner{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Refine asks the model for a category for one description. found is false
// when the model's answer is not one of the known categories; the caller
// keeps the keyword result in that case.
func (r *GeminiRefiner) Refine(ctx context.Context, description string) (category string, found bool, err error) {
	prompt := fmt.Sprintf(
		"Categorize this bank statement transaction into exactly one of these categories: %s.\n"+
			"Respond with only the category name.\nTransaction: %s",
		strings.Join(knownCategories, ", "), description)

	resp, err := r.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", false, fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false, nil
	}

	var answer string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			answer += string(text)
		}
	}
	answer = strings.TrimSpace(answer)

	for _, known := range knownCategories {
		if strings.EqualFold(answer, known) {
			r.logger.WithFields(
				logging.Field{Key: logging.FieldCategory, Value: known},
				logging.Field{Key: "description", Value: description},
			).Debug("Transaction category refined by Gemini")
			return known, true, nil
		}
	}

	r.logger.WithField("answer", answer).Debug("Gemini returned an unknown category")
	return "", false, nil
}

// Close releases the underlying API client.
func (r *GeminiRefiner) Close() error {
	return r.client.Close()
}
