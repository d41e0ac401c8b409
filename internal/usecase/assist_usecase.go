package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dorakingdom/internal/domain/entity"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/logger"
)

// fencedJSON captures the first JSON object wrapped in triple backticks.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

const questPrompt = `Based on this mission description: %q,
create %d specific, actionable quest steps.
Return ONLY a JSON object with exactly %d-%d quests following this structure:
{
  "Q1": {"questName": "[First step/task]"},
  "Q2": {"questName": "[Second step/task]"},
  "Q3": {"questName": "[Third step/task]"}
}`

// sessionTTL bounds how long an abandoned session pins its document text
// in process memory.
const sessionTTL = time.Hour

// chatSession replaces the original's process-wide mutable PDF context: each
// conversation carries its own document text, keyed by session id. Sessions
// older than sessionTTL are swept by the cleanup routine.
type chatSession struct {
	ID         string
	PDFContext string
	CreatedAt  time.Time
}

type AssistUseCase struct {
	generator TextGenerator

	mu       sync.RWMutex
	sessions map[string]*chatSession
}

func NewAssistUseCase(generator TextGenerator) *AssistUseCase {
	return &AssistUseCase{
		generator: generator,
		sessions:  make(map[string]*chatSession),
	}
}

type GeneratedQuest struct {
	QuestName string `json:"questName"`
}

// GenerateQuests asks the model for 3-5 quest steps for a mission
// description and insists on parseable output. Malformed model output is a
// retryable validation failure, never returned as-is.
func (uc *AssistUseCase) GenerateQuests(ctx context.Context, description string) (map[string]GeneratedQuest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.BadRequest("Description is required", nil)
	}

	prompt := fmt.Sprintf(questPrompt, description, entity.MinQuests, entity.MinQuests, entity.MaxQuests)

	raw, err := uc.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, errors.Internal("Quest generation failed", err)
	}

	text := ExtractFencedJSON(raw)

	var quests map[string]GeneratedQuest
	if err := json.Unmarshal([]byte(text), &quests); err != nil {
		logger.Warn("Unparseable quest generation output: %v", err)
		return nil, errors.InvalidResponse("The generated quests could not be parsed, please try again", err)
	}

	if len(quests) < entity.MinQuests || len(quests) > entity.MaxQuests {
		return nil, errors.InvalidResponse("The model returned an unexpected number of quests, please try again", nil)
	}
	for _, quest := range quests {
		if strings.TrimSpace(quest.QuestName) == "" {
			return nil, errors.InvalidResponse("The generated quests were incomplete, please try again", nil)
		}
	}

	return quests, nil
}

// CreateSession opens a conversation, optionally seeded with text extracted
// from an uploaded PDF (extraction happens client-side).
func (uc *AssistUseCase) CreateSession(ctx context.Context, pdfText string) (string, error) {
	session := &chatSession{
		ID:         uuid.New().String(),
		PDFContext: strings.TrimSpace(pdfText),
		CreatedAt:  time.Now(),
	}

	uc.mu.Lock()
	uc.sessions[session.ID] = session
	uc.mu.Unlock()

	return session.ID, nil
}

// Chat forwards a message to the model, enriched with the session's document
// context when present, and returns the cleaned response text.
func (uc *AssistUseCase) Chat(ctx context.Context, sessionID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.BadRequest("Message must not be empty", nil)
	}

	var pdfContext string
	if sessionID != "" {
		uc.mu.RLock()
		session, ok := uc.sessions[sessionID]
		uc.mu.RUnlock()
		if !ok {
			return "", errors.NotFound("Session", nil)
		}
		pdfContext = session.PDFContext
	}

	prompt := message
	if pdfContext != "" {
		prompt = fmt.Sprintf(
			"You are a helpful learning assistant. Answer based on this document content:\n\n%s\n\nQuestion: %s",
			pdfContext, message)
	}

	raw, err := uc.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", errors.Internal("The assistant is unavailable right now", err)
	}

	return CleanModelOutput(raw), nil
}

// Cleanup drops sessions older than the TTL.
func (uc *AssistUseCase) Cleanup() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := time.Now()
	for id, session := range uc.sessions {
		if now.Sub(session.CreatedAt) > sessionTTL {
			delete(uc.sessions, id)
		}
	}
}

func (uc *AssistUseCase) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			uc.Cleanup()
		}
	}()
}

// ExtractFencedJSON returns the first fenced JSON object in text, or the
// trimmed text unchanged when no fence is present.
func ExtractFencedJSON(text string) string {
	if match := fencedJSON.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	return strings.TrimSpace(text)
}

// CleanModelOutput strips markdown code fences the model likes to add.
func CleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
