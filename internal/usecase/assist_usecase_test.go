package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dorakingdom/pkg/errors"
)

func TestGenerateQuestsParsesFencedJSON(t *testing.T) {
	generator := &fakeGenerator{response: "Here you go:\n```json\n{\"Q1\": {\"questName\": \"Read a chapter\"}, \"Q2\": {\"questName\": \"Take notes\"}, \"Q3\": {\"questName\": \"Do the exercises\"}}\n```"}
	uc := NewAssistUseCase(generator)

	quests, err := uc.GenerateQuests(context.Background(), "Learn linear algebra")
	require.NoError(t, err)
	require.Len(t, quests, 3)
	assert.Equal(t, "Read a chapter", quests["Q1"].QuestName)
	assert.Contains(t, generator.prompts[0], "Learn linear algebra")
}

func TestGenerateQuestsBareJSON(t *testing.T) {
	generator := &fakeGenerator{response: `{"Q1": {"questName": "a"}, "Q2": {"questName": "b"}, "Q3": {"questName": "c"}}`}
	uc := NewAssistUseCase(generator)

	quests, err := uc.GenerateQuests(context.Background(), "anything")
	require.NoError(t, err)
	assert.Len(t, quests, 3)
}

func TestGenerateQuestsRejectsMalformedOutput(t *testing.T) {
	cases := map[string]string{
		"not JSON":      "Sure! Step one is to read a book.",
		"too few":       `{"Q1": {"questName": "a"}}`,
		"empty name":    `{"Q1": {"questName": "a"}, "Q2": {"questName": ""}, "Q3": {"questName": "c"}}`,
		"too many":      `{"Q1":{"questName":"a"},"Q2":{"questName":"b"},"Q3":{"questName":"c"},"Q4":{"questName":"d"},"Q5":{"questName":"e"},"Q6":{"questName":"f"}}`,
	}

	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			uc := NewAssistUseCase(&fakeGenerator{response: response})
			_, err := uc.GenerateQuests(context.Background(), "desc")
			assert.True(t, errors.Is(err, "INVALID_RESPONSE"))
		})
	}
}

func TestGenerateQuestsRequiresDescription(t *testing.T) {
	uc := NewAssistUseCase(&fakeGenerator{})
	_, err := uc.GenerateQuests(context.Background(), "   ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestChatWithSessionContext(t *testing.T) {
	generator := &fakeGenerator{response: "```\nThe answer is 42.\n```"}
	uc := NewAssistUseCase(generator)
	ctx := context.Background()

	sessionID, err := uc.CreateSession(ctx, "Chapter 1: everything is 42.")
	require.NoError(t, err)

	reply, err := uc.Chat(ctx, sessionID, "What is the answer?")
	require.NoError(t, err)
	assert.Equal(t, "The answer is 42.", reply)
	assert.Contains(t, generator.prompts[0], "Chapter 1: everything is 42.")
	assert.Contains(t, generator.prompts[0], "What is the answer?")
}

func TestChatWithoutSession(t *testing.T) {
	generator := &fakeGenerator{response: "Hello!"}
	uc := NewAssistUseCase(generator)

	reply, err := uc.Chat(context.Background(), "", "Hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", reply)
	assert.Equal(t, "Hi", generator.prompts[0], "no document context means the raw message is the prompt")
}

func TestCleanupEvictsExpiredSessions(t *testing.T) {
	generator := &fakeGenerator{response: "ok"}
	uc := NewAssistUseCase(generator)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		_, err := uc.CreateSession(ctx, "some extracted document text")
		require.NoError(t, err)
	}
	require.Len(t, uc.sessions, 100)

	// Age everything past the TTL, then add one fresh session
	uc.mu.Lock()
	for _, session := range uc.sessions {
		session.CreatedAt = session.CreatedAt.Add(-2 * sessionTTL)
	}
	uc.mu.Unlock()

	fresh, err := uc.CreateSession(ctx, "still in use")
	require.NoError(t, err)

	uc.Cleanup()

	assert.Len(t, uc.sessions, 1, "expired sessions must be released")

	_, err = uc.Chat(ctx, fresh, "Hi")
	assert.NoError(t, err, "a live session must survive the sweep")
}

func TestChatExpiredSessionGone(t *testing.T) {
	uc := NewAssistUseCase(&fakeGenerator{response: "ok"})
	ctx := context.Background()

	sessionID, err := uc.CreateSession(ctx, "doc")
	require.NoError(t, err)

	uc.mu.Lock()
	uc.sessions[sessionID].CreatedAt = uc.sessions[sessionID].CreatedAt.Add(-2 * sessionTTL)
	uc.mu.Unlock()
	uc.Cleanup()

	_, err = uc.Chat(ctx, sessionID, "Hi")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestChatUnknownSession(t *testing.T) {
	uc := NewAssistUseCase(&fakeGenerator{})
	_, err := uc.Chat(context.Background(), "nope", "Hi")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestExtractFencedJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractFencedJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ExtractFencedJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ExtractFencedJSON("  {\"a\":1}  "))
}

func TestCleanModelOutput(t *testing.T) {
	assert.Equal(t, "hello", CleanModelOutput("```json\nhello\n```"))
	assert.Equal(t, "hello", CleanModelOutput("hello"))
	assert.Equal(t, "hello", CleanModelOutput("  hello  "))
}
