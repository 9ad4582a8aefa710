// Package assistant answers business questions, either through a chat model
// or from a canned keyword table when no model is configured or it fails.
package assistant

import (
	"context"
	"strings"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/pkg/utils"
)

const systemPrompt = `You are a business management AI assistant for AI Manager system. You help with:
- Employee management and HR insights
- Inventory optimization and stock management
- Project planning and progress tracking
- Financial analysis and budget optimization
- Business operations and efficiency improvements

Provide practical, actionable advice for business operations. Keep responses concise but helpful.
When suggesting actions, be specific about implementation steps.`

// emptyCompletionReply stands in for a completion without content.
const emptyCompletionReply = "I apologize, but I could not generate a response at this time."

// Reply is the outcome of one question. Err is set only for ModeDemoFallback
// and carries the cause that was masked.
type Reply struct {
	Text  string
	Mode  models.ReplyMode
	Usage *models.TokenUsage
	Err   error
}

// Responder produces replies for a conversation.
type Responder interface {
	Respond(ctx context.Context, message, businessContext string) (Reply, error)
}

// Assistant routes questions to the generator, falling back to canned replies.
type Assistant struct {
	generator TextGenerator
}

// New returns an Assistant. A nil generator means demo mode.
func New(generator TextGenerator) *Assistant {
	return &Assistant{generator: generator}
}

// Live reports whether a chat model is configured.
func (a *Assistant) Live() bool {
	return a.generator != nil
}

// Reply never fails: generator errors are logged and answered from the canned table.
func (a *Assistant) Reply(ctx context.Context, message, businessContext string) Reply {
	if a.generator == nil {
		return Reply{Text: CannedReply(message), Mode: models.ModeDemo}
	}

	completion, err := a.generator.Chat(ctx, buildPrompt(message, businessContext))
	if err != nil {
		utils.LogWarn("AI chat failed, answering from canned replies", map[string]interface{}{"error": err.Error()})
		return Reply{Text: CannedReply(message), Mode: models.ModeDemoFallback, Err: err}
	}

	text := completion.Text
	if text == "" {
		text = emptyCompletionReply
	}
	return Reply{Text: text, Mode: models.ModeAI, Usage: completion.Usage}
}

// Respond implements Responder. It only fails when ctx is done, since the
// caller is gone and there is nobody to answer.
func (a *Assistant) Respond(ctx context.Context, message, businessContext string) (Reply, error) {
	reply := a.Reply(ctx, message, businessContext)
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}
	return reply, nil
}

func buildPrompt(message, businessContext string) []Message {
	messages := []Message{{Role: "system", Content: systemPrompt}}
	if strings.TrimSpace(businessContext) != "" {
		messages = append(messages, Message{Role: "system", Content: "Current business context: " + businessContext})
	}
	return append(messages, Message{Role: "user", Content: message})
}
