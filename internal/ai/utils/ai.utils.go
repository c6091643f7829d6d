package utils

import (
	"encoding/json"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"mojocode_server/internal/ai/tools"
	"mojocode_server/internal/types"
)

// NoContent is returned in place of an empty reply.
const NoContent = "No content received from AI"

// ExtractContent joins the content of every choice with newlines, in order.
// A choice that carries multi-part content contributes its text parts instead.
func ExtractContent(resp openai.ChatCompletionResponse) string {
	var parts []string
	for _, choice := range resp.Choices {
		msg := choice.Message
		if msg.Content != "" {
			parts = append(parts, msg.Content)
			continue
		}
		for _, p := range msg.MultiContent {
			if p.Type == openai.ChatMessagePartTypeText && p.Text != "" {
				parts = append(parts, p.Text)
			}
		}
	}
	if len(parts) == 0 {
		return NoContent
	}
	return strings.Join(parts, "\n")
}

// ExtractToolCalls turns the function calls in a reply into display records.
// Arguments that are not valid JSON are kept under the "raw" key.
func ExtractToolCalls(resp openai.ChatCompletionResponse) []types.ToolCall {
	var out []types.ToolCall
	for _, choice := range resp.Choices {
		for _, tc := range choice.Message.ToolCalls {
			params := map[string]any{}
			if tc.Function.Arguments != "" {
				if err := json.Unmarshal([]byte(tc.Function.Arguments), &params); err != nil {
					log.Printf("WARN: tool call %s (%s) has malformed arguments: %v", tc.ID, tc.Function.Name, err)
					params = map[string]any{"raw": tc.Function.Arguments}
				}
			}

			call := types.ToolCall{
				ID:         tc.ID,
				Name:       tc.Function.Name,
				Parameters: params,
				Status:     "pending",
			}
			if v, ok := params["impact_level"].(string); ok {
				call.ImpactLevel = v
			} else if v, ok := params["risk_level"].(string); ok {
				call.ImpactLevel = v
			}
			if v, ok := params["reason"].(string); ok {
				call.Reason = v
			}
			if tools.NeedsConfirmation(call.Name, call.ImpactLevel) {
				call.Status = "needs_confirmation"
			}
			out = append(out, call)
		}
	}
	return out
}
