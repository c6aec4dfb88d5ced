package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"call-server/internal/conversation"
	"call-server/internal/observability"
)

// FallbackUtterance is spoken to the caller when the completion provider
// cannot produce a turn. The call ends after it is played.
const FallbackUtterance = "Sorry, I don't understand. I will call you back later."

const endCallToolName = "end_call"
const defaultGoodbye = "Alright, it was nice talking to you. Goodbye!"

const conversationModel = openai.ChatModelGPT3_5Turbo
const requestTimeout = 15 * time.Second

// ErrMalformedCompletion is returned when the provider responds successfully
// but the choice carries neither text content nor an end_call tool call.
var ErrMalformedCompletion = errors.New("completion: response has no content and no tool call")

// Reply is one assistant turn. EndCall set means the assistant chose to
// terminate the call after Text is spoken.
type Reply struct {
	Text    string
	EndCall bool
}

// Gateway produces assistant turns and call summaries.
type Gateway struct {
	apiKey       string
	logger       *observability.Logger
	extraOptions []option.RequestOption
}

// New creates a Gateway. Extra request options are applied to every call and
// exist so tests can point the client at a local server.
func New(apiKey string, logger *observability.Logger, opts ...option.RequestOption) *Gateway {
	return &Gateway{
		apiKey:       apiKey,
		logger:       logger,
		extraOptions: opts,
	}
}

func (g *Gateway) requestOptions() []option.RequestOption {
	return append([]option.RequestOption{
		option.WithAPIKey(g.apiKey),
		option.WithMaxRetries(1),
	}, g.extraOptions...)
}

// ProduceReply generates the next assistant turn for the given history.
// userMetadata describes the caller, extraContext is injected into the
// persona prompt (callee notes, or a greeting instruction on the first turn).
//
// Provider failures are absorbed: the returned Reply carries
// FallbackUtterance and a nil error, so the caller can still speak something
// before hanging up. A non-nil error means the provider broke its contract.
func (g *Gateway) ProduceReply(ctx context.Context, history []conversation.Message, userMetadata, extraContext string) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(conversationPrompt(time.Now(), userMetadata, extraContext)))
	for _, m := range history {
		if m.Role == conversation.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	client := openai.NewClient(g.requestOptions()...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       conversationModel,
		Messages:    messages,
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(200),
		Tools: []openai.ChatCompletionToolParam{
			{
				Function: openai.FunctionDefinitionParam{
					Name:        endCallToolName,
					Description: openai.String("End the call. Use this when the user says goodbye or asks to stop talking."),
					Parameters: openai.FunctionParameters{
						"type": "object",
						"properties": map[string]interface{}{
							"end_call_response": map[string]interface{}{
								"type":        "string",
								"description": "The farewell message to say before hanging up.",
							},
						},
						"required": []string{"end_call_response"},
					},
				},
			},
		},
	})
	if err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "failure", Value: string(classifyFailure(err))})
		g.logger.Error(ctx, "completion request failed", err)
		return Reply{Text: FallbackUtterance}, nil
	}

	if len(resp.Choices) == 0 {
		return Reply{}, ErrMalformedCompletion
	}
	choice := resp.Choices[0].Message

	if len(choice.ToolCalls) > 0 {
		call := choice.ToolCalls[0]
		if call.Function.Name != endCallToolName {
			return Reply{}, fmt.Errorf("completion: unexpected tool call %q", call.Function.Name)
		}
		var args struct {
			EndCallResponse string `json:"end_call_response"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil || args.EndCallResponse == "" {
			return Reply{Text: defaultGoodbye, EndCall: true}, nil
		}
		return Reply{Text: args.EndCallResponse, EndCall: true}, nil
	}

	if choice.Content == "" {
		return Reply{}, ErrMalformedCompletion
	}
	return Reply{Text: choice.Content}, nil
}

// Summarize renders the conversation as a Caller/Recipient transcript and asks
// the model for a summary suitable for emailing to the callee.
func (g *Gateway) Summarize(ctx context.Context, history []conversation.Message, userMetadata string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client := openai.NewClient(g.requestOptions()...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: conversationModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summaryPrompt(time.Now(), userMetadata)),
			openai.UserMessage("[CALL HISTORY]\n" + transcript(history)),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(200),
	})
	if err != nil {
		return "", fmt.Errorf("completion: summarize: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrMalformedCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

type failureKind string

const (
	failureTimeout     failureKind = "timeout"
	failureUnavailable failureKind = "provider_unavailable"
	failureUnknown     failureKind = "unknown"
)

func classifyFailure(err error) failureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return failureTimeout
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 500 {
		return failureUnavailable
	}
	return failureUnknown
}
