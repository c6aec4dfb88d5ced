package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"call-server/internal/callguard"
	"call-server/internal/completion"
	"call-server/internal/conversation"
	"call-server/internal/observability"
	"call-server/internal/store"
	"call-server/internal/stream"
)

// Guard defines the admission checks run before a call turn is produced.
type Guard interface {
	Authorize(ctx context.Context, direction, from, to string) (store.VerifiedUser, error)
	CheckRateLimit(ctx context.Context, phone string) error
	CheckNotBusy(ctx context.Context, phone string) error
}

// CompletionGateway produces assistant turns and call summaries.
type CompletionGateway interface {
	ProduceReply(ctx context.Context, history []conversation.Message, userMetadata, extraContext string) (completion.Reply, error)
	Summarize(ctx context.Context, history []conversation.Message, userMetadata string) (string, error)
}

// PlaybackAuthority issues single-use playback capabilities for spoken turns.
type PlaybackAuthority interface {
	IssueToken(callSID, text string) (string, error)
}

// CallStore defines the database operations required by the processor.
type CallStore interface {
	UpsertCallStatus(ctx context.Context, params store.UpsertCallParams) (store.Call, error)
	SetCallSummary(ctx context.Context, sid, summary string) error
	GetVerifiedUserByPhone(ctx context.Context, phone string) (store.VerifiedUser, error)
}

// Notifier delivers the post-call summary.
type Notifier interface {
	SendCallSummary(ctx context.Context, summary, fromPhone, toEmail string) error
}

// EventPublisher pushes call lifecycle events to live listeners.
type EventPublisher interface {
	PublishCallStatus(event stream.CallEvent)
}

// CallCreator originates outbound calls at the telephony provider.
type CallCreator interface {
	CreateCall(ctx context.Context, to, voiceURL, statusCallbackURL string) (string, error)
}

// TurnOutcome tells the handler which call control response to render.
type TurnOutcome string

const (
	// OutcomeReject refuses the call before it is answered.
	OutcomeReject TurnOutcome = "reject"
	// OutcomeLimited answers with a rate limit notice and no conversation.
	OutcomeLimited TurnOutcome = "limited"
	// OutcomeGather listens for the caller's next utterance without speaking.
	OutcomeGather TurnOutcome = "gather"
	// OutcomeGreet speaks the opening line, then listens.
	OutcomeGreet TurnOutcome = "greet"
	// OutcomeSpeak plays the assistant turn, then loops back for more speech.
	OutcomeSpeak TurnOutcome = "speak"
	// OutcomeSpeakAndHangup plays the assistant turn and ends the call.
	OutcomeSpeakAndHangup TurnOutcome = "speak-and-hangup"
	// OutcomeHangup ends the call without audio.
	OutcomeHangup TurnOutcome = "hangup"
)

// TurnResult is the processor's decision for one webhook exchange.
type TurnResult struct {
	Outcome TurnOutcome
	// PlayURL points at the synthesized audio for this turn. Set for greet
	// and speak outcomes.
	PlayURL string
	// Conversation is the history including this turn. The handler re-issues
	// it to the caller when ConversationChanged is set.
	Conversation        conversation.Conversation
	ConversationChanged bool
}

// CallRequest carries the webhook parameters of one provider request.
type CallRequest struct {
	CallSID      string
	From         string
	To           string
	Direction    string
	SpeechResult string
}

// StatusRequest carries a call lifecycle update from the provider.
type StatusRequest struct {
	CallSID    string
	From       string
	To         string
	Direction  string
	CallStatus string
}

const greetInstruction = "Greet the user with enthusiasm. If you have their name, call them by their name."

// CallSessionProcessor drives the conversation loop for one phone call per
// webhook exchange. It holds no per-call state; the conversation travels with
// the provider's requests.
type CallSessionProcessor struct {
	guard         Guard
	gateway       CompletionGateway
	playback      PlaybackAuthority
	store         CallStore
	notifier      Notifier
	events        EventPublisher
	calls         CallCreator
	baseURL       string
	serviceNumber string
	logger        *observability.Logger
}

func New(
	guard Guard,
	gateway CompletionGateway,
	playback PlaybackAuthority,
	callStore CallStore,
	notifier Notifier,
	events EventPublisher,
	calls CallCreator,
	baseURL string,
	serviceNumber string,
	logger *observability.Logger,
) *CallSessionProcessor {
	return &CallSessionProcessor{
		guard:         guard,
		gateway:       gateway,
		playback:      playback,
		store:         callStore,
		notifier:      notifier,
		events:        events,
		calls:         calls,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		serviceNumber: serviceNumber,
		logger:        logger,
	}
}

// BeginCall handles the answer webhook. On a fresh call it produces the
// greeting; when the conversation is already underway it just listens again.
func (p *CallSessionProcessor) BeginCall(ctx context.Context, req CallRequest, convo conversation.Conversation) (TurnResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: req.CallSID})

	user, err := p.guard.Authorize(ctx, req.Direction, req.From, req.To)
	if err != nil {
		if errors.Is(err, callguard.ErrUnverifiedCaller) {
			return TurnResult{Outcome: OutcomeReject}, nil
		}
		return TurnResult{}, err
	}

	if req.Direction == store.CallDirectionInbound {
		if err := p.guard.CheckRateLimit(ctx, req.From); err != nil {
			if errors.Is(err, callguard.ErrCallLimitReached) {
				return TurnResult{Outcome: OutcomeLimited}, nil
			}
			return TurnResult{}, err
		}
	}

	if !convo.IsEmpty() {
		// The provider redirected mid-call. Keep listening, the history is
		// already established.
		return TurnResult{Outcome: OutcomeGather, Conversation: convo}, nil
	}

	reply, err := p.gateway.ProduceReply(ctx, nil, user.Metadata, greetInstruction)
	if err != nil {
		p.logger.Error(ctx, "failed to produce greeting", err)
		return TurnResult{Outcome: OutcomeHangup}, nil
	}

	convo = convo.AppendAssistant(reply.Text)
	playURL, err := p.playbackURL(req.CallSID, reply.Text)
	if err != nil {
		return TurnResult{}, err
	}
	return TurnResult{
		Outcome:             OutcomeGreet,
		PlayURL:             playURL,
		Conversation:        convo,
		ConversationChanged: true,
	}, nil
}

// ContinueCall handles one speech result and produces the next assistant
// turn.
func (p *CallSessionProcessor) ContinueCall(ctx context.Context, req CallRequest, convo conversation.Conversation) (TurnResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: req.CallSID})

	user, err := p.guard.Authorize(ctx, req.Direction, req.From, req.To)
	if err != nil {
		if errors.Is(err, callguard.ErrUnverifiedCaller) {
			return TurnResult{Outcome: OutcomeReject}, nil
		}
		return TurnResult{}, err
	}

	if req.SpeechResult != "" {
		convo = convo.AppendUser(req.SpeechResult)
	}

	reply, err := p.gateway.ProduceReply(ctx, convo.Messages, user.Metadata, user.ServerMetadata)
	if err != nil {
		p.logger.Error(ctx, "failed to produce reply", err)
		return TurnResult{Outcome: OutcomeHangup}, nil
	}

	convo = convo.AppendAssistant(reply.Text)
	playURL, err := p.playbackURL(req.CallSID, reply.Text)
	if err != nil {
		return TurnResult{}, err
	}

	outcome := OutcomeSpeak
	if reply.EndCall {
		outcome = OutcomeSpeakAndHangup
	}
	return TurnResult{
		Outcome:             outcome,
		PlayURL:             playURL,
		Conversation:        convo,
		ConversationChanged: true,
	}, nil
}

// RecordCallStatus persists a lifecycle update and, for completed calls,
// summarizes and delivers the conversation. The ledger write is the only
// step whose failure is surfaced; everything after it is best effort.
func (p *CallSessionProcessor) RecordCallStatus(ctx context.Context, req StatusRequest, convo conversation.Conversation) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: req.CallSID},
		observability.Field{Key: "call_status", Value: req.CallStatus},
	)

	withPhone := req.From
	if strings.HasPrefix(req.Direction, "outbound") {
		withPhone = req.To
	}

	call, err := p.store.UpsertCallStatus(ctx, store.UpsertCallParams{
		SID:       req.CallSID,
		WithPhone: withPhone,
		Status:    req.CallStatus,
		Direction: req.Direction,
	})
	if err != nil {
		return fmt.Errorf("failed to record call status: %w", err)
	}

	p.events.PublishCallStatus(stream.CallEvent{
		CallSID:   call.SID,
		Status:    call.Status,
		Direction: call.Direction,
		WithPhone: call.WithPhone,
		At:        time.Now().UTC(),
	})

	if req.CallStatus == store.CallStatusCompleted {
		p.summarizeAndNotify(ctx, call, convo)
	}
	return nil
}

// StartOutboundCall asks the provider to dial a verified number. The callee
// must be verified and must not already be on a call.
func (p *CallSessionProcessor) StartOutboundCall(ctx context.Context, to string) (string, error) {
	if _, err := p.guard.Authorize(ctx, store.CallDirectionOutboundAPI, p.serviceNumber, to); err != nil {
		return "", err
	}
	if err := p.guard.CheckNotBusy(ctx, to); err != nil {
		return "", err
	}

	sid, err := p.calls.CreateCall(ctx, to, p.baseURL+"/transcribe", p.baseURL+"/call-status")
	if err != nil {
		return "", fmt.Errorf("failed to start outbound call: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: sid})
	if _, err := p.store.UpsertCallStatus(ctx, store.UpsertCallParams{
		SID:       sid,
		WithPhone: to,
		Status:    store.CallStatusQueued,
		Direction: store.CallDirectionOutboundAPI,
	}); err != nil {
		// The provider call already exists; the ledger catches up on the
		// first status callback.
		p.logger.Error(ctx, "failed to record queued outbound call", err)
	}
	p.logger.Info(ctx, "outbound call started")
	return sid, nil
}

func (p *CallSessionProcessor) summarizeAndNotify(ctx context.Context, call store.Call, convo conversation.Conversation) {
	user, err := p.store.GetVerifiedUserByPhone(ctx, call.WithPhone)
	if err != nil {
		p.logger.Warn(ctx, "skipping call summary, no verified user for number")
		return
	}
	if !user.Email.Valid || user.Email.String == "" || user.DoNotSendEmail {
		p.logger.Info(ctx, "skipping call summary, user opted out or has no email")
		return
	}
	if convo.IsEmpty() {
		p.logger.Info(ctx, "skipping call summary, no conversation recorded")
		return
	}

	summary, err := p.gateway.Summarize(ctx, convo.Messages, user.Metadata)
	if err != nil {
		p.logger.Error(ctx, "failed to summarize call", err)
		return
	}
	if err := p.store.SetCallSummary(ctx, call.SID, summary); err != nil {
		p.logger.Error(ctx, "failed to persist call summary", err)
	}
	if err := p.notifier.SendCallSummary(ctx, summary, call.WithPhone, user.Email.String); err != nil {
		p.logger.Error(ctx, "failed to send call summary", err)
	}
}

func (p *CallSessionProcessor) playbackURL(callSID, text string) (string, error) {
	token, err := p.playback.IssueToken(callSID, text)
	if err != nil {
		return "", fmt.Errorf("failed to issue playback token: %w", err)
	}
	return fmt.Sprintf("%s/text-to-speech/%s?playToken=%s", p.baseURL, callSID, url.QueryEscape(token)), nil
}
