package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"

	"call-server/internal/apierrors"
	"call-server/internal/callguard"
	"call-server/internal/callsession/processor"
	"call-server/internal/conversation"
	"call-server/internal/observability"
	"call-server/internal/playback"
)

const conversationCookieMaxAge = 3600

const limitedNotice = "You have reached the maximum number of calls. Please try again another time."

// CallProcessor drives one webhook exchange of the call session.
type CallProcessor interface {
	BeginCall(ctx context.Context, req processor.CallRequest, convo conversation.Conversation) (processor.TurnResult, error)
	ContinueCall(ctx context.Context, req processor.CallRequest, convo conversation.Conversation) (processor.TurnResult, error)
	RecordCallStatus(ctx context.Context, req processor.StatusRequest, convo conversation.Conversation) error
	StartOutboundCall(ctx context.Context, to string) (string, error)
}

// SpeechSynthesizer converts a turn's text into an audio stream.
type SpeechSynthesizer interface {
	SynthesizeStream(ctx context.Context, text string) (io.ReadCloser, error)
}

// PlaybackVerifier checks a playback token and returns the text it covers.
type PlaybackVerifier interface {
	Verify(ctx context.Context, callSID, token string) (string, error)
}

type Handler struct {
	processor CallProcessor
	tts       SpeechSynthesizer
	playback  PlaybackVerifier
	carrier   *conversation.Carrier
	logger    *observability.Logger
}

func New(
	callProcessor CallProcessor,
	tts SpeechSynthesizer,
	playbackVerifier PlaybackVerifier,
	carrier *conversation.Carrier,
	logger *observability.Logger,
) Handler {
	return Handler{
		processor: callProcessor,
		tts:       tts,
		playback:  playbackVerifier,
		carrier:   carrier,
		logger:    logger,
	}
}

type callWebhookRequest struct {
	CallSID      string `form:"CallSid" binding:"required"`
	From         string `form:"From"`
	To           string `form:"To"`
	Direction    string `form:"Direction"`
	SpeechResult string `form:"SpeechResult"`
}

type statusWebhookRequest struct {
	CallSID    string `form:"CallSid" binding:"required"`
	From       string `form:"From"`
	To         string `form:"To"`
	Direction  string `form:"Direction"`
	CallStatus string `form:"CallStatus" binding:"required"`
}

// StartCallRequest represents the HTTP request for starting an outbound call
type StartCallRequest struct {
	To string `json:"to" binding:"required"`
}

// HandleTranscribe handles POST /transcribe, the provider's answer webhook.
func (h Handler) HandleTranscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req callWebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error(ctx, "invalid transcribe webhook", err)
		apierrors.BadRequest(c, "INVALID_WEBHOOK", "Missing call parameters")
		return
	}

	convo := h.readConversation(c)
	result, err := h.processor.BeginCall(ctx, toCallRequest(req), convo)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	h.renderTurn(c, result)
}

// HandleRespond handles POST /respond with the caller's transcribed speech.
func (h Handler) HandleRespond(c *gin.Context) {
	ctx := c.Request.Context()

	var req callWebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error(ctx, "invalid respond webhook", err)
		apierrors.BadRequest(c, "INVALID_WEBHOOK", "Missing call parameters")
		return
	}

	convo := h.readConversation(c)
	result, err := h.processor.ContinueCall(ctx, toCallRequest(req), convo)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	h.renderTurn(c, result)
}

// HandleCallStatus handles POST /call-status lifecycle callbacks.
func (h Handler) HandleCallStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req statusWebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Error(ctx, "invalid status webhook", err)
		apierrors.BadRequest(c, "INVALID_WEBHOOK", "Missing status parameters")
		return
	}

	convo := h.readConversation(c)
	err := h.processor.RecordCallStatus(ctx, processor.StatusRequest{
		CallSID:    req.CallSID,
		From:       req.From,
		To:         req.To,
		Direction:  req.Direction,
		CallStatus: req.CallStatus,
	}, convo)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// HandleTextToSpeech handles GET /text-to-speech/:callSid. The playToken in
// the query decides what may be spoken; the path alone grants nothing.
func (h Handler) HandleTextToSpeech(c *gin.Context) {
	ctx := c.Request.Context()
	callSID := c.Param("callSid")

	text, err := h.playback.Verify(ctx, callSID, c.Query("playToken"))
	if err != nil {
		if errors.Is(err, playback.ErrUnauthorized) {
			c.String(http.StatusUnauthorized, "UNAUTHORIZED")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	audio, err := h.tts.SynthesizeStream(ctx, text)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	defer audio.Close()

	c.Header("Content-Type", "audio/mpeg")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, audio); err != nil {
		h.logger.Error(ctx, "failed to stream synthesized audio", err)
	}
}

// HandleStartCall handles POST /api/calls and originates an outbound call.
func (h Handler) HandleStartCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req StartCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "INVALID_REQUEST", "Field 'to' is required")
		return
	}

	sid, err := h.processor.StartOutboundCall(ctx, req.To)
	if err != nil {
		switch {
		case errors.Is(err, callguard.ErrUnverifiedCaller):
			apierrors.Forbidden(c, "UNVERIFIED_NUMBER", "The number is not verified for calls")
		case errors.Is(err, callguard.ErrCallInProgress):
			apierrors.Conflict(c, "CALL_IN_PROGRESS", "A call with this number is already in progress")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"call_sid": sid})
}

func toCallRequest(req callWebhookRequest) processor.CallRequest {
	return processor.CallRequest{
		CallSID:      req.CallSID,
		From:         req.From,
		To:           req.To,
		Direction:    req.Direction,
		SpeechResult: req.SpeechResult,
	}
}

func (h Handler) readConversation(c *gin.Context) conversation.Conversation {
	raw, err := c.Cookie(conversation.CookieName)
	if err != nil {
		return conversation.Conversation{}
	}
	return h.carrier.Decode(raw)
}

func (h Handler) writeConversation(c *gin.Context, convo conversation.Conversation) {
	encoded, err := h.carrier.Encode(convo)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to encode conversation cookie", err)
		return
	}
	c.SetCookie(conversation.CookieName, encoded, conversationCookieMaxAge, "/", "", false, true)
}

// renderTurn maps the processor's decision onto a call control document.
func (h Handler) renderTurn(c *gin.Context, result processor.TurnResult) {
	if result.ConversationChanged {
		h.writeConversation(c, result.Conversation)
	}

	switch result.Outcome {
	case processor.OutcomeReject:
		h.renderTwiML(c, []twiml.Element{
			twiml.VoiceReject{Reason: "rejected"},
		})
	case processor.OutcomeLimited:
		c.String(http.StatusForbidden, limitedNotice)
	case processor.OutcomeGather:
		h.renderTwiML(c, []twiml.Element{gatherWith("")})
	case processor.OutcomeGreet:
		h.renderTwiML(c, []twiml.Element{gatherWith(result.PlayURL)})
	case processor.OutcomeSpeak:
		h.renderTwiML(c, []twiml.Element{
			twiml.VoicePlay{Url: result.PlayURL},
			twiml.VoiceRedirect{Url: "/transcribe", Method: "POST"},
		})
	case processor.OutcomeSpeakAndHangup:
		h.renderTwiML(c, []twiml.Element{
			twiml.VoicePlay{Url: result.PlayURL},
			twiml.VoiceHangup{},
		})
	default:
		h.renderTwiML(c, []twiml.Element{twiml.VoiceHangup{}})
	}
}

// gatherWith builds the speech gather verb, optionally playing audio first.
func gatherWith(playURL string) twiml.Element {
	var inner []twiml.Element
	if playURL != "" {
		inner = append(inner, twiml.VoicePlay{Url: playURL})
	}
	return twiml.VoiceGather{
		Input:         "speech",
		Action:        "/respond",
		Method:        "POST",
		SpeechTimeout: "auto",
		SpeechModel:   "experimental_conversations",
		InnerElements: inner,
	}
}

func (h Handler) renderTwiML(c *gin.Context, elements []twiml.Element) {
	doc, err := twiml.Voice(elements)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.Header("Content-Type", "application/xml")
	c.String(http.StatusOK, doc)
}
