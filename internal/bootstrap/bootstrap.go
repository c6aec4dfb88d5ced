package bootstrap

import (
	"context"
	"fmt"

	"call-server/internal/callguard"
	callHandler "call-server/internal/callsession/handler"
	callProcessor "call-server/internal/callsession/processor"
	"call-server/internal/clients/elevenlabs"
	"call-server/internal/clients/mail"
	twilioClient "call-server/internal/clients/twilio"
	"call-server/internal/completion"
	"call-server/internal/config"
	"call-server/internal/conversation"
	"call-server/internal/email"
	"call-server/internal/observability"
	"call-server/internal/playback"
	"call-server/internal/store"
	"call-server/internal/stream"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	CallHandler callHandler.Handler
	Broadcaster *stream.Broadcaster
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	ttsClient, err := elevenlabs.NewClient(cfg.Services.ElevenLabsAPIKey, cfg.Services.ElevenLabsVoiceID, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create elevenlabs client: %w", err)
	}

	telephony, err := twilioClient.NewClient(
		cfg.Telephony.AccountSID,
		cfg.Telephony.AuthToken,
		cfg.Telephony.PhoneNumber,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create twilio client: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	// Initialize services
	emailService := email.NewService(mailClient, cfg.Services.DefaultEmailSender, cfg.Services.SummaryRecipient, logger)
	gateway := completion.New(cfg.Services.OpenAIAPIKey, logger)
	authority := playback.New(cfg.Auth.Secret, logger)
	carrier := conversation.NewCarrier(cfg.Auth.Secret)
	guard := callguard.New(&deps.Store, telephony, logger)
	deps.Broadcaster = stream.NewBroadcaster(cfg.Telephony.PhoneNumber, logger)

	// Initialize call session processor and handler
	sessionProcessor := callProcessor.New(
		guard,
		gateway,
		authority,
		&deps.Store,
		emailService,
		deps.Broadcaster,
		telephony,
		cfg.Telephony.BaseURL,
		cfg.Telephony.PhoneNumber,
		logger,
	)
	deps.CallHandler = callHandler.New(sessionProcessor, ttsClient, authority, carrier, logger)

	return deps, nil
}

// Cleanup releases held resources. Called during shutdown.
func (d *Dependencies) Cleanup() {
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
