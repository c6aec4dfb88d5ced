package twilio

import (
	"context"
	"fmt"

	twiliosdk "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"call-server/internal/observability"
)

// CallRecord is the subset of a provider call resource the service acts on.
type CallRecord struct {
	SID       string
	Status    string
	Direction string
	To        string
	From      string
}

// Client wraps the Twilio REST API for call lookup and origination.
type Client struct {
	api    *twiliosdk.RestClient
	from   string
	logger *observability.Logger
}

func NewClient(accountSID, authToken, from string, logger *observability.Logger) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("twilio credentials are required")
	}
	if from == "" {
		return nil, fmt.Errorf("twilio phone number is required")
	}
	api := twiliosdk.NewRestClientWithParams(twiliosdk.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{api: api, from: from, logger: logger}, nil
}

// LatestCallTo returns the most recent call placed to the given number, or
// nil when the provider has no record of one.
func (c *Client) LatestCallTo(ctx context.Context, phone string) (*CallRecord, error) {
	params := &openapi.ListCallParams{}
	params.SetTo(phone)
	params.SetLimit(1)

	calls, err := c.api.Api.ListCall(params)
	if err != nil {
		c.logger.Error(ctx, "Failed to list calls from provider", err)
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	if len(calls) == 0 {
		return nil, nil
	}
	return recordFromResource(calls[0]), nil
}

// CreateCall originates an outbound call. voiceURL receives the answer
// webhook, statusCallbackURL the lifecycle updates.
func (c *Client) CreateCall(ctx context.Context, to, voiceURL, statusCallbackURL string) (string, error) {
	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetUrl(voiceURL)
	params.SetStatusCallback(statusCallbackURL)

	call, err := c.api.Api.CreateCall(params)
	if err != nil {
		c.logger.Error(ctx, "Failed to create outbound call", err)
		return "", fmt.Errorf("failed to create call: %w", err)
	}
	if call.Sid == nil {
		return "", fmt.Errorf("provider returned call without sid")
	}
	return *call.Sid, nil
}

func recordFromResource(call openapi.ApiV2010Call) *CallRecord {
	record := &CallRecord{}
	if call.Sid != nil {
		record.SID = *call.Sid
	}
	if call.Status != nil {
		record.Status = *call.Status
	}
	if call.Direction != nil {
		record.Direction = *call.Direction
	}
	if call.To != nil {
		record.To = *call.To
	}
	if call.From != nil {
		record.From = *call.From
	}
	return record
}
