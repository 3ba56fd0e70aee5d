package delivery

import (
	"context"
	"fmt"

	appconfig "wayplan/config"
	"wayplan/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailSender delivers a rendered itinerary to a recipient.
type EmailSender interface {
	SendItinerary(ctx context.Context, recipient string, doc models.ItineraryDocument) error
}

// SESEmailSender implements EmailSender on AWS SES.
type SESEmailSender struct {
	client *ses.Client
	from   string
}

func NewSESEmailSender(ctx context.Context, region, from string) (*SESEmailSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESEmailSender{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (s *SESEmailSender) SendItinerary(ctx context.Context, recipient string, doc models.ItineraryDocument) error {
	body, err := RenderItineraryEmail(doc)
	if err != nil {
		return fmt.Errorf("render itinerary email: %w", err)
	}

	subject := fmt.Sprintf("Your %s itinerary for %s", doc.City, doc.Date)
	from := s.from
	if from == "" {
		from = appconfig.AppConfig.EmailFrom
	}

	_, err = s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
