package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/boomchecker/users-api/internal/templates"
)

// EmailSender is the subset of the SES v2 client used to send notifications
type EmailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// NotificationService sends user lifecycle notifications via AWS SES
type NotificationService struct {
	client    EmailSender
	fromEmail string
	toEmail   string
	templates *templates.TemplateRenderer
	now       func() time.Time
}

// NotificationConfig holds configuration for the notification service
type NotificationConfig struct {
	// FromEmail is the email address that will appear in the From field
	FromEmail string
	// ToEmail receives the notifications
	ToEmail string
	// Region is the AWS region for SES (e.g., "us-east-1", "eu-west-1")
	Region string
}

// Enabled reports whether both addresses are configured
func (c *NotificationConfig) Enabled() bool {
	return c != nil && c.FromEmail != "" && c.ToEmail != ""
}

// NewNotificationService creates a notification service backed by a real SES v2 client
func NewNotificationService(ctx context.Context, cfg *NotificationConfig) (*NotificationService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("notification config is required")
	}

	// Load AWS configuration with default credentials provider chain
	// This will check: Environment variables -> Shared config file -> IAM role (on EC2)
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewNotificationServiceWithClient(sesv2.NewFromConfig(awsCfg), cfg)
}

// NewNotificationServiceWithClient creates a notification service using the given sender
func NewNotificationServiceWithClient(client EmailSender, cfg *NotificationConfig) (*NotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("email client is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("notification config is required")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}
	if cfg.ToEmail == "" {
		return nil, fmt.Errorf("recipient email is required")
	}

	tmplRenderer, err := templates.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize templates: %w", err)
	}

	return &NotificationService{
		client:    client,
		fromEmail: cfg.FromEmail,
		toEmail:   cfg.ToEmail,
		templates: tmplRenderer,
		now:       time.Now,
	}, nil
}

// NotifyUserDeleted sends a "User {id} deleted" email
func (s *NotificationService) NotifyUserDeleted(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	deletedAt := s.now().UTC()
	subject := fmt.Sprintf("User %s deleted", userID)

	htmlBody, err := s.templates.RenderUserDeletedHTML(userID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to render HTML template: %w", err)
	}

	textBody, err := s.templates.RenderUserDeletedText(userID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to render text template: %w", err)
	}

	if err := s.sendEmail(ctx, s.toEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send user deleted email: %w", err)
	}

	log.Printf("User deleted notification sent for: %s", userID)
	return nil
}

// sendEmail sends an email via AWS SES
func (s *NotificationService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("SES SendEmail failed: %w", err)
	}

	if result != nil && result.MessageId != nil {
		log.Printf("Email sent successfully! AWS SES MessageId: %s", *result.MessageId)
	}

	return nil
}
