package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"sproutly/models"
)

var sesClient *ses.Client

func sesLazy() (*ses.Client, error) {
	if sesClient != nil {
		return sesClient, nil
	}
	if os.Getenv("SES_EMAIL") == "" {
		return nil, fmt.Errorf("SES_EMAIL not set")
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	sesClient = ses.NewFromConfig(cfg)
	return sesClient, nil
}

// generic SES sender
func sendEmail(to, subject, body string) error {
	client, err := sesLazy()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendWeeklySummaryEmail mails the user a digest of their current streak,
// plant stage and the days tracked in the weekly window.
func SendWeeklySummaryEmail(to string, stats *models.UserStats) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Your week with Sproutly\n\n")
	fmt.Fprintf(&sb, "Streak: %d day(s)\n", stats.StreakDays)
	fmt.Fprintf(&sb, "Plant: %s (%d%%)\n\n", stats.PlantStage, stats.PlantProgress)
	for _, d := range stats.WeeklyStats {
		fmt.Fprintf(&sb, "%s: %d/5 goals, %.0f kcal\n", d.Date, d.GoalsMet, d.Calories.Consumed)
	}
	return sendEmail(to, "Your weekly Sproutly summary", sb.String())
}
