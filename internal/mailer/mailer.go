package mailer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/sirupsen/logrus"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/order"
)

// SESMailer sends customer-facing mail through AWS SES, replacing the
// serverless email function the front end used to call.
type SESMailer struct {
	client *ses.Client
	sender string
}

func NewSESMailer(ctx context.Context) (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		sender: os.Getenv("SES_EMAIL"),
	}, nil
}

func (m *SESMailer) send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		logrus.WithError(err).Warn("SES send failed")
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendOrderConfirmation mails the receipt for a freshly placed order.
func (m *SESMailer) SendOrderConfirmation(to string, o *order.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Kedves %s!\n\nKöszönjük a rendelést!\n\n", o.CustomerName)
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "  %d x %s - %d Ft\n", line.Quantity, line.Name, line.LineTotal)
		for _, side := range line.Sides {
			fmt.Fprintf(&b, "      köret: %s\n", side.Name)
		}
	}
	fmt.Fprintf(&b, "\nÖsszesen: %d Ft\nÁtvétel: %s\nFizetés: %s\n",
		o.Total, o.PickupTime, o.PaymentMethod)
	fmt.Fprintf(&b, "\nRendelésazonosító: %s\n", o.ID)

	return m.send(to, "Rendelés visszaigazolás", b.String())
}
