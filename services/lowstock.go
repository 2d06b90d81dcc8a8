// services/lowstock.go
package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// LowStockService checks the inventory once a day and tells the store
// owner which products are running low. Without Twilio credentials it is
// log-only; nothing in the domain state is ever mutated.
type LowStockService struct {
	ledger *Ledger
	log    *zap.SugaredLogger
	client *twilio.RestClient
}

func NewLowStockService(ledger *Ledger, log *zap.SugaredLogger) *LowStockService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &LowStockService{ledger: ledger, log: log, client: client}
}

// StartScheduler runs the check every day at 9 AM.
func (s *LowStockService) StartScheduler() {
	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", s.CheckLowStock); err != nil {
		s.log.Errorw("failed to schedule low-stock check", "error", err)
		return
	}
	c.Start()
	s.log.Info("low-stock scheduler started")
}

// CheckLowStock logs the current low-stock items and, when configured,
// sends the owner one summary message.
func (s *LowStockService) CheckLowStock() {
	items := s.ledger.LowStockItems()
	if len(items) == 0 {
		s.log.Info("low-stock check: all items sufficiently stocked")
		return
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %d left", item.Name, item.Stock))
		s.log.Warnw("low stock", "item", item.Name, "stock", item.Stock)
	}

	s.notifyOwner(fmt.Sprintf("%s low stock alert:\n%s",
		s.ledger.StoreName(), strings.Join(lines, "\n")))
}

func (s *LowStockService) notifyOwner(message string) {
	owner := os.Getenv("OWNER_PHONE")
	if s.client == nil || owner == "" {
		return
	}

	to := owner
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	// Prefer WhatsApp when the owner number is in E.164 form
	if strings.HasPrefix(owner, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		to = "whatsapp:" + owner
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Errorw("failed to send low-stock alert", "to", owner, "error", err)
		return
	}
	if resp.Sid != nil {
		s.log.Infow("low-stock alert sent", "to", owner, "sid", *resp.Sid)
	} else {
		s.log.Infow("low-stock alert sent, no SID returned", "to", owner)
	}
}
