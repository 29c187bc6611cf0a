package notifier

import (
	"fmt"
	"net/http"
	"ovhwatch/config"
	"ovhwatch/internal/matcher"
	"ovhwatch/internal/notifier/platform"
	"ovhwatch/internal/notifier/qmsg"
	"strings"

	log "github.com/sirupsen/logrus"
)

const stockTitle = "OVH restock alert"

// StockNotifier converts stock hits to notification messages
type StockNotifier struct {
	notifier Notifier
	label    string
	orderURL string
}

// NewStockNotifier creates a new StockNotifier. label names the watched
// configuration and orderURL is passed along as the notification link.
func NewStockNotifier(notifier Notifier, label, orderURL string) *StockNotifier {
	return &StockNotifier{
		notifier: notifier,
		label:    label,
		orderURL: orderURL,
	}
}

// NotifyHit sends a notification for a purchasable datacenter
func (sn *StockNotifier) NotifyHit(hit matcher.Hit) error {
	return sn.notifier.Notify(stockTitle, FormatHitMessage(hit, sn.label), sn.orderURL)
}

// FormatHitMessage renders the body of a stock notification
func FormatHitMessage(hit matcher.Hit, label string) string {
	return fmt.Sprintf("Plan code: %s\nDatacenter: %s\nConfig: %s\nDelivery: %s",
		hit.PlanCode, strings.ToUpper(hit.Datacenter), label, hit.Availability)
}

// New builds the notifiers enabled by the configuration. A configuration
// with no usable notifier is allowed; hits are then only logged.
func New(cfg *config.Configuration) Notifier {
	var enabled Multi

	if cfg.QmsgKey != "" {
		client := &http.Client{Timeout: cfg.NotifyTimeout}
		enabled = append(enabled, qmsg.NewClient(client, cfg.QmsgURL, cfg.QmsgKey))
	} else {
		log.Warn("Qmsg key is not configured, push notifications are disabled")
	}

	if cfg.DesktopNotify {
		enabled = append(enabled, platform.NewDesktopNotifier(cfg.DesktopSound))
	}

	return enabled
}
