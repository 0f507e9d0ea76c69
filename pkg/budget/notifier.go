package budget

import (
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// AlertNotifier re-checks budget alerts whenever a transaction is
// recorded, logs a warning for every budget at or over the threshold, and
// republishes each alert as a budget threshold event for other
// collaborators.
type AlertNotifier struct {
	bus         *event_bus.EventBus
	service     Service
	unsubscribe func()
}

func NewAlertNotifier(bus *event_bus.EventBus, service Service) *AlertNotifier {
	n := &AlertNotifier{bus: bus, service: service}
	n.unsubscribe = event_bus.SubscribeTyped(bus, event_bus.EventTransactionRecorded,
		func(e event_bus.EventT[event_bus.TransactionRecorded]) error {
			return n.notify(e)
		})
	return n
}

func (n *AlertNotifier) notify(e event_bus.EventT[event_bus.TransactionRecorded]) error {
	alerts, err := n.service.Alerts(e.Context())
	if err != nil {
		return err
	}
	for _, b := range alerts {
		progress, err := n.service.Progress(e.Context(), b)
		if err != nil {
			return err
		}
		log.Warnf("budget alert: %s is at %.0f%% of its %s limit of %s", b.Category, progress.Progress, b.Period, b.Amount)

		event := event_bus.NewEvent(e.Context(), event_bus.EventBudgetThresholdReached, event_bus.BudgetThresholdReached{
			Id:       b.ID,
			Category: b.Category,
			Amount:   b.Amount,
			Period:   string(b.Period),
			Progress: progress.Progress,
		})
		if err := n.bus.Publish(event); err != nil {
			log.Warnf("budget threshold event handling failed: %v", err)
		}
	}
	return nil
}

// Close removes the bus subscription.
func (n *AlertNotifier) Close() {
	n.unsubscribe()
}
