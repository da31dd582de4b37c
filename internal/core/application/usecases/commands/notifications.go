package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// notifier wraps ports.Notifier with fire-and-forget semantics: failures are
// logged and never reach the caller.
type notifier struct {
	sender ports.Notifier
	logger *slog.Logger
}

func newNotifier(sender ports.Notifier, logger *slog.Logger) notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return notifier{sender: sender, logger: logger}
}

func (n notifier) send(ctx context.Context, recipient, subject, body string) {
	if n.sender == nil || recipient == "" {
		return
	}
	if err := n.sender.Send(ctx, recipient, subject, body); err != nil {
		n.logger.WarnContext(ctx, "notification not sent",
			"recipient", recipient,
			"subject", subject,
			"error", err,
		)
	}
}

func (n notifier) orderPlaced(ctx context.Context, owner *customer.Customer, o *order.Order, cutoff time.Time) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hallo %s,\n\nvielen Dank für Ihre Bestellung #%d.\n\n", owner.FullName(), o.ID())
	for _, item := range o.Items() {
		fmt.Fprintf(&b, "%d x %s à %s = %s\n", item.Quantity(), item.Name(), item.UnitPrice(), item.Subtotal())
	}
	fmt.Fprintf(&b, "\nZwischensumme: %s\n", o.Total())
	if o.DeliveryType() == order.Delivery {
		fmt.Fprintf(&b, "Liefergebühr: %s\nLieferadresse: %s\n", o.DeliveryFee(), o.DeliveryAddress())
	} else {
		b.WriteString("Abholung in der Filiale\n")
	}
	fmt.Fprintf(&b, "Gesamt: %s\n", o.GrandTotal())
	if desired := o.DesiredTime(); desired != nil {
		fmt.Fprintf(&b, "Wunschtermin: %s\n", desired.In(cutoff.Location()).Format("02.01.2006 15:04"))
	}
	fmt.Fprintf(&b, "\nÄnderungen sind bis %s Uhr möglich.\n", cutoff.Format("02.01.2006 15:04"))

	n.send(ctx, owner.Email(), fmt.Sprintf("Bestellbestätigung #%d", o.ID()), b.String())
}

func (n notifier) orderCancelled(ctx context.Context, owner *customer.Customer, o *order.Order) {
	n.send(ctx, owner.Email(),
		fmt.Sprintf("Stornierung #%d", o.ID()),
		fmt.Sprintf("Hallo %s,\n\nIhre Bestellung #%d wurde storniert.\n", owner.FullName(), o.ID()),
	)
}

func (n notifier) changeRequestFiled(ctx context.Context, owner *customer.Customer, cr *changerequest.ChangeRequest) {
	n.send(ctx, owner.Email(),
		fmt.Sprintf("Änderungsanfrage zu Bestellung #%d", cr.OrderID()),
		fmt.Sprintf("Hallo %s,\n\nwir haben Ihre Anfrage (%s) zu Bestellung #%d erhalten:\n\n%s\n",
			owner.FullName(), cr.Type(), cr.OrderID(), cr.Reason()),
	)
}

func (n notifier) changeRequestResolved(ctx context.Context, owner *customer.Customer, cr *changerequest.ChangeRequest) {
	outcome := "abgelehnt"
	if cr.Status() == changerequest.Approved {
		outcome = "angenommen"
	}
	body := fmt.Sprintf("Hallo %s,\n\nIhre Anfrage zu Bestellung #%d wurde %s.\n", owner.FullName(), cr.OrderID(), outcome)
	if cr.StaffNotes() != "" {
		body += "\nAnmerkung: " + cr.StaffNotes() + "\n"
	}
	n.send(ctx, owner.Email(), fmt.Sprintf("Änderungsanfrage zu Bestellung #%d", cr.OrderID()), body)
}
