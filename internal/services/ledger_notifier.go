package services

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/jobs"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/notify"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

// Dispatcher runs jobs outside the request path
type Dispatcher interface {
	EnqueueAsync(job jobs.Job)
}

// LedgerNotifier tells the members of a business about ledger changes
type LedgerNotifier struct {
	members    repository.MembershipRepository
	sink       notify.Sink
	dispatcher Dispatcher
}

func NewLedgerNotifier(members repository.MembershipRepository, sink notify.Sink, dispatcher Dispatcher) *LedgerNotifier {
	return &LedgerNotifier{members: members, sink: sink, dispatcher: dispatcher}
}

// Publish queues delivery of msg to the active members of msg.BusinessID.
// Call it only after the change is committed.
func (n *LedgerNotifier) Publish(msg notify.Message) {
	if n == nil || n.sink == nil || n.dispatcher == nil {
		return
	}
	n.dispatcher.EnqueueAsync(func(ctx context.Context) error {
		return n.deliver(ctx, msg)
	})
}

func (n *LedgerNotifier) deliver(ctx context.Context, msg notify.Message) error {
	members, err := n.members.ListMembers(ctx, msg.BusinessID)
	if err != nil {
		return fmt.Errorf("load members of business %d: %w", msg.BusinessID, err)
	}

	var errs []error
	for _, member := range members {
		if !member.IsActive() {
			continue
		}
		to := notify.Recipient{
			UserID:         member.ID,
			Email:          member.Email,
			TelegramChatID: member.NotificationAddress(),
		}
		if err := n.sink.Notify(ctx, to, msg); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		logger.Warn("Ledger notification partially failed", "business_id", msg.BusinessID, "type", msg.Type, "failures", len(errs))
	}
	return errors.Join(errs...)
}

func kindLabel(kind string) string {
	if kind == models.TransactionKindExpense {
		return "Gasto"
	}
	return "Ingreso"
}

func statusLabel(status string) string {
	switch status {
	case models.DebtStatusPartial:
		return "Parcial"
	case models.DebtStatusSettled:
		return "Pagada"
	}
	return "Pendiente"
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func descriptionOrDefault(description *string) string {
	if description == nil || *description == "" {
		return "Sin descripción"
	}
	return *description
}

func actorName(actor *models.User) string {
	if actor == nil {
		return "un miembro"
	}
	return html.EscapeString(actor.FullName)
}

func transactionMessage(notifType, title string, actor *models.User, tx *models.Transaction) notify.Message {
	return notify.Message{
		BusinessID: tx.BusinessID,
		Type:       notifType,
		Title:      title,
		Text: fmt.Sprintf("Por %s\n<b>Tipo:</b> %s\n<b>Monto:</b> %s\n<b>Descripción:</b> %s\n<b>Fecha:</b> %s",
			actorName(actor),
			kindLabel(tx.Kind),
			money(tx.Amount),
			html.EscapeString(descriptionOrDefault(tx.Description)),
			models.FormatDate(tx.Date)),
	}
}

func debtCreatedMessage(actor *models.User, debt *models.Debt, client *models.Client) notify.Message {
	return notify.Message{
		BusinessID: client.BusinessID,
		Type:       models.NotificationTypeDebtCreated,
		Title:      "Deuda registrada",
		Text: fmt.Sprintf("Por %s\n<b>Cliente:</b> %s\n<b>Monto:</b> %s\n<b>Descripción:</b> %s",
			actorName(actor),
			html.EscapeString(client.Name),
			money(debt.TotalAmount),
			html.EscapeString(descriptionOrDefault(debt.Description))),
	}
}

func debtDeletedMessage(actor *models.User, debt *models.Debt, client *models.Client) notify.Message {
	return notify.Message{
		BusinessID: client.BusinessID,
		Type:       models.NotificationTypeDebtDeleted,
		Title:      "Deuda eliminada",
		Text: fmt.Sprintf("Por %s\n<b>Cliente:</b> %s\n<b>Monto:</b> %s\n<b>Saldo pendiente:</b> %s",
			actorName(actor),
			html.EscapeString(client.Name),
			money(debt.TotalAmount),
			money(debt.OutstandingBalance())),
	}
}

func installmentMessage(actor *models.User, debt *models.Debt, client *models.Client, amount decimal.Decimal) notify.Message {
	return notify.Message{
		BusinessID: client.BusinessID,
		Type:       models.NotificationTypeInstallmentApplied,
		Title:      "💰 Abono registrado",
		Text: fmt.Sprintf("Por %s\n<b>Cliente:</b> %s\n<b>Monto abono:</b> %s\n<b>Saldo pendiente:</b> %s\n<b>Estado:</b> %s",
			actorName(actor),
			html.EscapeString(client.Name),
			money(amount),
			money(debt.OutstandingBalance()),
			statusLabel(debt.Status)),
	}
}

func memberAddedMessage(actor *models.User, business *models.Business, member *models.User) notify.Message {
	return notify.Message{
		BusinessID: business.ID,
		Type:       models.NotificationTypeMemberAdded,
		Title:      "Nuevo miembro",
		Text: fmt.Sprintf("%s agregó a %s al negocio <b>%s</b>",
			actorName(actor),
			html.EscapeString(member.FullName),
			html.EscapeString(business.Name)),
	}
}
