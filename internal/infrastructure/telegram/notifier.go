package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jhoicas/shop-admin-api/internal/application/orders"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	"github.com/jhoicas/shop-admin-api/pkg/logger"
)

var _ orders.Notifier = (*Notifier)(nil)

// Notifier envía avisos de pedidos nuevos al chat de administración vía bot de Telegram.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *logger.Logger
}

// New construye el notificador. Devuelve error si el token es inválido.
func New(botToken string, chatID int64, log *logger.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID, log: log}, nil
}

// NotifyNewOrder envía el resumen del pedido. Los fallos solo se registran:
// la creación del pedido ya hizo commit y no debe depender de Telegram.
func (n *Notifier) NotifyNewOrder(order *entity.Order, customer *entity.Customer) {
	msg := tgbotapi.NewMessage(n.chatID, formatOrder(order, customer))
	if _, err := n.bot.Send(msg); err != nil {
		n.log.Error().Err(err).Str("order_id", order.ID).Msg("aviso de pedido a Telegram")
	}
}

func formatOrder(order *entity.Order, customer *entity.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nuevo pedido %s\n", order.ID)
	fmt.Fprintf(&b, "Cliente: %s", customer.Name)
	if customer.Phone != "" {
		fmt.Fprintf(&b, " (%s)", customer.Phone)
	}
	b.WriteString("\n\n")
	for _, it := range order.Items {
		fmt.Fprintf(&b, "- %s x%s = %s\n", it.Name, it.Quantity.String(), it.LineTotal.String())
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", order.Subtotal.String())
	fmt.Fprintf(&b, "Envío: %s\n", order.DeliveryFee.String())
	fmt.Fprintf(&b, "Total: %s", order.Total.String())
	if order.Comment != "" {
		fmt.Fprintf(&b, "\nComentario: %s", order.Comment)
	}
	return b.String()
}
