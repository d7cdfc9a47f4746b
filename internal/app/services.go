package app

import (
	"go.uber.org/fx"

	"github.com/Alijeyrad/datalux_backend/internal/notify"
	"github.com/Alijeyrad/datalux_backend/internal/repo"
	"github.com/Alijeyrad/datalux_backend/internal/service/contact"
	"github.com/Alijeyrad/datalux_backend/pkg/email"
	"github.com/Alijeyrad/datalux_backend/pkg/telegram"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideMailNotifier,
		ProvideChatNotifier,
		ProvideContactService,
	),
)

func ProvideMailNotifier(c *email.Client) *notify.MailNotifier {
	return notify.NewMailNotifier(c)
}

func ProvideChatNotifier(c *telegram.Client) *notify.ChatNotifier {
	return notify.NewChatNotifier(c)
}

// ProvideContactService ties the store to both notification channels.
func ProvideContactService(db *repo.Client, mail *notify.MailNotifier, chat *notify.ChatNotifier) contact.Service {
	return contact.New(db, mail, chat)
}
