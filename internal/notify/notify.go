// Package notify formats and displays local notifications about meetups.
// Display is manually triggered by the caller; there is no backing event
// source or push delivery.
package notify

import (
	"fmt"
	"log/slog"

	"meetapp/internal/util"
)

type Notification struct {
	Title   string
	Message string
}

// MeetupInvite builds the notification for a fresh invite.
func MeetupInvite(organizerName, date, wallTime string) Notification {
	return Notification{
		Title:   "Новое приглашение на митап",
		Message: fmt.Sprintf("%s приглашает вас на митап %s", organizerName, util.FormatDateTime(date, wallTime)),
	}
}

// InviteResponse builds the notification for a participant's answer.
func InviteResponse(userName string, accepted bool, date string) Notification {
	message := fmt.Sprintf("%s отклонил(а) приглашение на митап %s", userName, util.FormatDate(date))
	if accepted {
		message = fmt.Sprintf("%s принял(а) приглашение на митап %s", userName, util.FormatDate(date))
	}
	return Notification{
		Title:   "Ответ на приглашение",
		Message: message,
	}
}

// MeetupChange builds the notification for a meetup change.
func MeetupChange(date string, changeType string) Notification {
	var message string
	switch changeType {
	case "time_changed":
		message = fmt.Sprintf("Время митапа %s было изменено", util.FormatDate(date))
	case "cancelled":
		message = fmt.Sprintf("Митап %s был отменен", util.FormatDate(date))
	default:
		message = fmt.Sprintf("Информация о митапе %s обновлена", util.FormatDate(date))
	}
	return Notification{
		Title:   "Изменение митапа",
		Message: message,
	}
}

// Notifier displays notifications. The default display channel is the log.
type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) Show(notification Notification) {
	n.logger.Info(notification.Title, "message", notification.Message)
}
