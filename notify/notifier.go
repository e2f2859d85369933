package notify

import (
	"fmt"
	"html"

	"eduportal/logger"

	"go.uber.org/zap"
)

// Notifier fans portal events out to mail and the moderation webhook.
type Notifier struct {
	Mailer  Mailer
	Webhook *Webhook // nil when no moderation webhook is configured
}

// Current is the notifier used by the services layer.
var Current = &Notifier{Mailer: LogMailer{}}

// Welcome greets a newly registered user.
func (n *Notifier) Welcome(name, email string) {
	n.mail(Message{
		ToName:  name,
		ToEmail: email,
		Subject: "Welcome to EduPortal",
		Text:    fmt.Sprintf("Hi %s, your account is ready. Browse courses, documentation and the forum.", name),
		HTML:    layout("Welcome!", fmt.Sprintf("<p>Hi <strong>%s</strong>, your account is ready.</p><p>Browse courses, documentation and the forum.</p>", html.EscapeString(name))),
	})
}

// Enrolled confirms an enrollment.
func (n *Notifier) Enrolled(name, email, courseTitle string) {
	body := fmt.Sprintf("<p>Hi %s,</p><p>You are now enrolled in <strong>%s</strong>.</p>",
		html.EscapeString(name), html.EscapeString(courseTitle))
	n.mail(Message{
		ToName:  name,
		ToEmail: email,
		Subject: "Course enrollment confirmation",
		Text:    fmt.Sprintf("Hi %s, you are now enrolled in %q.", name, courseTitle),
		HTML:    layout("Enrollment successful", body),
	})
}

// PendingModeration announces an upload waiting for an admin.
func (n *Notifier) PendingModeration(docID uint, title, uploader string) {
	if n.Webhook == nil {
		return
	}
	ev := Event{
		Type:    "documentation.pending",
		Message: fmt.Sprintf("%s uploaded %q and it is waiting for moderation", uploader, title),
		Data:    map[string]interface{}{"id": docID, "title": title},
	}
	if err := n.Webhook.Post(ev); err != nil {
		logger.Log.Warn("moderation webhook failed", zap.Uint("documentation_id", docID), zap.Error(err))
	}
}

func (n *Notifier) mail(msg Message) {
	if n.Mailer == nil {
		return
	}
	if err := n.Mailer.Send(msg); err != nil {
		logger.Log.Warn("sending mail failed", zap.String("to", msg.ToEmail), zap.String("subject", msg.Subject), zap.Error(err))
	}
}
