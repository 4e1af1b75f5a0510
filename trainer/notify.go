package trainer

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/recorder"
)

// Sender delivers a desktop notification.
type Sender func(title, message, icon string) error

func beeepSender(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

// Notifier turns recorder phase changes and arousal prompts into desktop
// notifications.
type Notifier struct {
	send    Sender
	chime   func() error
	def     level.Definition
	enabled bool
}

// NewNotifier returns a notifier for def. A nil send uses the system
// notification service.
func NewNotifier(def level.Definition, enabled bool, send Sender) *Notifier {
	if send == nil {
		send = beeepSender
	}

	return &Notifier{
		send:    send,
		def:     def,
		enabled: enabled,
	}
}

// WithChime plays a sound on every stroke and rest phase, independent of
// desktop notifications.
func (n *Notifier) WithChime(play func() error) *Notifier {
	n.chime = play
	return n
}

func (n *Notifier) ring() {
	if n.chime == nil {
		return
	}

	if err := n.chime(); err != nil {
		slog.Warn("unable to play chime", slog.Any("error", err))
	}
}

func (n *Notifier) notify(title, msg string) {
	if !n.enabled {
		return
	}

	if err := n.send(title, msg, ""); err != nil {
		slog.Warn(
			"unable to display notification",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}

// Listen is a recorder.Listener that announces scheduled phases.
func (n *Notifier) Listen(ev recorder.Event) {
	if ev.Kind != recorder.EventPhase || ev.Session == nil {
		return
	}

	phases := ev.Session.Phases
	if len(phases) == 0 {
		return
	}

	switch phases[len(phases)-1].Type {
	case models.Stroke:
		n.ring()
		n.notify(
			"Stroke",
			fmt.Sprintf("Resume stroking for %s", seconds(n.def.StrokeSeconds)),
		)
	case models.Rest:
		n.ring()
		n.notify(
			"Rest",
			fmt.Sprintf("Hands off for %s", seconds(n.def.RestSeconds)),
		)
	case models.Edge:
	}
}

// ArousalDue prompts for an arousal reading.
func (n *Notifier) ArousalDue() {
	n.notify("Arousal check", "Rate your arousal from 1 to 10")
}

func seconds(s int) string {
	if s%60 == 0 {
		if s == 60 {
			return "1 minute"
		}

		return fmt.Sprintf("%d minutes", s/60)
	}

	return fmt.Sprintf("%d seconds", s)
}
