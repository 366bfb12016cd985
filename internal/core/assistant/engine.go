// Package assistant implements Jaz, the rule-based helpdesk assistant. The
// engine maps free-text input to exactly one reply through an ordered list
// of (predicate, handler) pairs: first match wins, matching is
// case-insensitive, and the final rule is a role-specific catch-all.
// Everything is pure except the reminder handlers, which go through the
// same gateway port the rest of the client uses.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
	"github.com/tracklyy/helpdesk-client/internal/core/ports"
)

const reminderPrefix = "remind me to "

// Reply is the assistant's single response to one input: either plain text
// or a titled list.
type Reply struct {
	Text  string
	Title string
	Items []string
}

// IsList reports whether the reply renders as a titled list.
func (r Reply) IsList() bool {
	return len(r.Items) > 0
}

type rule struct {
	match  func(lower string) bool
	handle func(ctx context.Context, raw string, identity *domain.Identity) Reply
}

// Engine produces replies for one role. The identity is passed per call and
// may be absent; reminder rules then answer with a login prompt instead of
// touching the backend.
type Engine struct {
	role      string
	reminders ports.ReminderGateway
	logger    zerolog.Logger
	rules     []rule
}

// NewEngine builds the rule table for the given role (domain.RoleStudent or
// domain.RoleAdmin). Rule order is the contract: reminders first, then the
// role-specific informational rules, then the fallback.
func NewEngine(role string, reminders ports.ReminderGateway, logger zerolog.Logger) *Engine {
	e := &Engine{role: role, reminders: reminders, logger: logger}

	e.rules = []rule{
		{match: hasPrefix(reminderPrefix), handle: e.createReminder},
		{match: containsAny("my reminders", "show reminders"), handle: e.listReminders},
		{match: containsAny("clear reminders"), handle: e.clearReminders},
	}

	if role == domain.RoleAdmin {
		e.rules = append(e.rules,
			rule{match: containsAny("schedule", "routine"), handle: canned(facultySchedule)},
			rule{match: containsAny("meeting", "meet"), handle: canned(Reply{Text: adminMeetingReply})},
			rule{match: matchAlways, handle: canned(Reply{Text: adminFallback})},
		)
		return e
	}

	e.rules = append(e.rules,
		rule{match: containsAny("schedule", "class", "routine"), handle: canned(classSchedule)},
		rule{match: containsAny("meeting", "meet"), handle: canned(studentMeetings)},
		rule{match: containsAny("food", "lunch", "mess"), handle: canned(Reply{Text: lunchMenuReply})},
		rule{match: containsAny("exam", "test"), handle: canned(Reply{Text: examNoticeReply})},
		rule{match: containsAny("wifi", "internet"), handle: canned(Reply{Text: wifiHelpReply})},
		rule{match: containsAny("hello", "hi", "hey"), handle: canned(Reply{Text: greetingReply})},
		rule{match: matchAlways, handle: canned(Reply{Text: studentFallback})},
	)
	return e
}

// Role returns the role the engine was built for.
func (e *Engine) Role() string {
	return e.role
}

// Respond evaluates the rules in order against the trimmed input and
// returns the first match's reply. It never returns an error: failures of
// the side-effecting rules become apologetic replies, per the product's
// error posture.
func (e *Engine) Respond(ctx context.Context, text string, identity *domain.Identity) Reply {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, r := range e.rules {
		if r.match(lower) {
			return r.handle(ctx, trimmed, identity)
		}
	}
	// Unreachable: the last rule always matches.
	return Reply{}
}

func (e *Engine) createReminder(ctx context.Context, raw string, identity *domain.Identity) Reply {
	if identity == nil || identity.ID == "" {
		return Reply{Text: loginToSave}
	}

	task := raw[len(reminderPrefix):]
	if _, err := e.reminders.CreateReminder(ctx, identity.ID, task); err != nil {
		e.logger.Error().Err(err).Str("user_id", identity.ID).Msg("failed to save reminder")
		return Reply{Text: reminderSaveFailed}
	}
	return Reply{Text: fmt.Sprintf(reminderSavedFmt, task)}
}

func (e *Engine) listReminders(ctx context.Context, _ string, identity *domain.Identity) Reply {
	if identity == nil || identity.ID == "" {
		return Reply{Text: loginToView}
	}

	reminders, err := e.reminders.ListReminders(ctx, identity.ID)
	if err != nil {
		e.logger.Error().Err(err).Str("user_id", identity.ID).Msg("failed to fetch reminders")
		return Reply{Text: reminderFetchFailed}
	}
	if len(reminders) == 0 {
		return Reply{Text: noReminders}
	}

	items := make([]string, len(reminders))
	for i, r := range reminders {
		items[i] = r.Text
	}
	return Reply{Title: remindersTitle, Items: items}
}

func (e *Engine) clearReminders(ctx context.Context, _ string, identity *domain.Identity) Reply {
	if identity == nil || identity.ID == "" {
		return Reply{Text: loginToManage}
	}

	if err := e.reminders.ClearReminders(ctx, identity.ID); err != nil {
		e.logger.Error().Err(err).Str("user_id", identity.ID).Msg("failed to clear reminders")
		return Reply{Text: reminderClearFailed}
	}
	return Reply{Text: remindersCleared}
}

func hasPrefix(prefix string) func(string) bool {
	return func(lower string) bool { return strings.HasPrefix(lower, prefix) }
}

// containsAny matches on substrings, not words: "this" contains "hi". That
// quirk is observed product behavior and tests pin it.
func containsAny(needles ...string) func(string) bool {
	return func(lower string) bool {
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return true
			}
		}
		return false
	}
}

func matchAlways(string) bool { return true }

func canned(r Reply) func(context.Context, string, *domain.Identity) Reply {
	return func(context.Context, string, *domain.Identity) Reply { return r }
}
