package assistant

import (
	"fmt"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// Canned replies, verbatim from the product. The schedule and meeting
// variants differ by role on purpose; tests pin the divergence.

const (
	loginToSave   = "Please log in to save reminders."
	loginToView   = "Please log in to view reminders."
	loginToManage = "Please log in to manage reminders."

	reminderSavedFmt    = "Okay, I've added %q to your reminders. 📝"
	reminderSaveFailed  = "I couldn't save that reminder due to an error. 😓"
	reminderFetchFailed = "I couldn't fetch your reminders at the moment."
	reminderClearFailed = "Failed to clear reminders."
	remindersCleared    = "All reminders cleared! ✅"
	noReminders         = "You have no pending reminders."
	remindersTitle      = "Your Reminders:"

	adminMeetingReply = "You have a staff meeting at 4 PM in the Conference Hall. 👔"
	adminFallback     = "I'm Jaz, your Admin Assistant. You can ask me to set reminders or check your schedule."

	lunchMenuReply  = "Today's lunch menu: Rajma Chawal, Curd, Salad, and Pickle. 🍛"
	examNoticeReply = "Mid-semester exams start from October 15th. Check the notice board for the detailed date sheet! 📅"
	wifiHelpReply   = "If you're facing WiFi issues, please try forgetting the network and reconnecting. If it persists, file a complaint in the 'Infrastructure' category."
	greetingReply   = "Hello! I'm Jaz. How can I assist you today? 😊"
	studentFallback = "I'm not sure about that. Try asking about 'schedule', 'meetings', or say 'Remind me to [task]'."
)

var facultySchedule = Reply{
	Title: "Faculty Schedule (Today):",
	Items: []string{
		"09:00 AM - Dept. HOD Meeting",
		"11:30 AM - Review Complaint Dashboard",
		"02:00 PM - Campus Inspection",
	},
}

var classSchedule = Reply{
	Title: "Here is your schedule for today:",
	Items: []string{
		"09:00 AM - Data Structures (CS101)",
		"11:00 AM - Web Development Lab",
		"02:00 PM - Discrete Mathematics",
	},
}

var studentMeetings = Reply{
	Title: "Upcoming Meetings:",
	Items: []string{
		"Today, 4:00 PM - Coding Club Sync",
		"Tomorrow, 10:00 AM - Project Review with Prof. Smith",
	},
}

// Greeting returns the conversation opener for the given role.
func Greeting(role string) Reply {
	label := "Student"
	if role == domain.RoleAdmin {
		label = "Admin"
	}
	return Reply{Text: fmt.Sprintf(
		"Hi! I'm Jaz, your %s Assistant. I can help you with your schedule, meetings, or reminders. Try saying 'Remind me to call Mom'!",
		label,
	)}
}
