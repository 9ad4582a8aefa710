package assistant

import "strings"

var suggestedPrompts = map[string][]string{
	"finance": {
		"What's our revenue today?",
		"Show me monthly expenses",
		"How's our profit margin?",
		"Top expense categories?",
		"Daily financial summary",
	},
	"inventory": {
		"Any low stock alerts?",
		"Current inventory status",
		"Show missing items",
		"Total inventory value",
		"Recent stock movements",
	},
	"hr": {
		"Today's attendance rate",
		"Top performing employees",
		"Who's on leave?",
		"Employee performance summary",
		"Training completion rates",
	},
	"marketing": {
		"Active campaigns status",
		"Social media metrics",
		"Campaign ROI analysis",
		"Top performing ads",
		"Marketing budget utilization",
	},
	"security": {
		"Security system status",
		"Recent alerts",
		"Camera system check",
		"Access log summary",
		"Threat level assessment",
	},
	"education": {
		"Training progress overview",
		"Upcoming sessions",
		"Skill assessment results",
		"Completion rates by department",
		"Learning recommendations",
	},
	"projects": {
		"Active projects status",
		"Budget utilization",
		"Timeline analysis",
		"Overdue projects",
		"Project performance metrics",
	},
	"events": {
		"Upcoming events",
		"Event performance metrics",
		"Revenue from events",
		"Capacity utilization",
		"Customer satisfaction",
	},
	"dashboard": {
		"Overall business performance",
		"Key metrics summary",
		"Critical alerts",
		"System health check",
		"Daily business overview",
	},
}

var defaultPrompts = []string{
	"Show me insights",
	"What's the current status?",
	"Any alerts or issues?",
	"Performance summary",
	"Recent activity",
}

// SuggestedPrompts returns the quick questions offered on a page's chat panel.
// Unknown categories get the generic list.
func SuggestedPrompts(category string) []string {
	prompts, ok := suggestedPrompts[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		prompts = defaultPrompts
	}
	return append([]string(nil), prompts...)
}
