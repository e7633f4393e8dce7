// Package catalog defines the fixed, ordered set of getting-started steps.
// The catalog is compiled in and identical for every consumer; order defines
// the default progression order and is never changed at runtime.
package catalog

// Icon identifies the glyph a presentation layer renders for a step
type Icon string

const (
	IconLink     Icon = "link"
	IconSync     Icon = "sync"
	IconRule     Icon = "rule"
	IconCalendar Icon = "calendar"
	IconChart    Icon = "chart"
)

// StepDefinition is a single getting-started step. IDs are stable across
// releases; persisted progress refers to steps by ID only.
type StepDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
	TargetRoute string `json:"target_route"`
}

// steps is the canonical ordered catalog.
var steps = []StepDefinition{
	{
		ID:    "connect-platform",
		Title: "Connect a platform",
		Description: `Add credentials for at least one social platform so Crossfeed can
post and read on your behalf.

Run ` + "`crossfeed credentials add`" + ` or open **Settings → Credentials** in the
dashboard.`,
		Icon:        IconLink,
		TargetRoute: "/credentials",
	},
	{
		ID:    "first-sync",
		Title: "Run your first sync",
		Description: `Pull your existing posts and followers into Crossfeed. The first sync
seeds your feed history so rules and analytics have something to work with.`,
		Icon:        IconSync,
		TargetRoute: "/sync",
	},
	{
		ID:    "create-rule",
		Title: "Create a feed rule",
		Description: `Build a rule in the rule lab to score and curate incoming posts.
Start from a template or write one from scratch and preview it against your
recent feed.`,
		Icon:        IconRule,
		TargetRoute: "/rules/lab",
	},
	{
		ID:    "schedule-post",
		Title: "Schedule a cross-post",
		Description: `Compose a post once and schedule it across your connected platforms.
Scheduled posts respect per-platform quiet hours.`,
		Icon:        IconCalendar,
		TargetRoute: "/schedule",
	},
	{
		ID:    "view-analytics",
		Title: "Check your analytics",
		Description: `See how your cross-posts performed across platforms: reach,
engagement, and which rules surfaced the posts that did best.`,
		Icon:        IconChart,
		TargetRoute: "/analytics",
	},
}

// Steps returns the ordered catalog. The returned slice is a copy; callers
// may not mutate the canonical catalog.
func Steps() []StepDefinition {
	out := make([]StepDefinition, len(steps))
	copy(out, steps)
	return out
}

// IDs returns the catalog step ids in catalog order.
func IDs() []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.ID
	}
	return out
}

// ByID returns the step with the given id, or false if no such step exists.
func ByID(id string) (StepDefinition, bool) {
	for _, s := range steps {
		if s.ID == id {
			return s, true
		}
	}
	return StepDefinition{}, false
}
