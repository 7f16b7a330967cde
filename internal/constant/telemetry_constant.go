package constant

const (
	// UrgentContactEventName marks events the operator must see immediately.
	// The contact form emits it alongside high-priority submissions.
	UrgentContactEventName = "contact_form_urgent"

	// UnknownIPSentinel is stored when no network origin could be derived.
	UnknownIPSentinel = "unknown"

	DefaultEventPageSize   = 100
	DefaultMessagePageSize = 50
	MaxPageSize            = 1000

	DashboardRecentLimit    = 5
	DashboardTopEventsLimit = 5
	NotificationFeedLimit   = 20
)
