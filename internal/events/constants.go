package events

// Event type constants
const (
	// EventTypeStateChanged fires after a mutation is applied locally
	EventTypeStateChanged EventType = "state_changed"
	// EventTypeSyncConfirmed fires once the server accepted a mutation
	EventTypeSyncConfirmed EventType = "sync_confirmed"
	// EventTypeSyncFailed fires after a rejected mutation was rolled back
	EventTypeSyncFailed EventType = "sync_failed"
)

// Store names carried on events
const (
	StoreCharacters    = "characters"
	StoreCampaigns     = "campaigns"
	StoreOverland      = "overland"
	StoreCampaignBoard = "campaign_board"
)

// Priority levels for listener ordering
const (
	PriorityState  = 0   // Mirrors of store state
	PriorityView   = 100 // Re-rendering
	PriorityNotify = 200 // User-facing notifications
)

// AllTypes lists every event a store emits
var AllTypes = []EventType{
	EventTypeStateChanged,
	EventTypeSyncConfirmed,
	EventTypeSyncFailed,
}
