package workpaper

import (
	"time"

	"github.com/google/uuid"
)

// QueryStatus is the lifecycle state of an admin↔client query.
type QueryStatus string

const (
	QueryDraft           QueryStatus = "draft"
	QuerySentToClient    QueryStatus = "sent_to_client"
	QueryAwaitingClient  QueryStatus = "awaiting_client"
	QueryClientResponded QueryStatus = "client_responded"
	QueryResolved        QueryStatus = "resolved"
	QueryClosed          QueryStatus = "closed"
)

// OpenQueryStatuses are the states that count toward the client-visible
// open-queries task.
var OpenQueryStatuses = []QueryStatus{
	QuerySentToClient,
	QueryAwaitingClient,
	QueryClientResponded,
}

// Open reports whether the status counts as an open query.
func (s QueryStatus) Open() bool {
	for _, o := range OpenQueryStatuses {
		if s == o {
			return true
		}
	}

	return false
}

// QueryType is the structured request kind of a query.
type QueryType string

const (
	QueryText                QueryType = "text"
	QueryRequestUpload       QueryType = "request_upload"
	QueryRequestNumber       QueryType = "request_number"
	QueryRequestPercentage   QueryType = "request_percentage"
	QueryRequestConfirmation QueryType = "request_confirmation"
	QueryRequestSelection    QueryType = "request_selection"
)

// Sender identifies who wrote a query message.
type Sender string

const (
	SenderAdmin  Sender = "admin"
	SenderClient Sender = "client"
	SenderSystem Sender = "system"
)

// Query is a structured admin↔client thread scoped to a job, optionally
// narrowed to a module or transaction.
type Query struct {
	ID            uuid.UUID
	ClientID      string
	JobID         uuid.UUID
	ModuleID      *uuid.UUID
	TransactionID *uuid.UUID

	Status QueryStatus
	Title  string
	Type   QueryType

	// RequestConfig constrains structured responses, e.g.
	// {"options": [...]} for request_selection.
	RequestConfig map[string]any
	ResponseData  map[string]any

	CreatedBy  Actor
	ResolvedBy *Actor
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// QueryMessage is one entry in a query thread.
type QueryMessage struct {
	ID             uuid.UUID
	QueryID        uuid.UUID
	Sender         Sender
	SenderID       string
	SenderEmail    string
	Text           string
	AttachmentURL  string
	AttachmentName string
	CreatedAt      time.Time
}

// TaskType categorizes client-facing tasks.
type TaskType string

const (
	TaskQueries TaskType = "queries"
)

// TaskStatus is the lifecycle state of a client task.
type TaskStatus string

const (
	TaskOpen      TaskStatus = "open"
	TaskCompleted TaskStatus = "completed"
)

// Task is a client-visible work item. Exactly one QUERIES task exists per
// (client, job); its title and metadata are a live projection of the open
// query set.
type Task struct {
	ID       uuid.UUID
	ClientID string
	JobID    uuid.UUID

	Type   TaskType
	Status TaskStatus

	Title       string
	Description string

	QueryCount int
	QueryIDs   []uuid.UUID

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
