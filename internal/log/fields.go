package log

// Field names for the request logging middleware. Kept as constants so log
// consumers can correlate on them without chasing string literals.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldUserAgent = "user_agent"
)

// Component names carried on every record of a binary's logger.
const (
	ComponentApp    = "app"
	ComponentWorker = "worker"
)
