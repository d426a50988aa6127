package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyOperator contextKey = "operator"
)

const (
	RequestParamID    = "id"
	RequestParamDate  = "date"
	RequestParamPhone = "phone"
)

const (
	DefaultValueSortDir = "ASC"
	DefaultOperator     = "front-desk"
)

const (
	PqErrorCodeUndefinedColumn = "42703"
	PqErrorCodeUndefinedTable  = "42P01"
)

const (
	DayFormat      = "2006-01-02"
	BackupFileTime = "20060102-150405"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelSyncScopeName       = "sync"
	OtelLocalStoreScopeName = "localstore"
	OtelBackupScopeName     = "backup"

	OtelQueryAttributeKey = "query"
	OtelTableAttributeKey = "table"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderOperator           = "X-Operator"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeZstd = "application/zstd"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
