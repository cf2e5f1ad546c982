package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySubject contextKey = "subject"
	ContextKeyRole    contextKey = "role"
	ContextKeyTokenID contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

const (
	RequestParamID    = "id"
	RequestParamYear  = "year"
	RequestParamMonth = "month"
	RequestParamDate  = "date"
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 50
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnhealthy            = "SERVICE UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeyCalendarMonth = "calendar:month"
)

const (
	Asterix = "*"
	Empty   = ""
)
