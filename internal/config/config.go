package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "timelike"
	AppID             = "com.github.tartampluch.go-timelike"
	LocalhostBindAddr = "127.0.0.1"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// Instant Parsing
// -----------------------------------------------------------------------------

// InstantLayouts lists the explicit timestamp layouts tried before falling
// back to free-form parsing. Layouts without a zone designator are parsed
// as UTC, which is the contract for textual input.
var InstantLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// -----------------------------------------------------------------------------
// Duration Components
// -----------------------------------------------------------------------------

// Component names accepted when building a duration from named amounts.
const (
	UnitWeeks        = "weeks"
	UnitDays         = "days"
	UnitHours        = "hours"
	UnitMinutes      = "minutes"
	UnitSeconds      = "seconds"
	UnitMilliseconds = "milliseconds"
	UnitMicroseconds = "microseconds"
	UnitNanoseconds  = "nanoseconds"
)

// DurationUnits maps a component name to the duration of one unit.
// Weeks and days are fixed 7*24h and 24h spans; no calendar awareness.
var DurationUnits = map[string]time.Duration{
	UnitWeeks:        7 * 24 * time.Hour,
	UnitDays:         24 * time.Hour,
	UnitHours:        time.Hour,
	UnitMinutes:      time.Minute,
	UnitSeconds:      time.Second,
	UnitMilliseconds: time.Millisecond,
	UnitMicroseconds: time.Microsecond,
	UnitNanoseconds:  time.Nanosecond,
}

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	DefaultPort        = "18081"
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	AllowedMethods     = "GET"
	AddrSeparator      = ":"
	ChannelBufferSize  = 1

	RouteInstant  = "/v1/instant"
	RouteDuration = "/v1/duration"
	QueryValue    = "value"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"

	MimeJSON    = "application/json; charset=utf-8"
	MimeNoSniff = "nosniff"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInstantParse     = "unable to parse timestamp"
	ErrDurationParse    = "unable to parse duration"
	ErrNumericRange     = "numeric value out of range"
	ErrUnknownComponent = "unknown duration component"
	ErrTimeType         = "unsupported time-like type"
	ErrDurationType     = "unsupported duration-like type"
	ErrPortRequired     = "server port is required"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrAppFailed        = "command failed"
	ErrWriteResp        = "failed to write response body"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgValueMissing = "query parameter 'value' is required"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	// MsgNaiveTimestamp is emitted once per pass-through of an instant attached
	// to the process-local zone. The value is returned unmodified; comparisons
	// against UTC-normalized instants on other machines may disagree.
	MsgNaiveTimestamp = "This timestamp is tz-naive. Things may not work as expected. " +
		"If you construct your timestamps manually, consider passing a string, " +
		"which defaults to UTC. If you construct your timestamps automatically, " +
		"set an explicit location instead of relying on time.Local."

	MsgServerListen = "HTTP server listening"
	MsgServerStop   = "Shutting down HTTP server..."
	MsgAppStop      = "Command completed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyPort      = "port"
	LogKeyValue     = "value"
	LogKeyMethod    = "method"
	LogKeyRoute     = "route"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompCoerce = "coerce"
	CompServer = "server"
	CompCLI    = "cli"
	CompMain   = "main"
)
