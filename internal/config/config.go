package config

import (
	"io/fs"
	"time"
)

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
	AppName           = "Go Datepicker"
	AppID             = "com.github.tartampluch.go-datepicker"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags, Environment & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLanguage     = "lang"
	FlagPort         = "port"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescLanguage = "Picker language (fa selects the Jalaali calendar)"
	FlagDescPort     = "Port of the local selection feed"
	MsgVersionOutput = "%s version %s (%s/%s)\n"

	EnvFile     = ".env"
	EnvLanguage = "DATEPICKER_LANG"
	EnvPort     = "DATEPICKER_PORT"
	EnvLayout   = "DATEPICKER_FORMAT"
)

// -----------------------------------------------------------------------------
// Locales & Calendars
// -----------------------------------------------------------------------------

const (
	LangEnglish     = "en"
	LangPersian     = "fa"
	DefaultLanguage = LangEnglish

	// LayoutJalaali and LayoutGregorian are the locale-default date layouts.
	// Tokens prefixed with "j" address Jalaali fields.
	LayoutJalaali   = "jYYYY/jMM/jDD"
	LayoutGregorian = "YYYY/MM/DD"

	// MonthPlaceholder is reported as the month name when no translation exists.
	MonthPlaceholder = "--"

	// Two-digit year pivots, matching the moment/moment-jalaali parsers.
	GregorianYYPivot = 68
	JalaaliYYPivot   = 47
)

// SupportedLanguages defines the list of available picker languages (ISO 639-1).
var SupportedLanguages = []string{LangEnglish, LangPersian}

// -----------------------------------------------------------------------------
// Engine Constants
// -----------------------------------------------------------------------------

const (
	MonthsPerYear = 12
	DaysPerWeek   = 7
	GridWeeks     = 6
	GridCells     = GridWeeks * DaysPerWeek
	DecadeSpan    = 10

	// TagDateLayout is the validator tag checking picker layouts.
	TagDateLayout = "datelayout"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 720
	MainWindowHeight    = 460
	SettingsWindowWidth = 420

	PrefLanguage   = "language"
	PrefServerPort = "server_port"
	PrefLayout     = "layout"
	PrefLastRun    = "last_run_version"

	LayoutColumnsDouble = 2

	// DateEntrySeparators lists the non-digit runes accepted by the date input.
	DateEntrySeparators = "/-. "

	// FormatRangeDesc expects the formatted start and end.
	FormatRangeDesc = "%s - %s"
	FormatTitle     = "%s %d"
	PickerColumns   = 3
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// TKeyMonthFmt expects the month number (1-12) of the language's calendar.
	TKeyMonthFmt = "month_%d"
	// TKeyWeekdayFmt expects a time.Weekday value (0 = Sunday).
	TKeyWeekdayFmt = "weekday_%d"

	TKeyWinTitle     = "win_title"
	TKeyWinSettings  = "win_settings"
	TKeyLblSingle    = "lbl_single"
	TKeyLblStart     = "lbl_start"
	TKeyLblEnd       = "lbl_end"
	TKeyLblRange     = "lbl_range"
	TKeyLblFooter    = "lbl_footer"
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblLayout    = "lbl_layout"
	TKeyHelpLayout   = "help_layout"
	TKeyLblPort      = "lbl_server_port"
	TKeyBtnClear     = "btn_clear"
	TKeyBtnSettings  = "btn_settings"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyEvtSummary   = "event_summary"
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
	TKeyErrLayout    = "err_layout"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort = "18081"
	MinPort     = 1
	MaxPort     = 65535
	UIDSalt     = "go-datepicker-v1-"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Datepicker//Export//EN"
	ICalCalName = "Selection"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "godatepicker"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultICalRefresh = 1 * time.Hour

	FormatUIDInput = "%s|%s|%s"
	FormatUID      = "%s@%s"
	DateFormatICS  = "2006-01-02"

	// StubVCalendar is the minimal valid iCalendar object used when nothing is selected.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummary = "Selected dates"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	NetworkTCP         = "tcp"
	FeedName           = "selection.ics"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDate     = "invalid date"
	ErrDayUnset        = "no day selected"
	ErrDateOutOfRange  = "date is not valid in calendar"
	ErrParse           = "unable to parse date"
	ErrLayoutEmpty     = "layout is empty"
	ErrLayoutMixed     = "layout mixes calendar systems"
	ErrLayoutField     = "layout lacks a year, month or day token"
	ErrLayoutLiteral   = "input does not match layout literal"
	ErrLayoutDigits    = "expected digits"
	ErrLayoutMonthName = "expected a month name"
	ErrLayoutTrailing  = "unexpected trailing input"
	ErrLayoutBracket   = "unterminated literal bracket"
	ErrOptions         = "invalid picker options"
	ErrSettings        = "invalid application settings"
	ErrEnvLoad         = "failed to load environment file"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrExportSelection = "failed to export selection"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Selection feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"

	TitleStartupError = "Startup Error"
	MsgPortBusy       = "Port %s is busy. The selection feed is unavailable."
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgFeedUpdated   = "Selection feed updated"
	MsgExported      = "Selection exported"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgParseRejected = "Input rejected by strict parse"
	MsgDayDisabled   = "Disabled day ignored"
	MsgDateCommitted = "Date committed"
	MsgDateCleared   = "Date cleared"
	MsgPickerBuilt   = "Picker built"
	MsgRangeChanged  = "Range changed"
	MsgSettingsSaved = "Settings saved"
	MsgSettingsOpen  = "Opening settings window"
	MsgSettingsFocus = "Settings window already open, requesting focus"
	MsgPickersBuilt  = "Pickers rebuilt"
	MsgEnvMissing    = "No environment file found, using defaults"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyCalendar  = "calendar"
	LogKeyLayout    = "layout"
	LogKeyInput     = "input"
	LogKeyDate      = "date"
	LogKeyStart     = "start"
	LogKeyEnd       = "end"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompExport = "export"
	CompServer = "server"
	CompMain   = "main"
	CompI18n   = "i18n"
	CompConfig = "config"
)
