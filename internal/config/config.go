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

// UserAgent identifies the HTTP client used for remote marker feeds.
var UserAgent = "Go-SwipeCal/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go SwipeCal"
	AppID          = "com.github.tartampluch.go-swipecal"
	KeyringService = "com.github.tartampluch.go-swipecal"
	LogFileName    = "app.log"
	OptionsFile    = "swipecal.yaml"
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
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagOptions      = "options"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescOptions  = "Path to a YAML options file (watched for changes)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Calendar Defaults
// -----------------------------------------------------------------------------

const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
	GranularityYear  = "year"

	DefaultGranularity = GranularityMonth
	DefaultPageBuffer  = 1
	DaysPerWeek        = 7
	MonthsPerYear      = 12

	// ProgressYearDays is the fixed year length used by the month progress
	// approximation for day and week pages.
	ProgressYearDays = 365

	// ProgressMidWeek shifts a week page to its middle day before the
	// day-of-year lookup.
	ProgressMidWeek = 3.5

	// DragSettleThreshold is the fraction of a page a drag must cover
	// before releasing it moves to the neighbouring page.
	DragSettleThreshold = 0.25

	PageAnimationDuration = 300 * time.Millisecond
)

// Date format patterns (date-fns style tokens, rendered by calendar.Format).
const (
	FormatHeaderMonth  = "MMMM yyyy"
	FormatHeaderDay    = "EEEE, MMMM d, yyyy"
	FormatHeaderYear   = "yyyy"
	FormatDayLabelWeek = "EEEEEE"
	FormatDayLabelDay  = "EEEE"
	FormatDayNumber    = "d"
	FormatDayKey       = "yyyy-MM-dd"
	FormatMonthName    = "MMMM"
)

// Text transform names accepted by the theme.
const (
	TransformUppercase  = "uppercase"
	TransformLowercase  = "lowercase"
	TransformCapitalize = "capitalize"
	TransformNone       = "none"
)

// Library-wide theme defaults.
const (
	DefaultFontFamily          = "sans-serif"
	DefaultFontColorActive     = "black"
	DefaultFontColorInactive   = "gray"
	DefaultTodayDotColor       = "tomato"
	DefaultSelectedBackground  = "rgba(0, 0, 255, 0.25)"
	DefaultHeaderFontSize      = 24
	DefaultDayLabelFontSize    = 12
	DefaultDayFontSize         = 12
	DefaultInactiveOpacity     = 1
	DefaultLanguage            = "en"
	DefaultMarkerRefreshMinute = 60
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	WindowWidth      = 420
	WindowHeight     = 520
	DayCellPadding   = 10
	TodayDotSize     = 5
	DayCornerRadius  = 5
	YearEntryMaxLen  = 4
	AgendaListHeight = 140
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyBtnToday       = "btn_today"
	TKeyLblYearJump    = "lbl_year_jump"
	TKeyLblProgress    = "lbl_month_progress"
	TKeyLblAgenda      = "lbl_agenda"
	TKeyAgendaEmpty    = "agenda_empty"
	TKeyAgendaCount    = "agenda_count" // Requires Count
	TKeyNotifReloaded  = "notif_options_reloaded"
	TKeyNotifMarkerErr = "notif_markers_error"
	TKeyBtnCredentials = "btn_credentials"
	TKeyLblPassword    = "lbl_password"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBirthday       = "birthday"     // Requires Name
	TKeyBirthdayAge    = "birthday_age" // Requires Name, Age
	TKeyMonthNames     = "month_names"   // 12 comma-separated names, January first
	TKeyWeekdayNames   = "weekday_names" // 7 comma-separated names, Sunday first
)

// -----------------------------------------------------------------------------
// Marker Sources: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	SourceModeWeb   = "web"
	SourceModeLocal = "local"

	PropSummary = "SUMMARY"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultLeapYear = 2000 // Leap year fallback for dates like --02-29

	// ICalHeader opens an iCalendar stream; anything else is read as vCard.
	ICalHeader  = "BEGIN:VCALENDAR"
	SniffLength = 64

	// MarkerWindowYears is how many years before and after the current one
	// recurring markers are generated for.
	MarkerWindowYears = 1

	// MaxCardErrors stops vCard decoding after that many consecutive
	// unreadable cards.
	MaxCardErrors = 100

	FallbackMarkerTitle = "Untitled"
	FormatBirthdayTitle = "Birthday: %s"

	FormatBirthdayAgeTitle = "%s turns %d"
)

// Date layouts used for parsing vCard BDAY fields.
const (
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
	DateFormatDisplay   = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 32 * 1024 * 1024 // 32MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	HeaderUserAgent     = "User-Agent"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	AcceptFeeds         = "text/calendar, text/vcard, text/x-vcard;q=0.9, */*;q=0.1"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrUnsupportedGranularity = "unsupported page granularity"
	ErrWeekStart              = "week start must be between 0 and 6"
	ErrPagerMissing           = "calendar is not attached to a pager"
	ErrOptionsRead            = "failed to read options file"
	ErrOptionsParse           = "failed to parse options file"
	ErrOptionsDate            = "invalid date in options file"
	ErrOptionsWatch           = "failed to watch options file"
	ErrPageBuffer             = "page-buffer must not be negative"
	ErrBoundsOrder            = "min-date is after max-date"
	ErrRefreshInterval        = "markers refresh-minutes must not be negative"
	ErrLocalPathEmpty         = "configuration error: local path is empty"
	ErrWebURLEmpty            = "configuration error: web URL is empty"
	ErrFetcherMissing         = "internal error: network fetcher is not initialized"
	ErrModeUnsupport          = "configuration error: unsupported source mode"
	ErrInvalidURL             = "invalid URL structure"
	ErrProtocol               = "unsupported protocol scheme (http/https only)"
	ErrRequestCreate          = "failed to create request"
	ErrNetwork                = "network error during fetch"
	ErrHTTPStatus             = "server returned unexpected status"
	ErrICalParse              = "failed to parse iCalendar stream"
	ErrVCardParse             = "failed to parse vCard stream"
	ErrDateParse              = "unable to parse date"
	ErrLogFile                = "failed to open log file"
	ErrCacheDir               = "could not determine user cache dir"
	ErrCreateDir              = "could not create app cache dir"
	ErrAppFailed              = "application failed unexpectedly"
	ErrLocalesAccess          = "failed to access embedded locales"
	ErrLocaleLoad             = "failed to load locale file"
	ErrColorEmpty             = "empty color value"
	ErrFeedTooLarge           = "marker feed exceeds the size limit"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgPageJump       = "External date changed, jumping to page"
	MsgPageJumpSkip   = "External date already displayed"
	MsgPageSettled    = "Page settled"
	MsgBoundsUpdated  = "Page bounds recomputed"
	MsgThemeUpdated   = "Theme changed"
	MsgOptionsLoaded  = "Options file loaded"
	MsgOptionsChanged = "Options file changed"
	MsgMarkersLoaded  = "Markers loaded"
	MsgFetchStart     = "Initiating marker feed download"
	MsgFetchStatus    = "Server returned error status"
	MsgFetchDownload  = "Marker feed downloading"
	MsgSkippedRule    = "Ignoring unreadable recurrence rule"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedEvent   = "Skipping event without start date"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgPassFail       = "Password retrieval failed (might be empty)"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgUnknownColor   = "Unknown theme color, using fallback"
	MsgAgendaUpdated  = "Agenda updated"
	MsgOptionsApplied = "Options applied"
	MsgMarkersFailed  = "Marker loading failed"
	MsgWorkerStart    = "Background worker started"
	MsgWorkerStop     = "Background worker stopping"
	MsgWorkerInterval = "Marker refresh interval changed"
	MsgPassSaved      = "Feed password stored in keyring"
	MsgPassSaveFail   = "Failed to store feed password"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent   = "component"
	LogKeyError       = "error"
	LogKeyURL         = "url"
	LogKeyStatus      = "status_code"
	LogKeyFile        = "file"
	LogKeyLang        = "lang"
	LogKeyKey         = "key"
	LogKeyMode        = "mode"
	LogKeyUser        = "user"
	LogKeyValue       = "value"
	LogKeyCount       = "count"
	LogKeyPage        = "page"
	LogKeyCommitted   = "committed_page"
	LogKeyDate        = "date"
	LogKeyMin         = "min_page"
	LogKeyMax         = "max_page"
	LogKeyGranularity = "granularity"
	LogKeyAnimated    = "animated"
	LogKeyDuration    = "duration_ms"
	LogKeyContentLen  = "content_length"
	LogKeyContentType = "content_type"
	LogKeyInterval    = "interval"
	LogKeyOld         = "old"
	LogKeyNew         = "new"

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
	CompCalendar = "calendar"
	CompPager    = "pager"
	CompMarkers  = "markers"
	CompFetcher  = "fetcher"
	CompSettings = "settings"
	CompUI       = "ui"
	CompMain     = "main"
	CompI18n     = "i18n"
	CompWorker   = "worker"
)
