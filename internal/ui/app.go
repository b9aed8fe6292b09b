package ui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-swipecal/internal/calendar"
	"github.com/tartampluch/go-swipecal/internal/config"
	"github.com/tartampluch/go-swipecal/internal/markers"
	"github.com/tartampluch/go-swipecal/internal/pager"
	"github.com/tartampluch/go-swipecal/internal/settings"
	"github.com/zalando/go-keyring"
)

// SwipeCalApp is the demo application: a swipe calendar driven as a
// controlled component, decorated with markers from an optional feed.
type SwipeCalApp struct {
	App        fyne.App
	Window     fyne.Window
	Ctx        context.Context
	Translator *Translator

	Fetcher  markers.Fetcher
	Clock    calendar.Clock // Injected clock for testability
	Animator pager.Animator
	Render   Options

	Calendar *calendar.Calendar
	Pager    *pager.Pager
	View     *CalendarView
	Agenda   *Agenda
	Progress calendar.ProgressCell

	mu       sync.Mutex
	options  *settings.File
	current  time.Time
	selected time.Time

	configChan chan struct{}

	progressBar *widget.ProgressBar
	yearEntry   *YearEntry
	todayBtn    *widget.Button
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	credBtn     *widget.Button
}

// NewSwipeCalApp wires the application. Setup must run before the window
// is used; Run does it.
func NewSwipeCalApp(a fyne.App, ctx context.Context, opts *settings.File, fetcher markers.Fetcher) *SwipeCalApp {
	if opts == nil {
		opts = settings.Default()
	}
	return &SwipeCalApp{
		App:        a,
		Ctx:        ctx,
		Fetcher:    fetcher,
		Clock:      calendar.RealClock{}, // Default to real clock in production
		Animator:   NewAnimator(),
		options:    opts,
		configChan: make(chan struct{}, config.ChannelBufferSize),
	}
}

// Run builds the window, starts the marker worker and blocks in the UI loop.
func (app *SwipeCalApp) Run() {
	app.Setup()
	go app.backgroundWorker()
	app.Window.Show()
	app.App.Run()
}

// Setup creates the calendar, the pager and the window content.
func (app *SwipeCalApp) Setup() {
	app.mu.Lock()
	opts := app.options
	app.current = opts.CurrentDate.Time
	if app.current.IsZero() {
		app.current = app.Clock.Now()
	}
	app.selected = opts.SelectedDate.Time
	app.mu.Unlock()

	app.Translator = NewTranslator(opts.Language)

	app.Pager = pager.New(
		pager.WithAnimator(app.Animator),
		pager.WithBuffer(opts.PageBuffer),
		pager.WithGesturesDisabled(opts.GesturesDisabled),
	)
	app.Calendar = calendar.New(app.calendarOptions(), app.Clock)
	app.Calendar.Attach(app.Pager)
	app.View = NewCalendarView(app.Calendar, app.Pager, app.Render)
	app.Agenda = NewAgenda(app.Translator)

	app.Pager.OnFrame(func(float64) {
		if app.progressBar != nil {
			app.progressBar.SetValue(app.Progress.Load())
		}
	})

	app.Window = app.App.NewWindow(app.Translator.Msg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	app.Window.SetContent(app.buildContent())
	app.refreshAgenda()
}

func (app *SwipeCalApp) buildContent() fyne.CanvasObject {
	tr := app.Translator

	app.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		app.Calendar.DecrementPage()
	})
	app.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		app.Calendar.IncrementPage()
	})
	app.todayBtn = widget.NewButton(tr.Msg(config.TKeyBtnToday), func() {
		app.Calendar.SetPage(app.Clock.Now(), calendar.Animated(true))
	})
	app.credBtn = widget.NewButtonWithIcon(tr.Msg(config.TKeyBtnCredentials), theme.AccountIcon(), func() {
		app.ShowCredentialsDialog()
	})
	app.refreshCredentialsButton()

	app.yearEntry = NewYearEntry(app.JumpToYear)
	app.yearEntry.SetPlaceHolder(tr.Msg(config.TKeyLblYearJump))

	app.progressBar = widget.NewProgressBar()
	app.progressBar.Max = config.MonthsPerYear
	app.progressBar.TextFormatter = func() string {
		month := time.Month(int(app.progressBar.Value)%config.MonthsPerYear + 1)
		return app.Translator.Names().Format(time.Date(config.DefaultLeapYear, month, 1, 0, 0, 0, 0, time.Local), config.FormatMonthName)
	}
	app.progressBar.SetValue(app.Progress.Load())

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(app.prevBtn, app.todayBtn, app.nextBtn),
		app.credBtn,
		app.yearEntry,
	)

	// ScrollNone clips pages sliding in from the sides.
	pages := container.NewScroll(app.View)
	pages.Direction = container.ScrollNone

	bottom := container.NewVBox(
		widget.NewLabel(tr.Msg(config.TKeyLblProgress)),
		app.progressBar,
		app.Agenda.Content(),
	)
	return container.NewBorder(toolbar, bottom, nil, nil, pages)
}

// calendarOptions assembles the calendar configuration from the options
// file and the controlled state.
func (app *SwipeCalApp) calendarOptions() calendar.Options {
	app.mu.Lock()
	defer app.mu.Unlock()

	o := app.options.Options(calendar.Options{
		OnPageChange:  app.onPageChange,
		OnDateSelect:  app.onDateSelect,
		MonthProgress: &app.Progress,
	})
	o.CurrentDate = app.current
	o.SelectedDate = app.selected
	o.Names = app.Translator.Names()
	return o
}

// update runs a configuration pass and forwards the pager settings.
func (app *SwipeCalApp) update() {
	if app.View == nil {
		// Attach may settle a clamped page before the view exists.
		return
	}
	o := app.calendarOptions()
	app.Calendar.Update(o)
	app.Pager.SetBuffer(o.PageBuffer)
	app.Pager.SetGesturesDisabled(o.GesturesDisabled)
	app.View.Refresh()
}

// onPageChange keeps the controlled current date on the displayed page.
func (app *SwipeCalApp) onPageChange(firstDay time.Time) {
	app.mu.Lock()
	app.current = firstDay
	app.mu.Unlock()

	app.update()
	app.refreshAgenda()
}

// onDateSelect toggles the selection of date.
func (app *SwipeCalApp) onDateSelect(date time.Time, info calendar.SelectInfo) {
	app.mu.Lock()
	if info.IsSelected {
		app.selected = time.Time{}
	} else {
		app.selected = date
	}
	app.mu.Unlock()

	app.update()
}

// Current returns the controlled current date.
func (app *SwipeCalApp) Current() time.Time {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.current
}

// Selected returns the selected date, zero when none.
func (app *SwipeCalApp) Selected() time.Time {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.selected
}

// JumpToYear shows the same month and day in year.
func (app *SwipeCalApp) JumpToYear(year int) {
	cur := app.Current()
	app.Calendar.SetPage(time.Date(year, cur.Month(), cur.Day(), 0, 0, 0, 0, cur.Location()))
}

// ApplySettings installs a new version of the options file. It must run on
// the UI goroutine.
func (app *SwipeCalApp) ApplySettings(f *settings.File) {
	app.mu.Lock()
	prev := app.options
	app.options = f
	// Dates from the file are external changes only when they differ from
	// the previous version; otherwise swipes and taps since then stand.
	if !f.CurrentDate.IsZero() && !f.CurrentDate.Equal(prev.CurrentDate.Time) {
		app.current = f.CurrentDate.Time
	}
	if !f.SelectedDate.Equal(prev.SelectedDate.Time) {
		app.selected = f.SelectedDate.Time
	}
	app.mu.Unlock()

	slog.Info(config.MsgOptionsApplied,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyGranularity, f.Granularity.String(),
	)

	if f.Language != prev.Language {
		app.Translator.SetLanguage(f.Language)
		app.retranslate()
	}

	app.update()
	if f.Granularity != prev.Granularity || f.WeekStart != prev.WeekStart {
		// Page indices changed meaning; show the current date again.
		app.Calendar.SetPage(app.Current())
	}
	app.refreshAgenda()
	app.refreshCredentialsButton()

	select {
	case app.configChan <- struct{}{}:
	default:
	}

	app.App.SendNotification(fyne.NewNotification(config.AppName, app.Translator.Msg(config.TKeyNotifReloaded)))
}

// Options returns the options file in use.
func (app *SwipeCalApp) Options() *settings.File {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.options
}

func (app *SwipeCalApp) retranslate() {
	tr := app.Translator
	if app.Window != nil {
		app.Window.SetTitle(tr.Msg(config.TKeyWinTitle))
	}
	if app.todayBtn != nil {
		app.todayBtn.SetText(tr.Msg(config.TKeyBtnToday))
		app.credBtn.SetText(tr.Msg(config.TKeyBtnCredentials))
		app.yearEntry.SetPlaceHolder(tr.Msg(config.TKeyLblYearJump))
		app.progressBar.Refresh()
	}
	if app.Agenda != nil {
		app.Agenda.Retranslate()
	}
}

// refreshAgenda lists the markers of the committed page.
func (app *SwipeCalApp) refreshAgenda() {
	if app.Agenda == nil {
		return
	}
	page := app.Calendar.Page(app.Calendar.CommittedPage())
	app.Agenda.Show(app.View.Markers(), page.Start, page.End)
}

func (app *SwipeCalApp) refreshCredentialsButton() {
	if app.credBtn == nil {
		return
	}
	src := app.Options().Markers
	if src.Mode == config.SourceModeWeb && src.User != "" {
		app.credBtn.Enable()
	} else {
		app.credBtn.Disable()
	}
}

// markerSource assembles the marker source, reading the password from the
// OS keyring.
func (app *SwipeCalApp) markerSource() markers.Source {
	opts := app.Options()
	var pass string
	if user := opts.Markers.User; user != "" {
		if p, err := keyring.Get(config.KeyringService, user); err == nil {
			pass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyUser, user,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}
	return opts.Source(pass)
}

// backgroundWorker loads the markers and reloads them on schedule or when
// the options change.
func (app *SwipeCalApp) backgroundWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	app.loadMarkers()

	getInterval := func() time.Duration {
		if d := app.Options().RefreshInterval(); d > 0 {
			return d
		}
		return config.DefaultMarkerRefreshMinute * time.Minute
	}

	currentDuration := getInterval()
	ticker := time.NewTicker(currentDuration)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, currentDuration)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-app.configChan:
			if d := getInterval(); d != currentDuration {
				log.Info(config.MsgWorkerInterval, config.LogKeyOld, currentDuration, config.LogKeyNew, d)
				currentDuration = d
				ticker.Reset(currentDuration)
			}
			app.loadMarkers()

		case <-ticker.C:
			app.loadMarkers()
		}
	}
}

// loadMarkers reads the marker source and hands the result to the view.
// A disabled source clears the markers.
func (app *SwipeCalApp) loadMarkers() {
	src := app.markerSource()

	var set *markers.Set
	if src.Enabled() {
		loader := &markers.Loader{
			Clock:   app.Clock,
			Fetcher: app.Fetcher,
			Title:   app.Translator.BirthdayTitle,
		}
		var err error
		set, err = loader.Load(app.Ctx, src)
		if err != nil {
			slog.Error(config.MsgMarkersFailed,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyMode, src.Mode,
				config.LogKeyError, err,
			)
			app.App.SendNotification(fyne.NewNotification(config.AppName, app.Translator.Msg(config.TKeyNotifMarkerErr)))
			return
		}
	}

	fyne.Do(func() {
		app.View.SetMarkers(set)
		app.refreshAgenda()
	})
}
