package trainer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/recorder"
)

// Result describes how a training run ended.
type Result int

const (
	Running Result = iota
	Finished
	Aborted
)

// Options configures a Model.
type Options struct {
	Clock                func() time.Time
	Notifier             *Notifier
	TimeLayout           string
	ArousalCheckInterval int
	DarkTheme            bool
}

type tickMsg time.Time

// Model is the bubbletea model for a live session.
type Model struct {
	rec         *recorder.Recorder
	sched       *Scheduler
	notifier    *Notifier
	now         func() time.Time
	session     *models.Session
	unsubscribe func()
	styles      styles
	def         level.Definition
	timeLayout  string
	edgeID      string
	help        help.Model
	progress    progress.Model
	result      Result
	prompting   bool
}

// New starts a session at def on rec and returns the model driving it.
func New(rec *recorder.Recorder, def level.Definition, opts Options) (*Model, error) {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	layout := opts.TimeLayout
	if layout == "" {
		layout = "03:04:05 PM"
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = NewNotifier(def, false, nil)
	}

	sess, err := rec.Start(def.ID)
	if err != nil {
		return nil, err
	}

	m := &Model{
		rec:        rec,
		sched:      NewScheduler(def, opts.ArousalCheckInterval, sess.StartTime),
		notifier:   notifier,
		now:        now,
		styles:     newStyles(opts.DarkTheme),
		def:        def,
		timeLayout: layout,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient()),
	}

	m.unsubscribe = rec.Subscribe(notifier.Listen)

	return m, nil
}

// Result reports how the run ended.
func (m *Model) Result() Result {
	return m.result
}

// Session returns the finished session, or nil unless the run Finished.
func (m *Model) Session() *models.Session {
	return m.session
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

// logErr records recorder failures. They are not fatal to the run.
func logErr(action string, err error) {
	if err != nil {
		slog.Error(action+" failed", slog.Any("error", err))
	}
}

func (m *Model) handleTick() tea.Cmd {
	if m.result != Running {
		return nil
	}

	step := m.sched.Tick(m.now())

	if step.Changed {
		logErr("add phase", m.rec.AddPhase(step.Phase))
	}

	if step.ArousalDue {
		m.prompting = true
		m.notifier.ArousalDue()
	}

	return tick()
}

func (m *Model) startEdge() {
	if m.edgeID != "" {
		return
	}

	id, err := m.rec.StartEdge()
	if err != nil {
		logErr("start edge", err)
		return
	}

	m.edgeID = id

	logErr("add phase", m.rec.AddPhase(models.Edge))
	m.sched.BeginEdge(m.now())
}

func (m *Model) endEdge(outcome models.Outcome) {
	if m.edgeID == "" {
		return
	}

	logErr("end edge", m.rec.EndEdge(m.edgeID, outcome))
	m.edgeID = ""

	m.sched.EndEdge(m.now())
	logErr("add phase", m.rec.AddPhase(m.sched.Phase()))
}

func (m *Model) recordArousal(value float64) {
	if err := m.rec.RecordArousal(value); err != nil {
		logErr("record arousal", err)
		return
	}

	m.prompting = false
	m.sched.ArousalRecorded(m.now())
}

func (m *Model) finish() tea.Cmd {
	m.unsubscribe()

	sess, err := m.rec.End()
	if err != nil {
		logErr("end session", err)
		m.result = Aborted

		return tea.Quit
	}

	m.session = sess
	m.result = Finished

	return tea.Quit
}

func (m *Model) abort() tea.Cmd {
	m.unsubscribe()
	m.rec.Discard()
	m.result = Aborted

	return tea.Quit
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	slog.Debug(spew.Sdump(msg))

	if m.result != Running {
		return nil
	}

	switch {
	case key.Matches(msg, defaultKeymap.abort):
		return m.abort()
	case key.Matches(msg, defaultKeymap.finish):
		return m.finish()
	case key.Matches(msg, defaultKeymap.edge):
		m.startEdge()
	case key.Matches(msg, defaultKeymap.climax):
		m.endEdge(models.Climax)
	case key.Matches(msg, defaultKeymap.ejaculated):
		m.endEdge(models.Ejaculated)
	case key.Matches(msg, defaultKeymap.arousal):
		if v, ok := arousalValue(msg.String()); ok {
			m.recordArousal(v)
		}
	}

	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.handleTick()

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	return m, nil
}
