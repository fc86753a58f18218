package cli

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/valueview/internal/config"
	"github.com/ja-he/valueview/internal/control"
	"github.com/ja-he/valueview/internal/control/action"
	"github.com/ja-he/valueview/internal/i18n"
	"github.com/ja-he/valueview/internal/input"
	"github.com/ja-he/valueview/internal/input/processors"
	"github.com/ja-he/valueview/internal/model"
	"github.com/ja-he/valueview/internal/potatolog"
	"github.com/ja-he/valueview/internal/rotator"
	"github.com/ja-he/valueview/internal/rotator/extender"
	"github.com/ja-he/valueview/internal/styling"
	"github.com/ja-he/valueview/internal/tui"
	"github.com/ja-he/valueview/internal/ui"
	"github.com/ja-he/valueview/internal/ui/panes"
)

const maxTitleWidth = 20

// ControllerOptions are what a Controller is constructed from.
type ControllerOptions struct {
	Config     config.Config
	Stylesheet styling.Stylesheet
	Labels     *i18n.Provider
	Rtl        bool
	Data       *control.ControlData
	Renderer   *tui.ScreenHandler

	// Scheduler schedules the rotators' animation frames. If nil, frames are
	// run on the controller's loop.
	Scheduler rotator.Scheduler
}

// Controller is the struct for the TUI controller.
//
// All UI state, including the rotators, is only ever accessed from the loop
// in Run; timers post their callbacks into that loop.
type Controller struct {
	data     *control.ControlData
	rootPane *panes.RootPane

	rotatorPanes []rotatorPane
	extenders    []destroyable

	controllerEvents chan controllerEvent
	callbacks        chan func()
	done             chan struct{}

	lastFrame   time.Time
	lastButtons tcell.ButtonMask

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

type rotatorPane interface {
	ui.Pane
	Hover(x, y int)
	MenuShown() bool
	HasFocus() bool
}

type destroyable interface {
	Destroy()
}

// rotatorEnv is what all rotator panes are set up with.
type rotatorEnv struct {
	renderer   *tui.ScreenHandler
	stylesheet styling.Stylesheet
	cursor     ui.CursorLocationRequestHandler
	labels     rotator.LabelProvider
	isRtl      func() bool
	titleWidth int

	rotatorKeys map[input.Keyspec]input.Actionspec
	menuKeys    map[input.Keyspec]input.Actionspec

	animation rotator.AnimationOptions
	menu      rotator.MenuOptions
	scheduler rotator.Scheduler
	onFrame   func()

	dimensions func(row int) func() (x, y, w, h int)
}

// rotatorSetup describes a single rotator and the value it edits.
type rotatorSetup[V comparable] struct {
	title    string
	values   []rotator.Item[V]
	onChange func(*V)
	upstream func() *rotator.Item[V]

	// explicit reports whether the upstream value was chosen explicitly, in
	// which case the rotator does not start out as "auto".
	explicit bool

	// afterReconcile is called after the rotator was reconciled with the
	// upstream value before each draw.
	afterReconcile func(*rotator.Widget[V])
}

func newRotatorPane[V comparable](env rotatorEnv, row int, s rotatorSetup[V]) (*panes.RotatorPane[V], *extender.Listrotator[V], error) {
	opts := rotator.DefaultOptions[V](nil, env.labels)
	opts.Animation = env.animation
	opts.Menu = env.menu
	opts.IsRtl = env.isRtl
	opts.Scheduler = env.scheduler
	opts.OnFrame = env.onFrame

	l, err := extender.New(s.values, s.onChange, s.upstream, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not construct rotator '%s': %w", s.title, err)
	}
	w := l.Rotator

	rotatorTree, err := input.ConstructInputTreeFromConfig(env.rotatorKeys, rotatorActions(w))
	if err != nil {
		return nil, nil, fmt.Errorf("could not construct input tree for rotator '%s' (%w)", s.title, err)
	}
	menuTree, err := input.ConstructInputTreeFromConfig(env.menuKeys, menuActions(w))
	if err != nil {
		return nil, nil, fmt.Errorf("could not construct input tree for menu of rotator '%s' (%w)", s.title, err)
	}

	dimensions := env.dimensions(row)
	p := panes.NewRotatorPane[V](
		ui.NewConstrainedRenderer(env.renderer, dimensions),
		env.renderer,
		dimensions,
		env.stylesheet,
		func() string { return s.title },
		env.titleWidth,
		env.isRtl,
		processors.NewModalInputProcessor(rotatorTree),
		menuTree,
		env.cursor,
	)

	l.Init(p)
	if s.explicit {
		l.Draw()
		w.Activate(nil)
	}
	p.BeforeDraw(func() {
		l.Draw()
		if s.afterReconcile != nil {
			s.afterReconcile(w)
		}
	})
	return p, l, nil
}

func rotatorActions[V comparable](w *rotator.Widget[V]) action.Set {
	return action.Set{
		"prev":        action.NewSimple(action.Static("rotate to previous value"), w.Prev),
		"next":        action.NewSimple(action.Static("rotate to next value"), w.Next),
		"toggle-menu": action.NewSimple(action.Static("toggle menu"), w.ToggleMenu),
		"auto":        action.NewSimple(action.Static("select auto"), w.SelectAuto),
		"toggle-disabled": action.NewSimple(action.Static("toggle disabled"), func() {
			if w.Disabled() {
				w.Enable()
			} else {
				w.Disable()
			}
		}),
	}
}

func menuActions[V comparable](w *rotator.Widget[V]) action.Set {
	return action.Set{
		"menu-down":   action.NewSimple(action.Static("focus next menu entry"), func() { w.Menu().FocusNext() }),
		"menu-up":     action.NewSimple(action.Static("focus previous menu entry"), func() { w.Menu().FocusPrev() }),
		"menu-select": action.NewSimple(action.Static("select focussed menu entry"), w.SelectFocussed),
		"menu-close":  action.NewSimple(action.Static("close menu"), w.HideMenu),
	}
}

// partitionKeys splits key mappings into those for the given (global) actions
// and the rest.
func partitionKeys(
	spec map[input.Keyspec]input.Actionspec,
	global action.Set,
) (globalSpec, localSpec map[input.Keyspec]input.Actionspec) {
	globalSpec = map[input.Keyspec]input.Actionspec{}
	localSpec = map[input.Keyspec]input.Actionspec{}
	for keyspec, actionspec := range spec {
		if _, ok := global[string(actionspec)]; ok {
			globalSpec[keyspec] = actionspec
		} else {
			localSpec[keyspec] = actionspec
		}
	}
	return globalSpec, localSpec
}

// NewController creates a new Controller.
func NewController(opts ControllerOptions) (*Controller, error) {
	controller := Controller{
		data:             opts.Data,
		controllerEvents: make(chan controllerEvent, 32),
		callbacks:        make(chan func(), 64),
		done:             make(chan struct{}),
	}
	renderer := opts.Renderer
	stylesheet := opts.Stylesheet
	labels := opts.Labels

	screenDimensions := renderer.Dimensions
	statusDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX, screenY + screenH - 1, screenW, 1
	}
	perfDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX, screenY + screenH - 4, screenW, 3
	}
	logDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX, screenY, screenW, screenH - 1
	}
	helpDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX + 2, screenY + 1, screenW - 4, screenH - 3
	}
	rotatorDimensions := func(row int) func() (x, y, w, h int) {
		return func() (x, y, w, h int) {
			screenX, screenY, screenW, _ := screenDimensions()
			return screenX + 1, screenY + 1 + 2*row, screenW - 2, 1
		}
	}

	isRtl := rotator.RTL(opts.Rtl)
	animation, err := opts.Config.Rotator.AnimationOptions()
	if err != nil {
		return nil, err
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = rotator.NewLoopScheduler(controller.callbacks, controller.done)
	}
	cursorWrangler := ui.NewCursorWrangler(renderer)

	var helpPane *panes.HelpPane
	globalActions := action.Set{
		"focus-next": action.NewSimple(action.Static("focus next rotator"), func() { controller.rootPane.FocusNext() }),
		"focus-prev": action.NewSimple(action.Static("focus previous rotator"), func() { controller.rootPane.FocusPrev() }),
		"toggle-help": action.NewSimple(action.Static("toggle help"), func() {
			if !controller.data.ShowHelp {
				helpPane.Content = controller.rootPane.GetHelp()
			}
			controller.data.ShowHelp = !controller.data.ShowHelp
		}),
		"toggle-log":  action.NewSimple(action.Static("toggle log"), func() { controller.data.ShowLog = !controller.data.ShowLog }),
		"toggle-perf": action.NewSimple(action.Static("toggle debug perf pane"), func() { controller.data.ShowDebug = !controller.data.ShowDebug }),
		"quit":        action.NewSimple(action.Static("exit program"), func() { controller.controllerEvents <- controllerEventExit }),
	}
	globalKeys, rotatorKeys := partitionKeys(opts.Config.Keys.Rotator, globalActions)

	precisionTitle := labels.MsgOrString("valueview-field-precision", "precision")
	calendarTitle := labels.MsgOrString("valueview-field-calendar", "calendar")
	titles := []string{precisionTitle, calendarTitle}
	for _, list := range opts.Config.Lists {
		titles = append(titles, list.Name)
	}
	titleWidth := 0
	for _, title := range titles {
		titleWidth = max(titleWidth, runewidth.StringWidth(title))
	}
	titleWidth = min(titleWidth+1, maxTitleWidth)

	env := rotatorEnv{
		renderer:    renderer,
		stylesheet:  stylesheet,
		cursor:      cursorWrangler,
		labels:      labels,
		isRtl:       isRtl,
		titleWidth:  titleWidth,
		rotatorKeys: rotatorKeys,
		menuKeys:    opts.Config.Keys.Menu,
		animation:   animation,
		menu:        opts.Config.Rotator.MenuOptions(),
		scheduler:   scheduler,
		onFrame:     controller.recordFrame,
		dimensions:  rotatorDimensions,
	}

	var rotatorPanes []ui.Pane

	// precision: the parsed precision is the "auto" one and may not be one of
	// the rotatable precisions, in which case it is shown as a custom entry
	precisionLabel := func(p model.Precision) string { return labels.MsgOrString(p.MessageKey(), p.String()) }
	precisionItems := make([]rotator.Item[model.Precision], 0)
	for _, p := range model.RotatablePrecisions() {
		precisionItems = append(precisionItems, rotator.Item[model.Precision]{Value: p, Label: precisionLabel(p)})
	}
	precisionPane, precisionRotator, err := newRotatorPane(env, len(rotatorPanes), rotatorSetup[model.Precision]{
		title:  precisionTitle,
		values: precisionItems,
		onChange: func(p *model.Precision) {
			if p == nil {
				controller.data.Value.Precision = controller.data.ParsedPrecision
			} else {
				controller.data.Value.Precision = *p
			}
			log.Debug().Str("precision", controller.data.Value.Precision.String()).Msg("precision changed")
		},
		upstream: func() *rotator.Item[model.Precision] {
			p := controller.data.Value.Precision
			return &rotator.Item[model.Precision]{Value: p, Label: precisionLabel(p), Custom: !p.Rotatable()}
		},
	})
	if err != nil {
		return nil, err
	}
	controller.rotatorPanes = append(controller.rotatorPanes, precisionPane)
	controller.extenders = append(controller.extenders, precisionRotator)
	rotatorPanes = append(rotatorPanes, precisionPane)

	// calendar: while set to "auto", the calendar the value is shown in
	calendarLabel := func(c model.Calendar) string { return labels.MsgOrString(c.MessageKey(), c.String()) }
	calendarItems := make([]rotator.Item[model.Calendar], 0)
	for _, c := range model.Calendars() {
		calendarItems = append(calendarItems, rotator.Item[model.Calendar]{Value: c, Label: calendarLabel(c)})
	}
	calendarPane, calendarRotator, err := newRotatorPane(env, len(rotatorPanes), rotatorSetup[model.Calendar]{
		title:  calendarTitle,
		values: calendarItems,
		onChange: func(c *model.Calendar) {
			if c == nil {
				controller.data.Value.Calendar = nil
			} else {
				calendar := *c
				controller.data.Value.Calendar = &calendar
			}
			log.Debug().Str("calendar", controller.data.Value.EffectiveCalendar().String()).Bool("auto", c == nil).Msg("calendar changed")
		},
		upstream: func() *rotator.Item[model.Calendar] {
			if controller.data.Value.Calendar == nil {
				return nil
			}
			c := *controller.data.Value.Calendar
			return &rotator.Item[model.Calendar]{Value: c, Label: calendarLabel(c)}
		},
		explicit: controller.data.Value.Calendar != nil,
		afterReconcile: func(w *rotator.Widget[model.Calendar]) {
			if w.AutoActive() && !w.Animating() {
				w.SetValue(controller.data.Value.EffectiveCalendar())
			}
		},
	})
	if err != nil {
		return nil, err
	}
	controller.rotatorPanes = append(controller.rotatorPanes, calendarPane)
	controller.extenders = append(controller.extenders, calendarRotator)
	rotatorPanes = append(rotatorPanes, calendarPane)

	// configured lists
	for _, list := range opts.Config.Lists {
		name := list.Name
		items := list.Items(labels)
		if len(items) == 0 {
			log.Warn().Str("list", name).Msg("ignoring list without values")
			continue
		}
		_, explicit := controller.data.Lists[name]
		listPane, listRotator, err := newRotatorPane(env, len(rotatorPanes), rotatorSetup[string]{
			title:  name,
			values: items,
			onChange: func(v *string) {
				if v == nil {
					delete(controller.data.Lists, name)
				} else {
					controller.data.Lists[name] = *v
				}
				log.Debug().Str("list", name).Interface("value", v).Msg("list value changed")
			},
			upstream: func() *rotator.Item[string] {
				v, ok := controller.data.Lists[name]
				if !ok {
					return nil
				}
				for _, item := range items {
					if item.Value == v {
						return &item
					}
				}
				return &rotator.Item[string]{Value: v, Label: v, Custom: true}
			},
			explicit: explicit,
		})
		if err != nil {
			return nil, err
		}
		controller.rotatorPanes = append(controller.rotatorPanes, listPane)
		controller.extenders = append(controller.extenders, listRotator)
		rotatorPanes = append(rotatorPanes, listPane)
	}

	perfPane := panes.NewPerfPane(
		ui.NewConstrainedRenderer(renderer, perfDimensions),
		perfDimensions,
		stylesheet,
		func() bool { return controller.data.ShowDebug },
		&controller.data.RenderTimes,
		&controller.data.EventProcessingTimes,
		&controller.data.FrameIntervals,
	)
	mainPane := panes.NewWrapperPane(
		append(append([]ui.Pane{}, rotatorPanes...), perfPane),
		rotatorPanes,
		processors.NewModalInputProcessor(input.EmptyTree()),
	)

	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(renderer, statusDimensions),
		statusDimensions,
		stylesheet,
		controller.data.Summary,
		controller.mode,
	)
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(renderer, logDimensions),
		logDimensions,
		stylesheet,
		func() bool { return controller.data.ShowLog },
		func() string { return "LOG" },
		potatolog.GlobalMemoryLogReaderWriter,
	)
	closeHelp := action.NewSimple(action.Static("close help"), func() { controller.data.ShowHelp = false })
	helpPaneInputTree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"?":     closeHelp,
			"<esc>": closeHelp,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for help pane (%w)", err)
	}
	helpPane = panes.NewHelpPane(
		ui.NewConstrainedRenderer(renderer, helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return controller.data.ShowHelp },
		processors.NewModalInputProcessor(helpPaneInputTree),
	)

	rootPaneInputTree, err := input.ConstructInputTreeFromConfig(globalKeys, globalActions)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for root pane (%w)", err)
	}
	controller.rootPane = panes.NewRootPane(
		renderer,
		cursorWrangler,
		screenDimensions,
		mainPane,
		statusPane,
		logPane,
		helpPane,
		processors.NewModalInputProcessor(rootPaneInputTree),
	)

	controller.screenEvents = renderer.GetEventPollable()
	controller.initializedScreen = renderer
	controller.syncer = renderer

	log.Debug().Int("rotators", len(controller.rotatorPanes)).Bool("rtl", opts.Rtl).Str("lang", labels.Language().String()).Msg("created controller")
	return &controller, nil
}

// mode describes what input currently goes to, for the status bar.
func (c *Controller) mode() string {
	switch {
	case c.data.ShowHelp:
		return "-- HELP --"
	case c.data.ShowLog:
		return "-- LOG --"
	}
	for _, p := range c.rotatorPanes {
		if p.HasFocus() && p.MenuShown() {
			return "-- MENU --"
		}
	}
	return "-- NORMAL --"
}

func (c *Controller) recordFrame() {
	now := time.Now()
	if !c.lastFrame.IsZero() && now.Sub(c.lastFrame) < time.Second {
		c.data.FrameIntervals.Add(uint64(now.Sub(c.lastFrame).Microseconds()))
	}
	c.lastFrame = now
}

func (c *Controller) handleScreenEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		c.data.MouseMode = false

		key := input.KeyFromTcellEvent(e)
		inputApplied := c.rootPane.ProcessInput(key)
		if !inputApplied {
			log.Warn().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		c.handleMouseEvent(e)

	case *tcell.EventResize:
		c.syncer.NeedsSync()
	}
}

func (c *Controller) handleMouseEvent(e *tcell.EventMouse) {
	c.data.MouseMode = true

	// get new position
	x, y := e.Position()
	c.data.CursorPos.X, c.data.CursorPos.Y = x, y

	for _, p := range c.rotatorPanes {
		p.Hover(x, y)
	}

	// tcell reports held buttons on every motion, only the press is a click
	buttons := e.Buttons()
	pressed := buttons&tcell.Button1 != 0 && c.lastButtons&tcell.Button1 == 0
	c.lastButtons = buttons
	if !pressed {
		return
	}

	switch positionInfo := c.rootPane.GetPositionInfo(x, y).(type) {
	case *ui.RotatorPanePositionInfo:
		if !positionInfo.Click() {
			log.Trace().Int("x", x).Int("y", y).Msg("click on rotator pane hit no rotator")
		}
	}
	rotator.DispatchDocumentClick(x, y)
}

func (c *Controller) render() {
	start := time.Now()
	c.rootPane.Draw()
	c.data.RenderTimes.Add(uint64(time.Since(start).Microseconds()))
}

func (c *Controller) destroy() {
	for _, e := range c.extenders {
		e.Destroy()
	}
	c.extenders = nil
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Empties all controller events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyControllerEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the TUI until it is exited.
//
// Screen events and animation frames are processed one at a time, each
// followed by a render.
func (c *Controller) Run() {
	log.Info().Msg("valueview TUI started")
	defer c.initializedScreen.Fini()
	defer c.destroy()
	defer close(c.done)

	// Run the event polling loop, that forwards screen events to the main loop.
	screenEvents := make(chan tcell.Event)
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				return
			}
			select {
			case screenEvents <- ev:
			case <-c.done:
				return
			}
		}
	}()

	c.render()
	for {
		select {
		case ev := <-screenEvents:
			start := time.Now()
			c.handleScreenEvent(ev)
			c.data.EventProcessingTimes.Add(uint64(time.Since(start).Microseconds()))

		case f := <-c.callbacks:
			f()

		case controllerEvent := <-c.controllerEvents:
			if controllerEvent == controllerEventExit {
				return
			}
		}

		if emptyControllerEvents(c.controllerEvents) {
			return
		}
		c.render()
	}
}
