package galaxy

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/plus3/galaxy/ecs"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

type options struct {
	profile Profile
	rng     Random
	width   int
	height  int
	logger  *slog.Logger
}

// Option configures a Loop.
type Option func(*options)

// WithProfile selects the presentation profile. The default is Hero.
func WithProfile(p Profile) Option {
	return func(o *options) { o.profile = p }
}

// WithSeed makes the loop deterministic for seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = NewRandom(seed) }
}

// WithRandom injects the random source used for every draw.
func WithRandom(rng Random) Option {
	return func(o *options) { o.rng = rng }
}

// WithViewport sets the initial viewport size in pixels.
func WithViewport(width, height int) Option {
	return func(o *options) {
		o.width = max(width, 0)
		o.height = max(height, 0)
	}
}

// WithLogger overrides the package logger for this loop.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Loop owns the galaxy's entity store and the systems that animate and paint it.
type Loop struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	logger    *slog.Logger

	surface  *ecs.Singleton[Surface]
	viewport *ecs.Singleton[Viewport]
	pointer  *ecs.Singleton[Pointer]
	rotation *ecs.Singleton[Rotation]
	settings *ecs.Singleton[Settings]
	glass    *ecs.Singleton[GlassOverlay]
	clock    *ecs.Singleton[Clock]
	drawList *ecs.Singleton[DrawList]
}

// New creates a loop painting on canvas. A nil canvas, including a nil pointer
// wrapped in the interface, yields a dormant loop whose ticks do nothing.
func New(canvas Canvas, opts ...Option) *Loop {
	if isNilCanvas(canvas) {
		canvas = nil
	}
	o := options{
		profile: Hero,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newEntropyRandom()
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	registry := ecs.NewComponentRegistry()
	registerComponents(registry)
	storage := ecs.NewStorage(registry)

	vp := Viewport{Width: float64(o.width), Height: float64(o.height)}
	l := &Loop{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		logger:    o.logger.With("profile", o.profile.Name),
		surface:   ecs.NewSingleton(storage, Surface{Canvas: canvas}),
		viewport:  ecs.NewSingleton(storage, vp),
		pointer:   ecs.NewSingleton[Pointer](storage),
		rotation:  ecs.NewSingleton[Rotation](storage),
		settings:  ecs.NewSingleton(storage, Settings{Profile: o.profile}),
		glass:     ecs.NewSingleton[GlassOverlay](storage),
		clock:     ecs.NewSingleton[Clock](storage),
		drawList:  ecs.NewSingleton[DrawList](storage),
	}

	if canvas == nil {
		l.logger.Debug("no canvas, loop is dormant")
		return l
	}

	l.resizeCanvas(o.width, o.height)

	palette := o.profile.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	for range o.profile.Ornaments {
		storage.Spawn(NewOrnament(o.rng, palette), Placement{}, Projection{})
	}
	for range o.profile.Stars {
		storage.Spawn(NewStar(o.rng, vp))
	}

	l.scheduler.Register(&ClockSystem{})
	l.scheduler.Register(&RotationSystem{})
	l.scheduler.Register(&StarSystem{rng: o.rng})
	l.scheduler.Register(&OrbitSystem{})
	l.scheduler.Register(&DepthSortSystem{})
	l.scheduler.Register(&ProjectionSystem{})
	l.scheduler.Register(&RenderSystem{})
	l.scheduler.Register(&GlassSystem{})

	if o.profile.Glass != nil {
		l.AttachGlass(*o.profile.Glass)
	}

	l.logger.Info("galaxy created",
		"ornaments", o.profile.Ornaments,
		"stars", o.profile.Stars,
		"width", o.width,
		"height", o.height,
	)
	return l
}

func isNilCanvas(c Canvas) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (l *Loop) canvas() Canvas {
	return l.surface.Get().Canvas
}

// Active reports whether the loop has a canvas to paint on.
func (l *Loop) Active() bool {
	return l.canvas() != nil
}

func (l *Loop) resizeCanvas(width, height int) {
	if err := l.canvas().Resize(width, height); err != nil {
		l.logger.Warn("canvas resize failed", "width", width, "height", height, "error", err)
	}
}

// Resize records the new viewport size and resizes the canvas. The next tick
// recomputes the galaxy center from it.
func (l *Loop) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	*l.viewport.Get() = Viewport{Width: float64(width), Height: float64(height)}
	if l.Active() {
		l.resizeCanvas(width, height)
	}
}

// PointerMove records the pointer at (clientX, clientY) viewport pixels, normalized
// to [-1, 1]. It is ignored while the viewport has no area.
func (l *Loop) PointerMove(clientX, clientY float64) {
	vp := *l.viewport.Get()
	if vp.Width <= 0 || vp.Height <= 0 {
		l.logger.Debug("pointer ignored on empty viewport", "x", clientX, "y", clientY)
		return
	}
	*l.pointer.Get() = Pointer{
		X: clientX/vp.Width*2 - 1,
		Y: clientY/vp.Height*2 - 1,
	}
}

// AttachGlass lays the frosted panel over subsequent frames. It reports false and
// leaves the existing overlay untouched when one is already attached.
func (l *Loop) AttachGlass(style GlassStyle) bool {
	glass := l.glass.Get()
	if glass.Attached {
		return false
	}
	glass.Attached = true
	glass.Style = style
	l.logger.Info("glass overlay attached", "coverage", style.Coverage, "blur", style.Blur)
	return true
}

// GlassAttached reports whether the frosted panel is attached.
func (l *Loop) GlassAttached() bool {
	return l.glass.Get().Attached
}

// Tick runs one frame. dt is recorded by the clock but motion advances per tick.
func (l *Loop) Tick(dt float64) {
	if !l.Active() {
		return
	}
	l.scheduler.Once(dt)
}

// Run ticks every interval until ctx is cancelled. A dormant loop just waits.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	if !l.Active() {
		<-ctx.Done()
		return
	}
	l.logger.Debug("loop running", "interval", interval)
	l.scheduler.Run(ctx, interval)
	l.logger.Debug("loop stopped", "frames", l.Frame())
}

// Snapshot returns the ornaments painted by the last frame, in paint order.
func (l *Loop) Snapshot() []Projected {
	var out []Projected
	for _, d := range l.drawList.Get().Items {
		if !d.Projection.Visible {
			continue
		}
		out = append(out, Projected{
			Id:    d.Id,
			X:     d.Projection.X,
			Y:     d.Projection.Y,
			Scale: d.Projection.Scale,
			Z:     d.Placement.Z,
		})
	}
	return out
}

// Viewport returns the current viewport.
func (l *Loop) Viewport() Viewport { return *l.viewport.Get() }

// Pointer returns the last normalized pointer position.
func (l *Loop) Pointer() Pointer { return *l.pointer.Get() }

// Rotation returns the eased rotation state.
func (l *Loop) Rotation() Rotation { return *l.rotation.Get() }

// Profile returns the active profile.
func (l *Loop) Profile() Profile { return l.settings.Get().Profile }

// Frame returns the number of ticks run.
func (l *Loop) Frame() uint64 { return l.clock.Get().Frame }

// Storage exposes the entity store, for inspectors.
func (l *Loop) Storage() *ecs.Storage { return l.storage }

// Scheduler exposes the frame scheduler, for inspectors.
func (l *Loop) Scheduler() *ecs.Scheduler { return l.scheduler }

// Stats returns per-system timings.
func (l *Loop) Stats() *ecs.SchedulerStats { return l.scheduler.GetStats() }
