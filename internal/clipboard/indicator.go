package clipboard

import (
	"context"
	"time"
)

// CopiedWindow — сколько держится отметка "Copied!"
const CopiedWindow = 2 * time.Second

type State int

const (
	Idle State = iota
	JustCopied
)

func (s State) String() string {
	if s == JustCopied {
		return "copied"
	}
	return "idle"
}

// Indicator — отметка "скопировано" для одного блока кода.
//
// Два состояния и один отложенный переход JustCopied -> Idle.
// Каждое успешное копирование выдаёт новое поколение; Expire со старым
// поколением игнорируется, так что повторное копирование перезапускает окно,
// а не копит таймеры. Не потокобезопасен: живёт в одном цикле событий.
type Indicator struct {
	window   time.Duration
	now      func() time.Time
	state    State
	gen      uint64
	deadline time.Time
}

type Option func(*Indicator)

func WithClock(now func() time.Time) Option {
	return func(i *Indicator) { i.now = now }
}

func NewIndicator(window time.Duration, opts ...Option) *Indicator {
	if window <= 0 {
		window = CopiedWindow
	}
	ind := &Indicator{window: window, now: time.Now}
	for _, o := range opts {
		o(ind)
	}
	return ind
}

func (i *Indicator) Window() time.Duration { return i.window }

// Copy пишет text в sink как есть, без обрезки пробелов.
// При ошибке состояние не меняется, ошибку решает вызывающий.
func (i *Indicator) Copy(ctx context.Context, sink Sink, text string) (uint64, error) {
	if err := sink.Write(ctx, text); err != nil {
		return i.gen, err
	}
	i.gen++
	i.state = JustCopied
	i.deadline = i.now().Add(i.window)
	return i.gen, nil
}

// Expire — отложенный переход в Idle. true, если переход случился.
func (i *Indicator) Expire(gen uint64) bool {
	if gen != i.gen || i.state != JustCopied {
		return false
	}
	i.state = Idle
	return true
}

// State учитывает и дедлайн: если таймер не дошёл, окно всё равно закрыто.
func (i *Indicator) State() State {
	if i.state == JustCopied && !i.now().Before(i.deadline) {
		i.state = Idle
	}
	return i.state
}

func (i *Indicator) Copied() bool { return i.State() == JustCopied }
