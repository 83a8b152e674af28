package pattern

import (
	"github.com/callebjorkell/shimmer/internal/color"
	"math/rand"
	"time"
)

// Strip is the pixel buffer a Player draws on. Set must accept any index and resolve
// out-of-range values itself.
type Strip interface {
	Len() int
	Set(index int, c color.RGB)
	Flush() error
	Clear() error
}

// Player computes pattern frames and pushes them to a Strip in timed steps. A Player
// is not safe for concurrent use.
type Player struct {
	strip Strip
	sleep Sleeper
	rand  *rand.Rand
}

type Option func(*Player)

// WithSleeper replaces the timer used between frames.
func WithSleeper(s Sleeper) Option {
	return func(p *Player) {
		p.sleep = s
	}
}

// WithRand sets the random source used to pick shimmering pixels.
func WithRand(r *rand.Rand) Option {
	return func(p *Player) {
		p.rand = r
	}
}

func NewPlayer(s Strip, opts ...Option) *Player {
	p := &Player{
		strip: s,
		sleep: TimerSleeper{},
	}
	for _, o := range opts {
		o(p)
	}
	if p.rand == nil {
		p.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

func (p *Player) fill(c color.RGB) {
	for i := 0; i < p.strip.Len(); i++ {
		p.strip.Set(i, c)
	}
}
