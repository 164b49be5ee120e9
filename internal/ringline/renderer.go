package ringline

import "github.com/iburimskiy/linked-ring-to-line/internal/config"

// Listener receives sweep results. Either callback may be nil.
type Listener struct {
	OnComplete func(index int)
	OnReset    func(index int)
}

// Listeners combines several listeners into one that calls each in order.
func Listeners(ls ...Listener) Listener {
	return Listener{
		OnComplete: func(i int) {
			for _, l := range ls {
				if l.OnComplete != nil {
					l.OnComplete(i)
				}
			}
		},
		OnReset: func(i int) {
			for _, l := range ls {
				if l.OnReset != nil {
					l.OnReset(i)
				}
			}
		},
	}
}

// Renderer ties the chain to the ticker: every repaint draws the whole
// chain and, while the ticker runs, advances it by one step.
type Renderer struct {
	chain    *Chain
	ticker   *Ticker
	listener Listener
}

func NewRenderer(chain *Chain, ticker *Ticker) *Renderer {
	return &Renderer{chain: chain, ticker: ticker}
}

func (r *Renderer) SetListener(l Listener) { r.listener = l }

func (r *Renderer) Chain() *Chain   { return r.chain }
func (r *Renderer) Ticker() *Ticker { return r.ticker }

// Render is the draw entrypoint.
func (r *Renderer) Render(s Surface) {
	s.Fill(config.BackgroundColor)
	r.chain.Draw(s)
	r.ticker.Tick(r.step)
}

func (r *Renderer) step() {
	ev := r.chain.Advance()
	if ev.Kind != EventSettled {
		return
	}
	r.ticker.Stop()
	r.dispatch(ev)
}

func (r *Renderer) dispatch(ev Event) {
	switch {
	case ev.Reset():
		if r.listener.OnReset != nil {
			r.listener.OnReset(ev.Index)
		}
	case ev.Completed():
		if r.listener.OnComplete != nil {
			r.listener.OnComplete(ev.Index)
		}
	}
}

// HandleTap starts the current node. It is the only place the ticker is
// started.
func (r *Renderer) HandleTap() {
	if r.chain.Start().Kind == EventStarted {
		r.ticker.Start()
	}
}
