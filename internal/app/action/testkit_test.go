package action

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cloudwego/hertz/pkg/protocol"

	"artifactsbot/internal/app/ports"
)

type timeline struct {
	mu      sync.Mutex
	entries []string
}

func (tl *timeline) add(format string, args ...any) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.entries = append(tl.entries, fmt.Sprintf(format, args...))
}

func (tl *timeline) snapshot() []string {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return append([]string(nil), tl.entries...)
}

// scriptedDoer answers the i-th call with bodies[i] (or errs[i] when set) and
// records the request bodies it saw.
type scriptedDoer struct {
	bodies []string
	errs   []error
	tl     *timeline
	hold   chan struct{}

	mu          sync.Mutex
	calls       []string
	inFlight    int32
	maxInFlight int32
}

func (d *scriptedDoer) Do(_ context.Context, req *protocol.Request, resp *protocol.Response) error {
	n := atomic.AddInt32(&d.inFlight, 1)
	defer atomic.AddInt32(&d.inFlight, -1)
	for {
		cur := atomic.LoadInt32(&d.maxInFlight)
		if n <= cur || atomic.CompareAndSwapInt32(&d.maxInFlight, cur, n) {
			break
		}
	}

	d.mu.Lock()
	i := len(d.calls)
	d.calls = append(d.calls, string(req.Body()))
	d.mu.Unlock()
	if d.tl != nil {
		d.tl.add("exec:%s", string(req.Body()))
	}
	if d.hold != nil {
		<-d.hold
	}
	time.Sleep(time.Millisecond)

	if i < len(d.errs) && d.errs[i] != nil {
		return d.errs[i]
	}
	body := `{"data":{"cooldown":{"remaining_seconds":0}}}`
	if len(d.bodies) > 0 {
		if i < len(d.bodies) {
			body = d.bodies[i]
		} else {
			body = d.bodies[len(d.bodies)-1]
		}
	}
	resp.SetStatusCode(200)
	resp.SetBody([]byte(body))
	return nil
}

func (d *scriptedDoer) seen() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

func newTestRequest(label string) Request {
	req := protocol.NewRequest("POST", "http://game.test/my/alice/action/move", nil)
	req.SetBody([]byte(label))
	return NewRequest("Test", label, req)
}

type recordingSink struct {
	mu     sync.Mutex
	events []ports.Event
}

func (s *recordingSink) Emit(_ context.Context, evt ports.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) named(name string) []ports.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []ports.Event{}
	for _, evt := range s.events {
		if evt.Name == name {
			out = append(out, evt)
		}
	}
	return out
}

func (s *recordingSink) withSeverity(sev ports.Severity) []ports.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []ports.Event{}
	for _, evt := range s.events {
		if evt.Severity == sev {
			out = append(out, evt)
		}
	}
	return out
}

var errDialRefused = errors.New("dial tcp: connection refused")

func cooldownBody(seconds int) string {
	return fmt.Sprintf(`{"data":{"cooldown":{"total_seconds":%d,"remaining_seconds":%d,"reason":"movement"},"character":{"name":"alice"}}}`, seconds, seconds)
}

func errorBody(code int, message string) string {
	return fmt.Sprintf(`{"error":{"code":%d,"message":%q}}`, code, message)
}
