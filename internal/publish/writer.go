// internal/publish/writer.go
package publish

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tamzrod/octave-reader/internal/codec"
	"github.com/tamzrod/octave-reader/internal/format"
	"github.com/tamzrod/octave-reader/internal/meter"
	"github.com/tamzrod/octave-reader/internal/poller"
)

// statePayload is the JSON document published per reading.
type statePayload struct {
	Ts       int64  `json:"ts"`
	Meter    string `json:"meter"`
	Quantity string `json:"quantity"`
	Width    string `json:"width"`
	Value    any    `json:"value"`
	Text     string `json:"text"`
	Meaning  string `json:"meaning,omitempty"`
}

type stateWriter struct {
	plan Plan
	pub  Publisher
}

func New(plan Plan, pub Publisher) Writer {
	return &stateWriter{
		plan: plan,
		pub:  pub,
	}
}

// Write publishes one state message per reading.
// Failed cycles publish nothing; the status writer reports them.
func (w *stateWriter) Write(res poller.PollResult) error {
	if res.Err != nil {
		return nil
	}
	if w.pub == nil {
		return errors.New("publish: missing publisher")
	}

	var errs []string

	for _, r := range res.Readings {
		payload, err := json.Marshal(w.payload(res, r))
		if err != nil {
			errs = append(errs, fmt.Sprintf("quantity=%s marshal: %v", r.Function.Name, err))
			continue
		}

		topic := w.plan.StateTopic(r.Function.Name)
		if err := w.pub.Publish(topic, payload, w.plan.QoS, false); err != nil {
			errs = append(errs, fmt.Sprintf("topic=%s err=%v", topic, err))
		}
	}

	if len(errs) > 0 {
		return errors.New("publish: " + strings.Join(errs, " | "))
	}

	return nil
}

func (w *stateWriter) payload(res poller.PollResult, r meter.Reading) statePayload {
	p := statePayload{
		Ts:       res.At.Unix(),
		Meter:    w.plan.MeterID,
		Quantity: r.Function.Name,
		Width:    r.Function.Width.String(),
		Text:     format.Value(r.Function, r.Value),
	}

	switch v := r.Value.(type) {
	case codec.Sixteen:
		if r.Function.Count > 1 {
			p.Value = format.Serial(v)
			break
		}
		p.Value = v[0]
		if meaning, ok := format.Interpret(r.Function, v[0]); ok {
			p.Meaning = meaning
		}
	case codec.Signed32:
		p.Value = int32(v)
	case codec.Unsigned32:
		p.Value = uint32(v)
	case codec.Float64:
		// NaN and Inf have no JSON form; text still carries them.
		if f := float64(v); !math.IsNaN(f) && !math.IsInf(f, 0) {
			p.Value = f
		}
	}

	return p
}
