package events

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"emojicatalog/display"
)

// Event is one page interaction: either a toggle change or a tile click.
type Event struct {
	Toggle display.Toggle `json:"toggle,omitempty"`
	On     bool           `json:"on,omitempty"`
	Click  string         `json:"click,omitempty"` // hexcode payload
}

func (e Event) validate() error {
	switch {
	case e.Toggle != "" && e.Click != "":
		return errors.New("event has both toggle and click")
	case e.Toggle == "" && e.Click == "":
		return errors.New("event has neither toggle nor click")
	}
	return nil
}

// Read consumes newline-delimited JSON events, emitting them onto out in
// order, and closes out when r is exhausted. Malformed lines are logged and
// skipped. Blank lines are ignored.
func Read(r io.Reader, out chan<- Event) {
	defer close(out)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			log.Warn().Err(err).Int("line", line).Msg("event parse")
			continue
		}
		if err := e.validate(); err != nil {
			log.Warn().Err(err).Int("line", line).Msg("event parse")
			continue
		}
		out <- e
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Msg("event scanner")
	}
}

// Result is the outcome of applying one event.
type Result struct {
	Event  Event        `json:"event"`
	View   display.View `json:"view"`
	Copied string       `json:"copied,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Apply feeds e to c.
func Apply(c *display.Controller, e Event) Result {
	res := Result{Event: e}
	var err error
	if e.Click != "" {
		if err = c.Click(e.Click); err == nil {
			res.Copied = e.Click
		}
		res.View = c.View()
	} else {
		res.View, err = c.Toggle(e.Toggle, e.On)
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
