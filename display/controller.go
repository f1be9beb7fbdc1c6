package display

import "errors"

// ClipboardWriter receives copy-to-clipboard payloads.
type ClipboardWriter interface {
	WriteText(text string) error
}

// Controller replays page interactions: toggle events recompute the view
// from scratch, clicks copy a codepoint.
type Controller struct {
	state State
	clip  ClipboardWriter
}

func NewController(clip ClipboardWriter) *Controller {
	return &Controller{clip: clip}
}

// Toggle applies one checkbox change and returns the resulting view.
// An unknown toggle leaves the state untouched.
func (c *Controller) Toggle(t Toggle, on bool) (View, error) {
	next, err := c.state.Set(t, on)
	if err != nil {
		return c.state.View(), err
	}
	c.state = next
	return c.state.View(), nil
}

// Click copies hexcode, the payload of the clicked tile.
func (c *Controller) Click(hexcode string) error {
	if hexcode == "" {
		return errors.New("click: empty payload")
	}
	if c.clip == nil {
		return errors.New("click: no clipboard")
	}
	return c.clip.WriteText(hexcode)
}

func (c *Controller) State() State { return c.state }

func (c *Controller) View() View { return c.state.View() }
