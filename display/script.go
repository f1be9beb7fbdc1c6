package display

// Control describes one checkbox rendered on the page.
type Control struct {
	Toggle  Toggle `json:"toggle"`
	Wrapper string `json:"-"` // id of the positioned wrapper
	Input   string `json:"input"`
	Label   string `json:"-"`
}

// Controls lists the page checkboxes in display order.
func Controls() []Control {
	return []Control{
		{Toggle: ToggleSystem, Wrapper: "systemToggle", Input: "systemCheckbox", Label: "Toggle System Emojis"},
		{Toggle: ToggleFont, Wrapper: "fontToggle", Input: "fontCheckbox", Label: "Toggle OpenMoji Font"},
		{Toggle: ToggleBlack, Wrapper: "blackToggle", Input: "blackCheckbox", Label: "Toggle Black Emojis"},
		{Toggle: ToggleMode, Wrapper: "backgroundToggle", Input: "modeCheckbox", Label: "Toggle Background Color"},
	}
}

// FontClasses maps the black toggle onto the system gallery class.
type FontClasses struct {
	Black string `json:"black"`
	Color string `json:"color"`
}

// Script is the data the embedded page script is parameterized with.
type Script struct {
	Rules       []Rule      `json:"rules"`
	Fallback    Gallery     `json:"fallback"`
	Galleries   []Gallery   `json:"galleries"`
	FontTarget  Gallery     `json:"font_target"`
	FontClasses FontClasses `json:"font_classes"`
	Controls    []Control   `json:"controls"`
}

func ScriptData() Script {
	return Script{
		Rules:       Rules,
		Fallback:    Fallback,
		Galleries:   Galleries(),
		FontTarget:  GallerySystem,
		FontClasses: FontClasses{Black: FontClassBlack, Color: FontClassColor},
		Controls:    Controls(),
	}
}
