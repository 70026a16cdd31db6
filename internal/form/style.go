package form

// #region palette
// The translucent fills and solid borders below come from the editor's
// fixed palette; each annotation type always renders in the same color.
const (
	blueMedium   = "rgba(0,122,255,1)"
	blueFill     = "rgba(0,122,255,0.2)"
	yellowMedium = "rgba(255,204,0,1)"
	yellowFill   = "rgba(255,204,0,0.2)"
	greenMedium  = "rgba(52,199,89,1)"
	greenFill    = "rgba(52,199,89,0.2)"
	purpleMedium = "rgba(175,82,222,1)"
	purpleFill   = "rgba(175,82,222,0.2)"
	tealMedium   = "rgba(48,176,199,1)"
	tealFill     = "rgba(48,176,199,0.2)"
	pinkMedium   = "rgba(255,45,85,1)"
	pinkFill     = "rgba(255,45,85,0.2)"
	redMedium    = "rgba(255,59,48,1)"
	redFill      = "rgba(211,0,0,0.2)"
	brownDark    = "#a52a2a"
	brownFill    = "rgba(162,132,94,0)"
)
// #endregion palette

// #region style-table
// BackgroundColors maps each annotation type to its fill.
var BackgroundColors = map[AnnotationType]string{
	TextBox:    blueFill,
	RadioBox:   yellowFill,
	CheckBox:   greenFill,
	Signature:  purpleFill,
	Date:       tealFill,
	Label:      pinkFill,
	Group:      brownFill,
	GroupLabel: redFill,
}

// Borders maps each annotation type to its border.
var Borders = map[AnnotationType]string{
	TextBox:    "3px solid " + blueMedium,
	RadioBox:   "3px solid " + yellowMedium,
	CheckBox:   "3px solid " + greenMedium,
	Signature:  "3px solid " + purpleMedium,
	Date:       "3px solid " + tealMedium,
	Label:      "3px solid " + pinkMedium,
	Group:      "3px solid " + brownDark,
	GroupLabel: "3px solid " + redMedium,
}
// #endregion style-table
