package overlays

// Geometry constants, in page units. Every text-box role has fixed
// width/height/position; only font size, weight, and color vary by role.
const (
	progressBarHeight = 6.0
	hairlineWeight    = 0.5

	footerBoxWidth  = 260.0
	footerBoxHeight = 24.0
	footerFontSize  = 9.0

	sectionBoxWidth     = 320.0
	sectionBoxHeight    = 90.0
	beforeBoxY          = 56.0
	afterBoxMarginB     = 146.0
	sectionListFontSize = 12.0

	labelBoxWidth    = 120.0
	labelBoxHeight   = 36.0
	labelBoxMarginR  = 140.0
	labelBoxY        = 20.0
	labelFontSize    = 14.0

	outlineBoxWidth  = 480.0
	outlineBoxHeight = 260.0
	outlineBoxY      = 120.0
	outlineFontSize  = 18.0
)

// outlineTitle gates the outline generator: it runs only when the second
// slide's extracted title equals this literal exactly.
const outlineTitle = "Outline"
