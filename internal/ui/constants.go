// Package ui holds layout constants and state shared by the panels.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below the cursor.
	ScrollMargin = 3

	// BorderHeight is the space a rounded panel border takes on each axis.
	BorderHeight = 2

	// HeaderHeight is the panel title row plus its separator.
	HeaderHeight = 2

	// PanelOverhead is the vertical space a panel uses besides its list rows.
	PanelOverhead = BorderHeight + HeaderHeight
)
