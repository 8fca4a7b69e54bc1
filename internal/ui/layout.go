package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// API address and the diary drops units.
	LayoutCompactWidth = 100

	// LabelColumnWidth is the width of the diary label column.
	LabelColumnWidth = 18

	// ValueColumnWidth is the width of the diary value column.
	ValueColumnWidth = 24

	// DialogWidth is the width of the error, login and help dialogs.
	DialogWidth = 48
)
