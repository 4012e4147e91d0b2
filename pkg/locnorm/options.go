// Package locnorm keeps the composite-sheet coordinates of a pack's
// locations in sync with their era-relative coordinates.
package locnorm

// Options selects what a normalization pass does with its result. The
// flags combine; with none set the updated document is printed.
type Options struct {
	// InPlace overwrites the source file when the document changed.
	InPlace bool
	// Check reports a failure when the document needs updates.
	Check bool
	// Explain prints a notice for every missing derived entry instead of
	// the updated document.
	Explain bool
}

// ShouldPrint returns whether the updated document goes to stdout.
func (o Options) ShouldPrint() bool {
	return !o.InPlace && !o.Explain
}
