// Package navctl provides navigation control types and utilities.
package navctl

// ViewMode represents the current top-level view.
type ViewMode string

const (
	// ViewBrowse shows the landing page: hero banner and title rows.
	ViewBrowse ViewMode = "browse"
	// ViewWatch shows the player for a local title.
	ViewWatch ViewMode = "watch"
)

// PickerKind identifies the side panel open in the watch view.
type PickerKind int

const (
	PickerNone PickerKind = iota
	PickerEpisodes
	PickerSeasons
)
