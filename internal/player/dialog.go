package player

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// SelectFile asks the user for an audio file. It returns an empty path and no
// error when the dialog is cancelled.
func SelectFile() (string, error) {
	patterns := make([]string, len(Extensions))
	for i, ext := range Extensions {
		patterns[i] = "*" + ext
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return filename, nil
}
