package page

import "strings"

const (
	Brand = "Starlight"

	CharWidth = 7 // basicfont.Face7x13 advance
)

// Section is one block of page content reachable from the nav bar.
type Section struct {
	ID    string
	Title string
	Body  string
}

// DefaultSections is the content shown on the site.
var DefaultSections = []Section{
	{
		ID:    "home",
		Title: "Home",
		Body: "A quiet corner of the night sky. Move the pointer and the stars lean " +
			"toward it, slowly, the way a crowd turns toward a sound. Nothing here " +
			"needs your attention. Stay as long as you like.",
	},
	{
		ID:    "about",
		Title: "About",
		Body: "Starlight is a small page made of a few moving parts: two starfields, " +
			"a music player, and some sections that fade in as you scroll. The " +
			"stars drift on their own and wrap around the edges of the window.",
	},
	{
		ID:    "music",
		Title: "Music",
		Body: "The player at the bottom plays a single track on repeat. Space or " +
			"Escape pauses it, the progress bar seeks, and the buttons next to it " +
			"mute the sound or turn looping off. Open another file any time.",
	},
	{
		ID:    "gallery",
		Title: "Gallery",
		Body: "Every star has its own size, speed and brightness, chosen when the " +
			"window opens or changes size. Some of them twinkle a little out of " +
			"step with their neighbours, which is what makes the field feel alive.",
	},
	{
		ID:    "contact",
		Title: "Contact",
		Body: "There is nobody to write to, but the theme button in the corner " +
			"switches between a night and a daylight palette if the dark gets to " +
			"be too much.",
	},
}

// Wrap splits text into lines of at most width pixels of CharWidth glyphs.
// Words longer than a line are placed on a line of their own.
func Wrap(text string, width int) []string {
	limit := max(width/CharWidth, 1)
	var (
		lines []string
		cur   strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > limit {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
