package page

import "time"

// Action is an input to State.Apply.
type Action interface{ action() }

// Enter dismisses the welcome overlay. Fast skips starting the music.
type Enter struct{ Fast bool }

// Tick advances animations by DT.
type Tick struct{ DT time.Duration }

type ToggleTheme struct{}

// ScrollBy moves the scroll target by Delta pixels.
type ScrollBy struct{ Delta float64 }

type ScrollToSection struct{ Index int }

type ScrollToTop struct{}

type Resize struct{ Width, Height int }

func (Enter) action()           {}
func (Tick) action()            {}
func (ToggleTheme) action()     {}
func (ScrollBy) action()        {}
func (ScrollToSection) action() {}
func (ScrollToTop) action()     {}
func (Resize) action()          {}

// Effect is something Apply asks the caller to do outside the page state.
type Effect interface{ effect() }

// OpenSite fires once the welcome overlay is gone. The caller prepares the
// music (volume, loop on) and starts it if PlayMusic is set.
type OpenSite struct{ PlayMusic bool }

type ThemeChanged struct{ Theme Theme }

func (OpenSite) effect()     {}
func (ThemeChanged) effect() {}
