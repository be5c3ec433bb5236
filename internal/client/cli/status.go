package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	blue   = color.New(color.FgBlue).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	banner = color.New(color.BgBlue, color.FgWhite).SprintFunc()
)

// statusLine shows progress around a single network call. With animate set
// it draws a spinner that is cleared when the call finishes; otherwise the
// start message is printed as a plain line.
type statusLine struct {
	w       io.Writer
	animate bool
	bar     *progressbar.ProgressBar
}

func newStatusLine(w io.Writer, animate bool) *statusLine {
	return &statusLine{w: w, animate: animate}
}

func (s *statusLine) Start(msg string) {
	if !s.animate {
		fmt.Fprintln(s.w, msg)
		return
	}
	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(s.w),
		progressbar.OptionSetDescription(msg),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	_ = s.bar.RenderBlank()
}

// Stop ends the spinner and prints msg in its place.
func (s *statusLine) Stop(msg string) {
	s.clear()
	fmt.Fprintln(s.w, msg)
}

func (s *statusLine) Fail(msg string) {
	s.clear()
	fmt.Fprintln(s.w, red(msg))
}

func (s *statusLine) clear() {
	if s.bar == nil {
		return
	}
	_ = s.bar.Finish()
	s.bar = nil
}
