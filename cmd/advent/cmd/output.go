package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/corey/advent/internal/domain/puzzle"
	"github.com/corey/advent/internal/ports"
)

// ANSI color codes for terminal output. Blanked when stdout is not a terminal.
var (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

func init() {
	if !isStdoutTTY() {
		disableColor()
	}
}

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func disableColor() {
	colorReset, colorBold, colorCyan, colorGreen = "", "", "", ""
	colorYellow, colorRed, colorGray = "", "", ""
}

// formatAnswer renders one solved part:
//
//	Day 06 part 2 result is 6  │ 1.3ms
//	Day 06 part 2 result is 6  │ 1.3ms cached
func formatAnswer(a puzzle.Answer) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Day %02d part %d result is %s%d%s",
		a.Day, a.Part, colorBold, a.Value, colorReset))
	sb.WriteString(fmt.Sprintf("  %s│ %s", colorGray, formatElapsed(a.Elapsed)))
	if a.Cached {
		sb.WriteString(" " + colorCyan + "cached")
	}
	sb.WriteString(colorReset)
	return sb.String()
}

func formatFailure(a puzzle.Answer, err error) string {
	return fmt.Sprintf("Day %02d part %d %sfailed:%s %v", a.Day, a.Part, colorRed, colorReset, err)
}

// formatCacheList renders cached answers grouped by day, one line each.
func formatCacheList(recs []*ports.AnswerRecord) string {
	if len(recs) == 0 {
		return "⚡ cache is empty\n"
	}
	var sb strings.Builder
	noun := "answers"
	if len(recs) == 1 {
		noun = "answer"
	}
	sb.WriteString(fmt.Sprintf("%s⚡ %d cached %s%s\n", colorBold, len(recs), noun, colorReset))
	for _, r := range recs {
		digest := r.Digest
		if len(digest) > 12 {
			digest = digest[:12]
		}
		solved := time.Unix(r.SolvedAt, 0).UTC().Format("2006-01-02 15:04")
		sb.WriteString(fmt.Sprintf("  %sday %02d part %d%s  %d  %s%s  %s  %s%s\n",
			colorCyan, r.Day, r.Part, colorReset,
			r.Value,
			colorGray, digest, solved, formatElapsed(time.Duration(r.ElapsedNs)), colorReset))
	}
	return sb.String()
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return d.String()
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
