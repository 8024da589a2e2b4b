package prefetch

import (
	"fmt"
	"strings"

	"github.com/anacrolix/log"
)

// logging is satisfied by *log.Logger from the standard library.
type logging interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

type discard struct{}

// Println replicates the behaviour of the standard logger.
func (t discard) Println(v ...any) {
}

func (t discard) Printf(format string, v ...any) {
}

func (t discard) Print(v ...any) {

}

func LogDiscard() discard {
	return discard{}
}

// LogAnacrolix routes output to l at debug level.
func LogAnacrolix(l log.Logger) anacrolix {
	return anacrolix{l: l.WithNames("prefetch")}
}

type anacrolix struct {
	l log.Logger
}

func (t anacrolix) Println(v ...any) {
	t.l.Levelf(log.Debug, "%s", strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (t anacrolix) Printf(format string, v ...any) {
	t.l.Levelf(log.Debug, format, v...)
}

func (t anacrolix) Print(v ...any) {
	t.l.Levelf(log.Debug, "%s", fmt.Sprint(v...))
}
