package render

import (
	"fmt"
	"strings"

	"github.com/thoas/go-funk"

	"github.com/katalvlaran/busroute/core"
)

// Compact renders r on a single line: the origin, then "-walk->" or
// "-N->" before each following stop. An empty route renders as "".
func Compact(r core.Route) string {
	if len(r) == 0 {
		return ""
	}
	hops := funk.Map([]core.Step(r[1:]), func(s core.Step) string {
		label := "walk"
		if line, ok := s.Via.Line(); ok {
			label = fmt.Sprint(line)
		}

		return fmt.Sprintf("-%s-> %d", label, s.Stop)
	}).([]string)

	return strings.Join(append([]string{fmt.Sprint(r[0].Stop)}, hops...), " ")
}
