package runtime

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"arbor/materialize"
)

// printReport renders the materialization outcome for the terminal: one
// summary line plus a red list of failures when there are any.
func printReport(result *materialize.Result) {
	s := result.Summary()

	fmt.Printf("%s created, %s already existed, %s permissions applied\n",
		color.GreenString("%s", humanize.Comma(int64(s.Created))),
		humanize.Comma(int64(s.Existed)),
		humanize.Comma(int64(s.PermsApplied)))

	if s.Failed == 0 {
		fmt.Printf("Done: %s\n", result.BasePath)
		return
	}

	color.Red("%s entries failed:", humanize.Comma(int64(s.Failed)))
	for _, entry := range result.Failures() {
		color.Red("  %s (%s): %v", entry.Path, entry.Kind, entry.Err)
	}
}
