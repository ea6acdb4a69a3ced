package cli

import (
	"fmt"

	"github.com/lucvt/tick/internal/list"
	"github.com/lucvt/tick/internal/model"
	"github.com/lucvt/tick/internal/ui"
)

// listingLines builds the panel body for `tick ls`: header with counts, a
// progress bar, then the items flat or grouped by pending/done.
func listingLines(items []model.Item, group bool) []string {
	d, p := list.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(ui.Current().Title, "Todos"),
		ui.C(ui.Current().Success, ui.Current().SymDone), d,
		ui.C(ui.Current().Pending, ui.Current().SymPending), p,
		ui.C(ui.Current().Accent, "Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(ui.Current().Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: add with `tick add \"Buy milk\"`"))
	return lines
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		id := fmt.Sprintf("%3d.", it.ID)
		box := ui.Current().BoxUnchecked
		color := ui.Current().Muted
		if it.Done {
			box, color = ui.Current().BoxChecked, ui.Current().Success
		}
		text := it.Text
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C("\033[2m", id), ui.C(color, box), text))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
