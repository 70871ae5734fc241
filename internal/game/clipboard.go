package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

// reportText is the plain-text session summary copied with C.
func reportText(r sim.Report, inv sim.Inventory) string {
	var b strings.Builder
	b.WriteString("Stick Survivor session report\n")
	b.WriteString(r.String())
	fmt.Fprintf(&b, "inventory skin=%s stick=%s battle_pass=%t\n", inv.Skin, inv.Stick, inv.BattlePass)
	return b.String()
}

func (g *Game) copyReport() {
	s := g.session
	if err := g.copyText(reportText(s.Report(), s.Player.Inventory)); err != nil {
		g.log.Warn("clipboard copy failed", "err", err)
		g.setStatus("Clipboard unavailable")
		return
	}
	g.setStatus("Report copied to clipboard")
}

var writeClipboard = clipboard.WriteAll
