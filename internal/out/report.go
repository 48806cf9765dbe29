package out

import (
	"fmt"
	"io"
	"strings"

	"github.com/suitools/suiwallet/internal/model"
)

// RenderReport writes a human-readable wallet summary. It is used by the
// report command when plain output is requested; JSON output goes through
// Render like every other command.
func RenderReport(w io.Writer, report model.WalletReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Wallet %s (%s)\n", report.Address, report.Network)

	b.WriteString("\nBalances\n")
	if len(report.Balances) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, bal := range report.Balances {
		fmt.Fprintf(&b, "  %-12s %s\n", bal.Symbol, bal.Balance)
	}

	b.WriteString("\nRecent activity\n")
	if len(report.Activity) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, coin := range report.Activity {
		fmt.Fprintf(&b, "  %s\n", coin.Symbol)
		for _, ch := range coin.Changes {
			fmt.Fprintf(&b, "    %s  %-8s %s\n", ch.Timestamp, ch.Direction, ch.Amount)
		}
	}

	b.WriteString("\nProtocol positions\n")
	if len(report.Positions) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, pos := range report.Positions {
		fmt.Fprintf(&b, "  [%s] %s\n", pos.Protocol, pos.Label)
		for _, m := range pos.Metrics {
			fmt.Fprintf(&b, "    %s: %s\n", m.Label, m.Value)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
