package actions

import (
	"encoding/json"
	"fmt"
	"io"

	"toptracks/internal/config"
	"toptracks/internal/optional"
)

// PrintList writes list to w in the given output mode.
//
// json prints one array per call: null when the list is absent, [] when
// empty. lines prints one entry per line and nothing when absent.
func PrintList(w io.Writer, mode string, list optional.Option[[]string]) error {
	entries, ok := list.Get()

	switch mode {
	case config.OutputLines:
		for _, entry := range entries {
			if _, err := fmt.Fprintln(w, entry); err != nil {
				return err
			}
		}
		return nil
	case config.OutputJSON:
		var v any
		if ok {
			if entries == nil {
				entries = []string{}
			}
			v = entries
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output %q", mode)
	}
}
