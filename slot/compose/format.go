package compose

import (
	"fmt"
	"strings"
)

// Format renders the descriptor as a fixed-width table, one line per field
// in declared order. Useful for layout review and golden tests; the output
// is deterministic for a given composite type.
func (d *Descriptor) Format() string {
	flavor := "plain"
	if d.pinned {
		flavor = "pin"
	}

	nameW := len("FIELD")
	for _, f := range d.fields {
		nameW = max(nameW, len(f.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "composite %s: size=%d align=%d flavor=%s\n",
		d.typ, d.Size(), d.Align(), flavor)
	fmt.Fprintf(&b, "  %-3s %-*s %-6s %-6s %-4s %-5s %s\n",
		"#", nameW, "FIELD", "TAG", "OFFSET", "SIZE", "ALIGN", "TYPE")
	for i, f := range d.fields {
		tag := "plain"
		if f.Pinned {
			tag = "pinned"
		}
		fmt.Fprintf(&b, "  %-3d %-*s %-6s %-6d %-4d %-5d %s\n",
			i, nameW, f.Name, tag, f.Offset, f.Size, f.Align, f.typ.String())
	}
	return b.String()
}
