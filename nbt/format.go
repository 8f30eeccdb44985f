package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the tag tree one tag per line, children indented.
func (t NamedTag) String() string {
	if t.Payload == nil {
		return fmt.Sprintf("TAG_?('%s')", t.Name)
	}
	return fmt.Sprintf("TAG_%s('%s'): %s", t.Payload.Kind(), t.Name, contents(t.Payload))
}

// Format renders an unnamed tag the same way NamedTag.String does.
func Format(t Tag) string {
	if t == nil {
		return "TAG_?"
	}
	return fmt.Sprintf("TAG_%s: %s", t.Kind(), contents(t))
}

func contents(t Tag) string {
	switch v := t.(type) {
	case Long:
		return strconv.FormatInt(int64(v), 10) + "L"
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case String:
		return `"` + string(v) + `"`
	case ByteArray:
		return fmt.Sprintf("[%d bytes]", len(v))
	case IntArray:
		return fmt.Sprintf("[%d ints]", len(v))
	case LongArray:
		return fmt.Sprintf("[%d longs]", len(v))
	case List:
		lines := make([]string, len(v))
		for i, item := range v {
			lines[i] = Format(item)
		}
		return block(lines)
	case Compound:
		lines := make([]string, len(v))
		for i, child := range v {
			lines[i] = child.String()
		}
		return block(lines)
	case End:
		return "END"
	}
	return fmt.Sprint(t)
}

func block(entries []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d entries\n{\n", len(entries))
	for _, e := range entries {
		for _, line := range strings.Split(e, "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("}")
	return sb.String()
}
