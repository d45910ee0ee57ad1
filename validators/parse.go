package validators

import (
	"strings"
)

// Definition is a parsed "Type[:name][=arg1 arg2]" registration entry.
type Definition struct {
	Type string
	Name string
	Args []any
}

// ParseDefinitions parses a comma separated definition list such as
// "HexValidator,CharCount:Short=32,Pattern=^[a-z]+$". Arguments are split on
// whitespace and kept as strings; constructors convert them as needed.
func ParseDefinitions(str string) []Definition {
	var definitions []Definition

	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		def := Definition{}
		head := part
		if idx := strings.Index(part, "="); idx != -1 {
			head = strings.TrimSpace(part[:idx])
			for _, arg := range strings.Fields(part[idx+1:]) {
				def.Args = append(def.Args, arg)
			}
		}

		if idx := strings.Index(head, ":"); idx != -1 {
			def.Type = strings.TrimSpace(head[:idx])
			def.Name = strings.TrimSpace(head[idx+1:])
		} else {
			def.Type = head
		}

		if def.Type == "" {
			continue
		}
		definitions = append(definitions, def)
	}

	return definitions
}
