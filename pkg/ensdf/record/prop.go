package record

import (
	"fmt"
	"strings"

	"nucleura/helios/pkg/ensdf/ensdferr"
)

// abbreviations are the relational/uncertainty codes recognized by the
// continuation-field grammar when they appear as a standalone middle token.
var abbreviations = []string{"GT", "LT", "GE", "LE", "AP", "CA", "SY"}

// loadProperties parses the continuation cards of a record (every card after
// the first) into the property mapping. Each card's text from column 9
// onward is split on "$" into entries, and each trimmed non-empty entry is
// matched against the grammar rules in order:
//
//  1. "KEY=VALUE" assignments store the value under the key and keep
//     scanning.
//  2. "KEY<VALUE" / "KEY>VALUE" store the symbol-prefixed value, then stop
//     processing the remaining entries of this record entirely.
//  3. "KEY CODE VALUE" with a known relational code stores "VALUE CODE",
//     then stops as in rule 2.
//  4. "KEY?" stores "?", then stops as in rule 2.
//  5. Anything else is an invalid-property error, which aborts the whole
//     dataset parse.
//
// The early exit in rules 2-4 discards any further "$"-separated entries on
// the same and following cards. It is inconsistent with rule 1 but is the
// established contract of this format's consumers; downstream property
// availability depends on it.
func loadProperties(props map[string]string, lines []string) error {
	for _, line := range lines {
		rest := ""
		if len(line) > 9 {
			rest = line[9:]
		}
		for _, entry := range strings.Split(rest, "$") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}

			if i := strings.Index(entry, "="); i >= 0 {
				key := strings.TrimSpace(entry[:i])
				props[key] = strings.TrimSpace(entry[i+1:])
				continue
			}

			if stop, err := loadRelationalEntry(props, entry); err != nil {
				return err
			} else if stop {
				return nil
			}
		}
	}
	return nil
}

// loadRelationalEntry applies grammar rules 2-4 to an entry that contains no
// "=". It reports stop == true when the entry matched and the caller must
// abandon the remaining entries.
func loadRelationalEntry(props map[string]string, entry string) (stop bool, err error) {
	for _, symbol := range []string{"<", ">"} {
		if i := strings.Index(entry, symbol); i >= 0 {
			key := strings.TrimSpace(entry[:i])
			props[key] = symbol + strings.TrimSpace(entry[i+1:])
			return true, nil
		}
	}

	for _, abbr := range abbreviations {
		if strings.Contains(entry, " "+abbr+" ") {
			parts := strings.SplitN(entry, " ", 3)
			if len(parts) != 3 {
				return false, &ensdferr.Error{
					Kind:    ensdferr.KindInvalidProperty,
					Message: fmt.Sprintf("cannot process property entry %q", entry),
				}
			}
			key := strings.TrimSpace(parts[0])
			code := strings.TrimSpace(parts[1])
			props[key] = strings.TrimSpace(parts[2]) + " " + code
			return true, nil
		}
	}

	if strings.HasSuffix(entry, "?") {
		props[strings.TrimSuffix(entry, "?")] = "?"
		return true, nil
	}

	return false, &ensdferr.Error{
		Kind:    ensdferr.KindInvalidProperty,
		Message: fmt.Sprintf("cannot process property entry %q", entry),
	}
}
