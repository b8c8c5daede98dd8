package report

// FilterOption is one selectable value in a report filter dropdown.
// A nil Value conventionally means "no constraint" / "all".
type FilterOption struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// ExtractOptions derives the distinct set of selectable filter values
// from a record collection. The value at keyPath identifies an option;
// records whose key resolves to nil or empty are skipped. Options are
// deduplicated by the stringified key with the first occurrence winning
// the label, and first-seen order is preserved so dropdown contents stay
// stable across refreshes.
//
// When labelPath is empty the label falls back to the key itself, which
// covers flows where a raw string (a rep's name) serves as both.
func ExtractOptions(records []Record, keyPath, labelPath string) []FilterOption {
	options := make([]FilterOption, 0)
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		key := FieldAt(rec, keyPath)
		keyStr := Stringify(key)
		if keyStr == "" {
			continue
		}
		if _, dup := seen[keyStr]; dup {
			continue
		}
		seen[keyStr] = struct{}{}

		label := keyStr
		if labelPath != "" {
			if l := Stringify(FieldAt(rec, labelPath)); l != "" {
				label = l
			}
		}
		options = append(options, FilterOption{Label: label, Value: key})
	}
	return options
}
