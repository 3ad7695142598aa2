package ivywallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMissingSection is returned when a required top-level array is absent
// from the export file.
var ErrMissingSection = errors.New("missing required section")

// requiredSections are the top-level keys every export must carry, each
// holding an array.
var requiredSections = []string{"accounts", "transactions", "categories", "plannedPaymentRules"}

// Parse decodes and structurally validates a wallet export. It fails before
// any database mutation happens, so callers can report validation errors
// without a rollback.
func Parse(f io.Reader) (Backup, error) {
	content, err := io.ReadAll(f)
	if err != nil {
		return Backup{}, fmt.Errorf("could not read data from file: %w", err)
	}

	var sections map[string]json.RawMessage
	err = json.Unmarshal(content, &sections)
	if err != nil {
		return Backup{}, fmt.Errorf("not a valid wallet export file: %w", err)
	}

	for _, name := range requiredSections {
		raw, ok := sections[name]
		if !ok || string(raw) == "null" {
			return Backup{}, fmt.Errorf("%w: %s", ErrMissingSection, name)
		}
	}

	var backup Backup
	err = json.Unmarshal(content, &backup)
	if err != nil {
		return Backup{}, fmt.Errorf("not a valid wallet export file: %w", err)
	}

	return backup, nil
}
