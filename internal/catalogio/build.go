package catalogio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/potools/msgmerge3/internal/catalog"
)

// BuildCatalog groups a flat list of decoded records into a
// internal/catalog.Catalog, preserving each domain's first-seen order.
func BuildCatalog(messages []Message) *catalog.Catalog {
	cat := &catalog.Catalog{}
	for _, rec := range messages {
		d := cat.EnsureDomain(rec.Domain)
		d.Messages = append(d.Messages, &catalog.Message{
			Context:           rec.Context,
			ID:                rec.ID,
			Translation:       []byte(rec.Translation),
			IsFuzzy:           rec.Fuzzy,
			Obsolete:          rec.Obsolete,
			Comments:          rec.Comments,
			ExtractedComments: rec.ExtractedComments,
		})
	}
	return cat
}

// ReadCatalogFile reads path as catalogio JSON-lines and returns the
// assembled catalog in one step.
func ReadCatalogFile(path string) (*catalog.Catalog, error) {
	messages, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return BuildCatalog(messages), nil
}

// WriteCatalogFile serializes cat back to the catalogio JSON-lines format,
// one record per message, in domain then message order.
func WriteCatalogFile(path string, cat *catalog.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	for _, d := range cat.Domains {
		for _, m := range d.Messages {
			rec := line{
				Domain:            d.Name,
				Context:           m.Context,
				ID:                m.ID,
				Translation:       string(m.Translation),
				Fuzzy:             m.IsFuzzy,
				Obsolete:          m.Obsolete,
				Comments:          m.Comments,
				ExtractedComments: m.ExtractedComments,
			}
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("writing catalog record: %w", err)
			}
		}
	}

	return w.Flush()
}
