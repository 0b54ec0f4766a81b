package merger

import "github.com/erraggy/oasreconcile/document"

// reconcileTags appends every curated tag whose name is not already
// present in the target's tags sequence. The curated list is configuration
// data, independent of which paths the run actually merged.
func (m *Merger) reconcileTags(target *document.Document, result *MergeResult) {
	if len(m.config.Tags) == 0 {
		return
	}

	existing := make(map[string]bool)
	if tags := target.Tags(); tags.IsSequence() {
		for _, entry := range tags.Items() {
			if name, ok := entry.Get("name").StringValue(); ok {
				existing[name] = true
			}
		}
	}

	for _, tag := range m.config.Tags {
		if existing[tag.Name] {
			continue
		}
		entry := document.NewMapping()
		entry.Set("name", document.NewScalar(tag.Name))
		entry.Set("description", document.NewScalar(tag.Description))
		target.EnsureTags().Append(entry)
		existing[tag.Name] = true
		result.TagsAdded = append(result.TagsAdded, tag.Name)
		m.config.Logger.Debug("appended tag", "name", tag.Name)
	}
}
