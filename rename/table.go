package rename

// Table maps names in the comprehensive document's convention to names in
// the official convention. Lookups for absent names return the name
// unchanged, so a nil Table is a valid identity table.
type Table map[string]string

// Rename returns the official-convention name for name, or name itself
// when the table has no entry for it.
func (t Table) Rename(name string) string {
	if renamed, ok := t[name]; ok {
		return renamed
	}
	return name
}

// Has reports whether the table holds an entry for name, including
// identity entries.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// DefaultParameters returns the parameter-name table for the document pair
// this tool was built for. The identity entries are deliberate no-ops
// documenting names that already agree between the two conventions.
func DefaultParameters() Table {
	return Table{
		"oid":        "orgId",
		"wid":        "workspaceId",
		"attId":      "attachmentId",
		"uid":        "userId",
		"said":       "serviceAccountId",
		"vsId":       "formId",
		"docId":      "docId",      // stays the same
		"tableId":    "tableId",    // stays the same
		"colId":      "colId",      // stays the same
		"webhookId":  "webhookId",  // stays the same
		"proposalId": "proposalId", // stays the same
	}
}

// DefaultParameterRefs returns the table mapping the comprehensive
// document's parameter definition names to the official ones, used when
// rewriting "#/components/parameters/..." pointers.
func DefaultParameterRefs() Table {
	return Table{
		"OrgId":        "orgIdPathParam",
		"WorkspaceId":  "workspaceIdPathParam",
		"DocId":        "docIdPathParam",
		"TableId":      "tableIdPathParam",
		"AttachmentId": "attachmentIdPathParam",
		"UserId":       "userIdPathParam",
	}
}
