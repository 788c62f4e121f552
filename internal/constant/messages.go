package constant

// Response message literals shared by the note service. The exact strings
// are part of the API contract.
const (
	NoteCreated  = "Note created successfully"
	NoteUpdated  = "Note updated successfully"
	NotesFetched = "Notes fetched successfully"
	NoteDeleted  = "Note deleted successfully"
	NoteNotFound = "Note not found"
)
