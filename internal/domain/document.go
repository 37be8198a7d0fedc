package domain

// Document is user-supplied background knowledge injected verbatim into
// prompts: treatment manuals, program descriptions, style guides.
type Document struct {
	ID      string
	Title   string
	Content string
}
