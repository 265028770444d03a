// Package storage provides named-document persistence for the bot's state.
// Documents are human-inspectable JSON; the default backend keeps one file
// per document, and an optional MongoDB backend stores the same payloads.
package storage

// Store loads and saves named JSON documents.
//
// Load fills `into` with the previously saved document. A missing or
// unparseable document is not an error: `into` is left at its zero value so
// the process can always boot, even after a manual edit broke the file.
// Save performs a full overwrite of the named document.
type Store interface {
	Load(name string, into interface{}) error
	Save(name string, doc interface{}) error
}
