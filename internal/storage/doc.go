// Package storage provides JSON-based persistence for the problem document.
//
// The storage package manages the local problems.json file that the scrape
// command writes and the setup commands read back. The document is stored as
// indented JSON so it stays diffable and hand-inspectable. The default
// storage location is ~/.local/share/cp4-practice/.
package storage
