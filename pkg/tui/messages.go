package tui

import "github.com/kasuboski/juststreamit/pkg/browse"

// PageLoadedMsg signals the home page finished loading
type PageLoadedMsg struct {
	Page browse.Page
}

// GenreLoadedMsg signals the genre selector grid was reloaded for Genre, in its query form
type GenreLoadedMsg struct {
	Genre   string
	Section browse.Section
}
