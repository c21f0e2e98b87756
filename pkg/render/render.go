package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/kasuboski/juststreamit/pkg/browse"
	"github.com/kasuboski/juststreamit/pkg/catalog"
	"github.com/kasuboski/juststreamit/pkg/visibility"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	UnknownRated    = "PG Inconnu"
	Unscored        = "Non noté"
	UnknownGross    = "Inconnue"
	UnknownDirector = "Inconnu"
	NoSummary       = "Résumé non disponible."
	NoMovies        = "Aucun film"

	RankedTitle = "Films les mieux notés"
	BestTitle   = "Meilleur film"
)

var genreCaser = cases.Title(language.French)

// RatedLabel formats the rating. Titles the catalog marks as not rated get a placeholder.
func RatedLabel(rated string) string {
	if rated == "" || strings.Contains(strings.ToLower(rated), "not rated") {
		return UnknownRated
	}
	return "PG: " + rated
}

func ScoreLabel(s catalog.Score) string {
	if s == 0 {
		return Unscored
	}
	return s.String()
}

func GrossLabel(gross *int64) string {
	if gross == nil || *gross == 0 {
		return UnknownGross
	}
	return humanize.Comma(*gross) + " dollars"
}

func DirectorsLabel(directors []string) string {
	if len(directors) == 0 {
		return UnknownDirector
	}
	return strings.Join(directors, ", ")
}

func CountriesLabel(countries []string) string {
	return "(" + strings.Join(countries, "/ ") + ")"
}

// GenreTitle capitalizes a genre the way headings show it
func GenreTitle(genre string) string {
	return genreCaser.String(genre)
}

func SectionTitle(s browse.Section) string {
	switch s.Kind {
	case browse.KindBest:
		return BestTitle
	case browse.KindRanked:
		return RankedTitle
	default:
		return GenreTitle(s.Genre)
	}
}

// Field is one labelled line of the detail card
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func ModalFields(d catalog.MovieDetail) []Field {
	return []Field{
		{Label: "Année", Value: strconv.Itoa(d.Year)},
		{Label: "Genres", Value: strings.Join(d.Genres, ", ")},
		{Label: "Classification", Value: RatedLabel(d.Rated)},
		{Label: "Durée", Value: fmt.Sprintf("%d minutes", d.Duration)},
		{Label: "Pays", Value: CountriesLabel(d.Countries)},
		{Label: "Score IMDB", Value: ScoreLabel(d.IMDBScore)},
		{Label: "Recettes au box-office", Value: GrossLabel(d.WorldwideGrossIncome)},
		{Label: "Réalisé par", Value: DirectorsLabel(d.Directors)},
		{Label: "Avec", Value: strings.Join(d.Actors, ", ")},
	}
}

// Modal renders the detail card of a title. Width zero leaves lines unwrapped.
func Modal(d catalog.MovieDetail, width int) string {
	lines := []string{TitleStyle.Render(d.Title), ""}
	for _, f := range ModalFields(d) {
		lines = append(lines, LabelStyle.Render(f.Label+" : ")+f.Value)
	}

	desc := d.LongDescription
	if desc == "" {
		desc = d.Description
	}
	if desc != "" {
		lines = append(lines, "", desc)
	}

	style := ModalStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func card(m catalog.MovieDetail) string {
	if m.Year == 0 {
		return m.Title
	}
	return fmt.Sprintf("%s (%d)", m.Title, m.Year)
}

// Best renders the headline title of the page
func Best(s browse.Section, focused bool) string {
	lines := []string{HeadingStyle.Render(SectionTitle(s))}
	switch {
	case s.Failed():
		// left empty, the failure is logged where the section was loaded
	case len(s.Movies) == 0:
		lines = append(lines, DimStyle.Render(NoMovies))
	default:
		m := s.Movies[0]
		title := TitleStyle.Render(m.Title)
		if focused {
			title = FocusStyle.Render(m.Title)
		}
		summary := m.Description
		if summary == "" {
			summary = NoSummary
		}
		lines = append(lines, title, summary, LabelStyle.Render("Score IMDB : ")+ScoreLabel(m.IMDBScore))
	}
	return SectionStyle.Render(strings.Join(lines, "\n"))
}

// Section renders one grid. Movies the snapshot hides are left out and the toggle
// label closes the grid when the list has a control. A zero snapshot shows every movie.
// A failed section keeps only its heading.
// cursor is the index to highlight, -1 for none.
func Section(s browse.Section, snap visibility.Snapshot, cursor int) string {
	lines := []string{HeadingStyle.Render(SectionTitle(s))}

	if s.Failed() {
		return SectionStyle.Render(strings.Join(lines, "\n"))
	}
	if len(s.Movies) == 0 {
		lines = append(lines, DimStyle.Render(NoMovies))
		return SectionStyle.Render(strings.Join(lines, "\n"))
	}

	for i, m := range s.Movies {
		if snap.State != "" && !snap.IsVisible(i) {
			continue
		}
		if i == cursor {
			lines = append(lines, FocusStyle.Render(card(m)))
			continue
		}
		lines = append(lines, "  "+card(m))
	}

	if n := len(snap.Hidden); n > 0 {
		lines = append(lines, DimStyle.Render(fmt.Sprintf("  … %d de plus", n)))
	}
	if snap.HasControl() {
		lines = append(lines, "  "+ToggleStyle.Render("["+snap.Label+"]"))
	}

	return SectionStyle.Render(strings.Join(lines, "\n"))
}

// Page renders the whole home page using the visibility recorded on board
func Page(p browse.Page, board *visibility.Board) string {
	blocks := []string{Best(p.Best, false)}
	for _, s := range p.Lists() {
		snap, _ := board.Get(s.Key)
		blocks = append(blocks, Section(s, snap, -1))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
