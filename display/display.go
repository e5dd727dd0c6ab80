package display

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/minaorangina/uno"
	"github.com/minaorangina/uno/deck"
)

const (
	resultLineText   = "%s won %d times (%.1f%%)\n"
	playerText       = "Player %d (%s, %s)"
	summaryText      = "\n%d games, %.1f turns per game, %d reshuffles\n"
	elapsedText      = "Elapsed time: %s\n"
	noGamesText      = "No games were played.\n"
	runFinishedTitle = "Results"
)

var cardColors = map[deck.Color]lipgloss.Color{
	deck.Red:    lipgloss.Color("9"),
	deck.Yellow: lipgloss.Color("11"),
	deck.Green:  lipgloss.Color("10"),
	deck.Blue:   lipgloss.Color("12"),
}

// Printer writes cards and results to a console.
// Colours are only used when the writer is a terminal that supports them.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, renderer: lipgloss.NewRenderer(w)}
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// CardText is the short form of a card: "Red 7", "Blue +2", "Wild(Green)"
func CardText(c deck.Card) string {
	face := c.Face.String()
	if c.Face.IsNumber() {
		face = strconv.Itoa(int(c.Face))
	}

	if !c.Wild {
		return fmt.Sprintf("%s %s", c.Color, face)
	}
	if c.Color == deck.Undecided {
		return face
	}
	return fmt.Sprintf("%s(%s)", face, c.Color)
}

// Card renders a card in its own color
func (p *Printer) Card(c deck.Card) string {
	style := p.renderer.NewStyle()
	if color, ok := cardColors[c.Color]; ok {
		style = style.Foreground(color)
	}
	if c.Wild {
		style = style.Bold(true)
	}
	return style.Render(CardText(c))
}

func PlayerText(e uno.Entry) string {
	return fmt.Sprintf(playerText, e.ID, e.Name, e.Strategy)
}

// Results prints one line per player in roster order, then the run totals
func (p *Printer) Results(board *uno.ScoreBoard) {
	title := p.renderer.NewStyle().Bold(true).Underline(true)
	SendText(p.out, "%s\n", title.Render(runFinishedTitle))

	total := board.Total()
	if total == 0 {
		SendText(p.out, noGamesText)
		return
	}

	leader, _ := board.Leader()
	highlight := p.renderer.NewStyle().Bold(true)
	for _, e := range board.Entries() {
		name := PlayerText(e)
		if e.ID == leader.ID {
			name = highlight.Render(name)
		}
		SendText(p.out, resultLineText, name, e.Wins, 100*float64(e.Wins)/float64(total))
	}

	SendText(p.out, summaryText, total, board.AverageTurns(), board.Reshuffles)
}

func (p *Printer) Elapsed(d time.Duration) {
	SendText(p.out, elapsedText, d.Round(time.Millisecond))
}
