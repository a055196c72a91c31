package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/tenpin/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FrameMarks returns the scoresheet marks for one frame: X for a strike,
// / for a spare and - for a ball that hit nothing.
func FrameMarks(frame *models.Frame) string {
	if frame == nil || frame.Ball1 == nil {
		return ""
	}

	if frame.IsStrike {
		return "X"
	}

	marks := ballMark(*frame.Ball1)
	if frame.Ball2 == nil {
		return marks
	}

	if frame.IsSpare {
		return marks + "/"
	}
	return marks + ballMark(*frame.Ball2)
}

func ballMark(pins int) string {
	if pins == 0 {
		return "-"
	}
	return strconv.Itoa(pins)
}

// RenderScorecards renders one table with a pair of rows per player:
// frame marks on top, running totals underneath.
func RenderScorecards(players []*models.Player, states [][]*models.Frame, numFrames int) string {
	headers := make([]string, 0, numFrames+2)
	headers = append(headers, "Player")
	for i := 1; i <= numFrames; i++ {
		headers = append(headers, strconv.Itoa(i))
	}
	headers = append(headers, "Total")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return NameStyle
			case col == numFrames+1:
				return TotalStyle
			default:
				return CellStyle
			}
		})

	for i, player := range players {
		var frames []*models.Frame
		if i < len(states) {
			frames = states[i]
		}
		marks, totals := scorecardRows(frames, numFrames)

		markRow := append([]string{player.Name}, marks...)
		markRow = append(markRow, strconv.Itoa(finalScore(frames, numFrames)))

		totalRow := append([]string{""}, totals...)
		totalRow = append(totalRow, "")

		t.Row(markRow...)
		t.Row(totalRow...)
	}

	return t.String()
}

// scorecardRows lays out marks and totals per frame. The last frame's
// column also carries the fill balls.
func scorecardRows(frames []*models.Frame, numFrames int) ([]string, []string) {
	marks := make([]string, numFrames)
	totals := make([]string, numFrames)

	for i := 0; i < numFrames && i < len(frames); i++ {
		marks[i] = FrameMarks(frames[i])
		// Totals carry through unresolved frames; only show them once the frame is scored
		if frames[i].FrameScore != nil && frames[i].RunningTotal != nil {
			totals[i] = strconv.Itoa(*frames[i].RunningTotal)
		}
	}

	if len(frames) > numFrames {
		last := []string{marks[numFrames-1]}
		for _, bonus := range frames[numFrames:] {
			last = append(last, FrameMarks(bonus))
		}
		marks[numFrames-1] = strings.Join(last, " ")
	}

	return marks, totals
}

// finalScore is the running total of the player's current frame
func finalScore(frames []*models.Frame, numFrames int) int {
	current := min(len(frames), numFrames)
	if current == 0 {
		return 0
	}
	return models.IntValue(frames[current-1].RunningTotal)
}

// RenderLeaderboard renders the standings, best first
func RenderLeaderboard(board *models.Leaderboard) string {
	if board == nil {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers("#", "Player", "Score", "Frame").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 1:
				return NameStyle
			case col == 2:
				return TotalStyle
			default:
				return CellStyle
			}
		})

	for i, standing := range board.Standings {
		frame := strconv.Itoa(standing.Frame)
		if standing.GameOver {
			frame = "done"
		}
		t.Row(strconv.Itoa(i+1), standing.Player.Name, strconv.Itoa(standing.Score), frame)
	}

	return t.String()
}

// RenderCallout renders a roll callout on a single line
func RenderCallout(player *models.Player, title, message string) string {
	line := fmt.Sprintf("%s %s", StrikeStyle.Render(title), InfoStyle.Render(message))
	if player == nil {
		return line
	}
	return NameStyle.Render(player.Name) + line
}

// RenderError renders a rejected action
func RenderError(message string) string {
	return ErrorStyle.Render(message)
}
