package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case []int64:
		o.printGameIDs(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Game response type (matches API)
type Game struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Player response type
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	GameID    int64     `json:"gameId"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%d)\n", g.Name, g.ID)
	fmt.Printf("Status: %s\n", g.Status)
	fmt.Printf("Created: %s\n", g.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  %d: %s [%s]\n", g.ID, g.Name, g.Status)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%d)\n", p.Name, p.ID)
	if p.GameID == 0 {
		fmt.Println("Game: none")
	} else {
		fmt.Printf("Game: %d\n", p.GameID)
	}
	fmt.Printf("Created: %s\n", p.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		gameStr := "unlinked"
		if p.GameID != 0 {
			gameStr = fmt.Sprintf("game %d", p.GameID)
		}
		fmt.Printf("  %d: %s (%s)\n", p.ID, p.Name, gameStr)
	}
}

func (o *Output) printGameIDs(ids []int64) {
	fmt.Printf("Game IDs (%d):\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  %d\n", id)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
