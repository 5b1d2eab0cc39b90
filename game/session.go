package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// GameRecord holds the data of one finished game.
type GameRecord struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
}

// Session collects the games played since the program started and dumps them
// as JSON under its own uuid. An empty directory disables persistence.
type Session struct {
	UUID      string       `json:"uuid"`
	StartTime time.Time    `json:"startTime"`
	Games     []GameRecord `json:"games"`

	dir     string
	started time.Time
}

func NewSession(dir string) *Session {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not create session directory:", err)
			dir = ""
		}
	}
	return &Session{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
		Games:     make([]GameRecord, 0),
		dir:       dir,
	}
}

// BeginGame marks the start of a new game.
func (s *Session) BeginGame() {
	s.started = time.Now()
}

// EndGame records the finished game and saves the session.
func (s *Session) EndGame(score int) {
	s.Games = append(s.Games, GameRecord{
		StartTime: s.started,
		EndTime:   time.Now(),
		Score:     score,
	})
	s.save()
}

func (s *Session) save() {
	if s.dir == "" {
		return
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not encode session:", err)
		return
	}
	filename := filepath.Join(s.dir, s.UUID+".json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save session:", err)
	}
}
