package entity

import "github.com/rocketscienceinc/alignment-games/internal/game"

type Player struct {
	ID   string    `json:"id"`
	Mark game.Mark `json:"mark,omitempty"`
	Bot  bool      `json:"bot,omitempty"`
}

func NewBotPlayer(id string, mark game.Mark) *Player {
	return &Player{
		ID:   id,
		Mark: mark,
		Bot:  true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
