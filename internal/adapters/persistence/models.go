package persistence

import (
	"time"
)

// GameModel represents the games table
type GameModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	CurrentTurn int       `gorm:"column:current_turn;not null"`
	HumanPlayer string    `gorm:"column:human_player;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (GameModel) TableName() string {
	return "games"
}

// GameSnapshotModel represents the game_snapshots table: one compressed state per game turn
type GameSnapshotModel struct {
	ID         string     `gorm:"column:id;primaryKey"`
	GameID     string     `gorm:"column:game_id;not null;uniqueIndex:idx_snapshot_game_turn"`
	Game       *GameModel `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Turn       int        `gorm:"column:turn;not null;uniqueIndex:idx_snapshot_game_turn"`
	Payload    []byte     `gorm:"column:payload;not null"`
	RawSize    int        `gorm:"column:raw_size;not null"`
	Checksum   string     `gorm:"column:checksum;not null"` // blake3 of the uncompressed JSON
	FleetCount int        `gorm:"column:fleet_count;not null;default:0"`
	OwnedStars int        `gorm:"column:owned_stars;not null;default:0"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null"`
}

func (GameSnapshotModel) TableName() string {
	return "game_snapshots"
}
