package repository

import (
	"context"
	"eventlist-backend/cmd/eventlist/model"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) *PlayerRepo {
	return &PlayerRepo{
		db: db,
	}
}

// ListPlayers returns all players in id order. The slice is never nil
// so an empty table still renders as a JSON array.
func (r *PlayerRepo) ListPlayers(ctx context.Context) ([]model.Player, error) {

	players := []model.Player{}

	result := r.db.
		WithContext(ctx).
		Model(&model.Player{}).
		Order("id").
		Find(&players)

	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (r *PlayerRepo) GetPlayer(ctx context.Context, id int) (*model.Player, error) {

	var player model.Player

	result := r.db.
		WithContext(ctx).
		First(&player, id)

	if result.Error != nil {
		return nil, result.Error
	}

	return &player, nil
}

// CreatePlayer inserts the player and backfills the database-assigned
// id. The referenced event is not checked for existence.
func (r *PlayerRepo) CreatePlayer(ctx context.Context, player *model.Player) error {

	result := r.db.
		WithContext(ctx).
		Create(player)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// UpdatePlayer overwrites every mutable column of the stored row,
// zero values included.
func (r *PlayerRepo) UpdatePlayer(ctx context.Context, player *model.Player) error {

	result := r.db.
		WithContext(ctx).
		Save(player)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *PlayerRepo) DeletePlayer(ctx context.Context, id int) error {

	result := r.db.
		WithContext(ctx).
		Delete(&model.Player{}, id)

	if result.Error != nil {
		return result.Error
	}

	return nil
}
