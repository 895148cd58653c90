package gormrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artifactsbot/internal/adapter/repo/gorm/model"
	"artifactsbot/internal/app/ports"
)

type ActionEventRepo struct {
	db *gorm.DB
}

func NewActionEventRepo(db *gorm.DB) ActionEventRepo {
	return ActionEventRepo{db: db}
}

func (r ActionEventRepo) Append(ctx context.Context, record ports.ActionEventRecord) error {
	row := model.ActionEvent{
		EventID:         record.EventID,
		Character:       record.Character,
		Task:            record.Task,
		ActionID:        record.ActionID,
		Description:     record.Description,
		Outcome:         record.Outcome,
		CooldownSeconds: int32(record.CooldownSeconds),
		ErrorCode:       int32(record.ErrorCode),
		Message:         record.Message,
		OccurredAt:      record.OccurredAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(&row).Error
}

func (r ActionEventRepo) ListByCharacter(ctx context.Context, character string, limit int) ([]ports.ActionEventRecord, error) {
	rows := []model.ActionEvent{}
	query := r.db.WithContext(ctx).
		Where(&model.ActionEvent{Character: character}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.ActionEventRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.ActionEventRecord{
			EventID:         row.EventID,
			Character:       row.Character,
			Task:            row.Task,
			ActionID:        row.ActionID,
			Description:     row.Description,
			Outcome:         row.Outcome,
			CooldownSeconds: int(row.CooldownSeconds),
			ErrorCode:       int(row.ErrorCode),
			Message:         row.Message,
			OccurredAt:      row.OccurredAt,
		})
	}
	return out, nil
}
