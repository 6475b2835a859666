package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type Dao struct {
	db *gorm.DB
}

func NewDao(url, scheme, user, passwd string) (*Dao, error) {
	db, err := gorm.Open(mysql.Open(user+":"+passwd+"@tcp("+url+")/"+
		scheme+"?charset=utf8mb4"), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	if err := db.AutoMigrate(&Workspace{}); err != nil {
		return nil, errors.Wrap(err, "migrate workspace")
	}
	return &Dao{db: db}, nil
}

func (dao *Dao) SelectWorkspace(ctx context.Context, id uint64) (*Workspace, error) {
	row := new(Workspace)
	res := dao.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrWorkspaceNotFound
	}
	return row, nil
}

func (dao *Dao) SaveWorkspace(ctx context.Context, row *Workspace) error {
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
}

func (dao *Dao) DeleteWorkspace(ctx context.Context, id uint64) error {
	return dao.db.WithContext(ctx).Delete(&Workspace{}, id).Error
}
