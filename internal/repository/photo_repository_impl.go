package repository

import (
	"errors"

	"forever-captured-server/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func (r *PhotoRepository) Create(photo *model.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) FindByID(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) FindByIDFull(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.Preload("Guest").Preload("LikedBy.Guest").First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) ListAll() ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.Preload("Guest").Preload("LikedBy.Guest").
		Order("uploaded_at desc, id desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// ToggleLike 在单事务内完成 add-if-absent / remove-if-present 及计数器联动
// (photo_id, guest_id) 唯一索引兜底并发重复插入，冲突以 ErrLikeRaced 上抛
func (r *PhotoRepository) ToggleLike(photoID uint, guestID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 行存在性在事务内确认，避免外部检查与删除之间的竞争
		var photo model.Photo
		if err := tx.First(&photo, photoID).Error; err != nil {
			return err
		}

		var like model.PhotoLike
		err := tx.Where("photo_id = ? AND guest_id = ?", photoID, guestID).First(&like).Error
		switch {
		case err == nil:
			return removeLikeAndDecrement(tx, photoID, &like)
		case errors.Is(err, gorm.ErrRecordNotFound):
			newLike := model.PhotoLike{PhotoID: photoID, GuestID: guestID}
			if err := tx.Create(&newLike).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrLikeRaced
				}
				return err
			}
			return tx.Model(&model.Photo{}).Where("id = ?", photoID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
		default:
			return err
		}
	})
}

// removeLikeAndDecrement 删除点赞行并回退计数。
// 删除必须命中行才允许回退计数：并发撤销时输家的删除命中 0 行，
// 若仍回退会把 like_count 减成负数，这里以 ErrLikeRaced 上抛交给调用方重试。
func removeLikeAndDecrement(tx *gorm.DB, photoID uint, like *model.PhotoLike) error {
	res := tx.Delete(like)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeRaced
	}
	return tx.Model(&model.Photo{}).Where("id = ?", photoID).
		UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
}

func (r *PhotoRepository) DeleteWithLikes(photoID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photoID).Delete(&model.PhotoLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Photo{}, photoID).Error
	})
}

func (r *PhotoRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Photo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PhotoRepository) CountLikes() (int64, error) {
	var count int64
	if err := r.db.Model(&model.PhotoLike{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PhotoRepository) SumAllSize() (int64, error) {
	var total int64
	if err := r.db.Model(&model.Photo{}).Select("COALESCE(SUM(size), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
