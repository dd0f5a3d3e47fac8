package sqlstore

import "github.com/rothkoai/annotation-service/internal/core/domain"

// userRecord is the persistence mapping of domain.User.
type userRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
}

func (userRecord) TableName() string { return "user" }

// annotationRecord is the persistence mapping of domain.Annotation. UserID
// references user.id; rows are never cascaded.
type annotationRecord struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	Name      *string     `gorm:"size:64"`
	PositionX float64     `gorm:"not null"`
	PositionY float64     `gorm:"not null"`
	PositionZ float64     `gorm:"not null"`
	UserID    *int64      `gorm:"index"`
	User      *userRecord `gorm:"foreignKey:UserID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
}

func (annotationRecord) TableName() string { return "annotation" }

func toUserRecord(u *domain.User) *userRecord {
	return &userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
}

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
	}
}

func toAnnotationRecord(a *domain.Annotation) *annotationRecord {
	return &annotationRecord{
		ID:        a.ID,
		Name:      a.Name,
		PositionX: a.PositionX,
		PositionY: a.PositionY,
		PositionZ: a.PositionZ,
		UserID:    a.UserID,
	}
}

func (r *annotationRecord) toDomain() domain.Annotation {
	return domain.Annotation{
		ID:        r.ID,
		Name:      r.Name,
		PositionX: r.PositionX,
		PositionY: r.PositionY,
		PositionZ: r.PositionZ,
		UserID:    r.UserID,
	}
}
