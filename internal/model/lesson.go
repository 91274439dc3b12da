package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	Order       int    `gorm:"column:display_order;uniqueIndex;not null" json:"order"`

	Problems []Problem `gorm:"foreignKey:LessonID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}
