package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type;size:255;not null" json:"type"`
}

// CategoryMap projects categories into the id -> label mapping returned by the API.
func CategoryMap(categories []Category) map[uint]string {
	out := make(map[uint]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
