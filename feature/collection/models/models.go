package models

import (
	"time"

	"figurine-manager/core/reconcile"
	"figurine-manager/core/utils"
)

// Item represents the 'collection_items' table: one stack of identical owned miniatures.
type Item struct {
	ID          uint        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Position    int         `gorm:"column:position;type:int;not null;index" json:"position"`
	Name        string      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description *string     `gorm:"column:description;type:text" json:"description,omitempty"`
	Amount      int         `gorm:"column:amount;type:int;not null" json:"amount"`
	Painted     *bool       `gorm:"column:painted" json:"painted,omitempty"`
	Criteria    []Criterion `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"criteria"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (Item) TableName() string {
	return "collection_items"
}

// Criterion represents the 'collection_criteria' table: one alternative match rule of an item.
// NULL columns are wildcards.
type Criterion struct {
	ID        uint    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ItemID    uint    `gorm:"column:item_id;not null;index" json:"-"`
	Position  int     `gorm:"column:position;type:int;not null" json:"-"`
	Name      *string `gorm:"column:name;type:varchar(255)" json:"name,omitempty"`
	Unit      *string `gorm:"column:unit;type:varchar(255)" json:"unit,omitempty"`
	Catalogue *string `gorm:"column:catalogue;type:varchar(255)" json:"catalogue,omitempty"`
}

func (Criterion) TableName() string {
	return "collection_criteria"
}

// All lists every collection model, in migration order.
func All() []any {
	return []any{&Item{}, &Criterion{}}
}

// FromOwned converts an owned item into a row at the given position.
func FromOwned(o reconcile.OwnedItem, position int) Item {
	item := Item{
		Position:    position,
		Name:        o.Name,
		Description: o.Description,
		Amount:      o.Amount,
		Painted:     o.Painted,
		Criteria:    make([]Criterion, len(o.Criteria)),
	}
	for i, c := range o.Criteria {
		item.Criteria[i] = Criterion{
			Position:  i,
			Name:      utils.OptString(c.Name),
			Unit:      c.Unit,
			Catalogue: c.Catalogue,
		}
	}
	return item
}

// ToOwned converts a row (with criteria loaded in position order) into an owned item.
func (i Item) ToOwned() reconcile.OwnedItem {
	owned := reconcile.OwnedItem{
		Name:        i.Name,
		Description: i.Description,
		Amount:      i.Amount,
		Painted:     i.Painted,
	}
	if len(i.Criteria) > 0 {
		owned.Criteria = make([]reconcile.MatchCriterion, len(i.Criteria))
		for j, c := range i.Criteria {
			owned.Criteria[j] = reconcile.MatchCriterion{
				Name:      utils.Deref(c.Name),
				Unit:      c.Unit,
				Catalogue: c.Catalogue,
			}
		}
	}
	return owned
}
