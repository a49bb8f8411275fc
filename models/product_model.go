package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Notes describes a fragrance pyramid. The slices are ordered: top notes
// open the scent, heart notes follow, base notes linger.
type Notes struct {
	Top   []string `bson:"top" json:"top"`
	Heart []string `bson:"heart" json:"heart"`
	Base  []string `bson:"base" json:"base"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Brand         string             `bson:"brand" json:"brand"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Description   string             `bson:"description" json:"description"`
	Category      string             `bson:"category" json:"category"`
	Image         string             `bson:"image" json:"image"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	InStock       *bool              `bson:"inStock" json:"inStock"`
	Size          string             `bson:"size" json:"size"`
	Notes         Notes              `bson:"notes" json:"notes"`
	Featured      bool               `bson:"featured" json:"featured"`
}

// ApplyDefaults fills the catalog defaults for fields left unset. Called
// once before a product is first inserted. InStock is a pointer so an
// explicit false survives the defaults step.
func (p *Product) ApplyDefaults() {
	if p.Rating == 0 {
		p.Rating = 4.5
	}
	if p.Size == "" {
		p.Size = "100ml"
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
}
