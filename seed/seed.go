// Package seed loads the starter catalog for a fresh deployment.
package seed

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/models"
)

type Seeder struct {
	products *mongo.Collection
}

func NewSeeder(products *mongo.Collection) *Seeder {
	return &Seeder{products: products}
}

// Load inserts the fixtures only when the catalog is empty, so re-running it
// never duplicates products. Returns how many were inserted.
func (s *Seeder) Load(ctx context.Context) (int, error) {
	count, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	fixtures := Fixtures()
	docs := make([]interface{}, 0, len(fixtures))
	for i := range fixtures {
		fixtures[i].ApplyDefaults()
		docs = append(docs, fixtures[i])
	}

	result, err := s.products.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

func boolPtr(v bool) *bool { return &v }

// Fixtures returns the starter perfumes. Ids are store-assigned on insert;
// unset fields pick up the catalog defaults at load time.
func Fixtures() []models.Product {
	return []models.Product{
		{
			Name:          "Midnight Oud",
			Brand:         "Tihamis",
			Price:         119.99,
			OriginalPrice: 149.99,
			Description:   "Smoky agarwood wrapped in warm amber and a whisper of saffron.",
			Category:      "oriental",
			Image:         "midnight-oud.jpg",
			Rating:        4.8,
			Reviews:       212,
			Notes: models.Notes{
				Top:   []string{"saffron", "pink pepper"},
				Heart: []string{"oud", "rose"},
				Base:  []string{"amber", "musk"},
			},
			Featured: true,
		},
		{
			Name:        "Rose Accord",
			Brand:       "Tihamis",
			Price:       84.5,
			Description: "A dewy Damascus rose over soft white musk.",
			Category:    "floral",
			Image:       "rose-accord.jpg",
			Rating:      4.6,
			Reviews:     98,
			Notes: models.Notes{
				Top:   []string{"bergamot"},
				Heart: []string{"damascus rose", "peony"},
				Base:  []string{"white musk"},
			},
			Featured: true,
		},
		{
			Name:        "Cedar Line",
			Brand:       "Atlas & Pine",
			Price:       64.99,
			Description: "Dry cedarwood sharpened with vetiver and a salt-air finish.",
			Category:    "woody",
			Image:       "cedar-line.jpg",
			Rating:      4.4,
			Reviews:     57,
			Notes: models.Notes{
				Top:   []string{"sea salt", "grapefruit"},
				Heart: []string{"cedarwood"},
				Base:  []string{"vetiver", "ambergris"},
			},
		},
		{
			Name:          "Jasmine Veil",
			Brand:         "Maison Lune",
			Price:         96,
			OriginalPrice: 110,
			Description:   "Night-blooming jasmine lifted by neroli and green fig.",
			Category:      "floral",
			Image:         "jasmine-veil.jpg",
			Rating:        4.7,
			Reviews:       143,
			Size:          "50ml",
			Notes: models.Notes{
				Top:   []string{"neroli", "green fig"},
				Heart: []string{"jasmine sambac"},
				Base:  []string{"sandalwood"},
			},
			Featured: true,
		},
		{
			Name:        "Citrus Verse",
			Brand:       "Atlas & Pine",
			Price:       48,
			Description: "Bitter orange and basil for bright mornings.",
			Category:    "fresh",
			Image:       "citrus-verse.jpg",
			Rating:      4.2,
			Reviews:     31,
			Notes: models.Notes{
				Top:   []string{"bitter orange", "lemon"},
				Heart: []string{"basil", "petitgrain"},
				Base:  []string{"light musk"},
			},
		},
		{
			Name:        "Velvet Santal",
			Brand:       "Maison Lune",
			Price:       132,
			Description: "Creamy sandalwood folded into tonka and iris.",
			Category:    "woody",
			Image:       "velvet-santal.jpg",
			Rating:      4.9,
			Reviews:     187,
			InStock:     boolPtr(false),
			Notes: models.Notes{
				Top:   []string{"iris"},
				Heart: []string{"sandalwood"},
				Base:  []string{"tonka bean", "vanilla"},
			},
			Featured: true,
		},
		{
			Name:        "Amber Souk",
			Brand:       "Tihamis",
			Price:       74.25,
			Description: "Resinous amber with cinnamon and dried dates.",
			Category:    "oriental",
			Image:       "amber-souk.jpg",
			Rating:      4.3,
			Reviews:     64,
			Notes: models.Notes{
				Top:   []string{"cinnamon"},
				Heart: []string{"labdanum", "date"},
				Base:  []string{"benzoin", "amber"},
			},
		},
		{
			Name:        "Rain Letter",
			Brand:       "Maison Lune",
			Price:       58.5,
			Description: "Petrichor and cut grass under a thin veil of violet.",
			Category:    "fresh",
			Image:       "rain-letter.jpg",
			Rating:      4.1,
			Reviews:     22,
			Size:        "75ml",
			Notes: models.Notes{
				Top:   []string{"cut grass", "ozone"},
				Heart: []string{"violet leaf"},
				Base:  []string{"mineral musk"},
			},
		},
	}
}
