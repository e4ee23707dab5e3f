// Package catalog ships the static demo product dataset. The catalog is a
// provided read-only collaborator; nothing in the system mutates it.
package catalog

import "github.com/Brixomart/Brixo-mart/pkg/store/domain/model"

// Default builds the stock Brixo Mart catalog.
func Default() *model.Catalog {
	return model.NewCatalog([]model.CatalogCategory{
		{
			Name: "Fresh Fruits",
			Products: []model.Product{
				{
					Name:          "Shimla Apple",
					Price:         "₹120/kg",
					OriginalPrice: "₹133/kg",
					Discount:      "10% OFF",
					Description:   "Fresh and juicy Shimla apples with crisp texture and sweet-tart flavor. Rich in fiber and antioxidants.",
					Image:         "images/shimla-apple.jpg",
				},
				{
					Name:          "Robusta Banana",
					Price:         "₹60/dozen",
					OriginalPrice: "₹70/dozen",
					Discount:      "14% OFF",
					Description:   "Naturally ripened bananas, a quick source of energy.",
					Image:         "images/robusta-banana.jpg",
				},
			},
		},
		{
			Name: "Fresh Vegetables",
			Products: []model.Product{
				{
					Name:          "Fresh Tomato",
					Price:         "₹40/kg",
					OriginalPrice: "₹45/kg",
					Discount:      "11% OFF",
					Description:   "Fresh red tomatoes, perfect for salads and cooking.",
					Image:         "images/fresh-tomato.jpg",
				},
				{
					Name:        "Green Capsicum",
					Price:       "₹80/kg",
					Description: "Crunchy capsicum for stir fries and salads.",
					Image:       "images/green-capsicum.jpg",
				},
			},
		},
		{
			Name: "Organic Produce",
			Products: []model.Product{
				{
					Name:          "Organic Spinach",
					Price:         "₹50/kg",
					OriginalPrice: "₹55/kg",
					Discount:      "9% OFF",
					Description:   "Fresh organic spinach leaves, rich in vitamins.",
					Image:         "images/organic-spinach.jpg",
				},
			},
		},
		{
			Name: "Exotic Fruits",
			Products: []model.Product{
				{
					Name:          "Dragon Fruit",
					Price:         "₹200/kg",
					OriginalPrice: "₹220/kg",
					Discount:      "9% OFF",
					Description:   "Vibrant dragon fruit with mildly sweet flesh.",
					Image:         "images/dragon-fruit.jpg",
				},
				{
					Name:          "Kiwi",
					Price:         "₹150/500g",
					OriginalPrice: "₹170/500g",
					Discount:      "12% OFF",
					Description:   "Tangy kiwis packed with vitamin C.",
					Image:         "images/kiwi.jpg",
				},
			},
		},
		{
			Name: "Dairy & Breads",
			Products: []model.Product{
				{
					Name:        "Toned Milk",
					Price:       "₹28/500ml",
					Description: "Pasteurized toned milk, farm fresh every morning.",
					Image:       "images/toned-milk.jpg",
				},
				{
					Name:          "Whole Wheat Bread",
					Price:         "₹45/loaf",
					OriginalPrice: "₹50/loaf",
					Discount:      "10% OFF",
					Description:   "Soft whole wheat bread baked daily.",
					Image:         "images/wheat-bread.jpg",
				},
			},
		},
		{
			Name: "Staples",
			Products: []model.Product{
				{
					Name:        "Iodized Salt",
					Price:       "₹25/kg",
					Description: "Pure and vacuum evaporated iodized salt. Essential for thyroid function and overall health.",
					Image:       "images/iodized-salt.jpg",
				},
				{
					Name:          "Basmati Rice",
					Price:         "₹180/kg",
					OriginalPrice: "₹200/kg",
					Discount:      "10% OFF",
					Description:   "Long-grain aromatic basmati rice.",
					Image:         "images/basmati-rice.jpg",
				},
			},
		},
	})
}
