package catalog

import (
	"fmt"

	"go.uber.org/multierr"
)

// Fixture dataset the storefront runs on until the real CMS is wired in.
// Text stays in the shop's display language.

func stockOf(n int) *int {
	return &n
}

func FixtureProducts() []Product {
	return []Product{
		{
			ID:            1,
			Title:         "Шпон ясеня натуральный",
			Description:   "Натуральный шпон ясеня для отделки мебели и интерьера",
			Price:         850,
			Discount:      15,
			DiscountPrice: 722,
			Article:       "SHVON-ASH-001",
			Composition:   "Натуральный шпон ясеня",
			Width:         "630 мм",
			Density:       "0.65 г/см³",
			Country:       "Россия",
			Category:      "Шпон",
			Brand:         "WoodMaster",
			IsNew:         true,
			Images: []Image{
				{URL: "/materials/wood/1/1.jpg", Alt: "Шпон ясеня"},
				{URL: "/materials/wood/1/2.jpg", Alt: "Шпон ясеня - текстура"},
			},
			Stock: stockOf(45),
			Characteristics: map[string]string{
				"thickness":       "0.6 мм",
				"length":          "2500 мм",
				"moisture":        "8%",
				"fire_resistance": "B2",
			},
		},
		{
			ID:            2,
			Title:         "Пленка ПВХ под дуб",
			Description:   "ПВХ пленка с текстурой дуба для оклейки МДФ и ДСП",
			Price:         320,
			Discount:      0,
			DiscountPrice: 320,
			Article:       "PVK-DUB-002",
			Composition:   "Поливинилхлорид",
			Width:         "1370 мм",
			Density:       "1.4 г/см³",
			Country:       "Германия",
			Category:      "Пленки",
			Brand:         "Renolit",
			IsNew:         false,
			Images: []Image{
				{URL: "/materials/wood/2/1.jpg", Alt: "Пленка ПВХ дуб"},
			},
			Stock: stockOf(120),
			Characteristics: map[string]string{
				"thickness":         "0.4 мм",
				"roll_length":       "50 м",
				"adhesive":          "Клейкая основа",
				"temperature_range": "-20°C до +80°C",
			},
		},
		{
			ID:            3,
			Title:         "Ламинированное ДСП Эггер",
			Description:   "Ламинированная древесно-стружечная плита премиум класса",
			Price:         1850,
			Discount:      10,
			DiscountPrice: 1665,
			Article:       "LDS-EGG-003",
			Composition:   "ДСП, меламиновая пленка",
			Width:         "2070 мм",
			Density:       "650 кг/м³",
			Country:       "Австрия",
			Category:      "ЛДСП",
			Brand:         "Egger",
			IsNew:         true,
			Images: []Image{
				{URL: "/materials/wood/3/1.jpg", Alt: "ЛДСП Эггер"},
				{URL: "/materials/wood/3/2.jpg", Alt: "ЛДСП структура"},
			},
			Stock: stockOf(28),
			Characteristics: map[string]string{
				"thickness":    "16 мм",
				"size":         "2800x2070 мм",
				"formaldehyde": "E0.5",
				"weight":       "70 кг",
			},
		},
		{
			ID:            4,
			Title:         "МДФ крашеный матовый",
			Description:   "Окрашенная МДФ плита матового покрытия",
			Price:         2150,
			Discount:      5,
			DiscountPrice: 2042,
			Article:       "MDF-PNT-004",
			Composition:   "МДФ, полиуретановая краска",
			Width:         "1220 мм",
			Density:       "850 кг/м³",
			Country:       "Россия",
			Category:      "МДФ",
			Brand:         "Kronospan",
			IsNew:         false,
			Images: []Image{
				{URL: "/materials/wood/4/1.jpg", Alt: "МДФ крашеный"},
			},
			Stock: stockOf(35),
			Characteristics: map[string]string{
				"thickness": "18 мм",
				"size":      "2440x1220 мм",
				"color":     "Белый матовый",
				"surface":   "Гладкая",
			},
		},
		{
			ID:            5,
			Title:         "Шпон ореха радиальный срез",
			Description:   "Элитный шпон ореха радиального среза",
			Price:         1250,
			Discount:      20,
			DiscountPrice: 1000,
			Article:       "SHVON-WAL-005",
			Composition:   "Натуральный шпон ореха",
			Width:         "600 мм",
			Density:       "0.68 г/см³",
			Country:       "Италия",
			Category:      "Шпон",
			Brand:         "Alpi",
			IsNew:         true,
			Images: []Image{
				{URL: "/materials/wood/5/1.jpg", Alt: "Шпон ореха"},
				{URL: "/materials/wood/5/2.jpg", Alt: "Текстура ореха"},
			},
			Stock: stockOf(18),
			Characteristics: map[string]string{
				"thickness": "0.7 мм",
				"length":    "2400 мм",
				"cut_type":  "Радиальный",
				"grade":     "A",
			},
		},
		{
			ID:            6,
			Title:         "Пленка акриловая под ясень",
			Description:   "Акриловая пленка 3D эффект под ясень",
			Price:         450,
			Discount:      0,
			DiscountPrice: 450,
			Article:       "ACR-ASH-006",
			Composition:   "Акрил, ПВХ",
			Width:         "1250 мм",
			Density:       "1.2 г/см³",
			Country:       "Корея",
			Category:      "Пленки",
			Brand:         "LG Hausys",
			IsNew:         true,
			Images: []Image{
				{URL: "/materials/wood/6/1.jpg", Alt: "Акриловая пленка"},
			},
			Stock: stockOf(75),
			Characteristics: map[string]string{
				"thickness":          "0.5 мм",
				"roll_length":        "30 м",
				"effect":             "3D текстура",
				"scratch_resistance": "Высокая",
			},
		},
		{
			ID:            7,
			Title:         "ЛДСП Kronospan глянец",
			Description:   "Ламинированное ДСП с глянцевой поверхностью",
			Price:         1950,
			Discount:      12,
			DiscountPrice: 1716,
			Article:       "LDS-KRN-007",
			Composition:   "ДСП, глянцевая пленка",
			Width:         "1830 мм",
			Density:       "680 кг/м³",
			Country:       "Польша",
			Category:      "ЛДСП",
			Brand:         "Kronospan",
			IsNew:         false,
			Images: []Image{
				{URL: "/materials/wood/7/1.jpg", Alt: "ЛДСП глянец"},
			},
			Stock: stockOf(42),
			Characteristics: map[string]string{
				"thickness": "25 мм",
				"size":      "2620x1830 мм",
				"surface":   "Глянцевая",
				"color":     "Черный",
			},
		},
		{
			ID:            8,
			Title:         "МДФ фрезерованный",
			Description:   "Фрезерованная МДФ плита для декоративных элементов",
			Price:         2750,
			Discount:      8,
			DiscountPrice: 2530,
			Article:       "MDF-FRE-008",
			Composition:   "МДФ высокой плотности",
			Width:         "1220 мм",
			Density:       "900 кг/м³",
			Country:       "Германия",
			Category:      "МДФ",
			Brand:         "Egger",
			IsNew:         true,
			Images: []Image{
				{URL: "/materials/wood/8/1.jpg", Alt: "Фрезерованный МДФ"},
				{URL: "/materials/wood/8/2.jpg", Alt: "Узор МДФ"},
			},
			Stock: stockOf(22),
			Characteristics: map[string]string{
				"thickness":    "22 мм",
				"size":         "2440x1220 мм",
				"pattern":      "Рельефный",
				"paintability": "Отличная",
			},
		},
	}
}

func FixtureCategories() []Category {
	return []Category{
		{ID: 1, Name: "Шпон", Slug: "shpon", Description: "Натуральный шпон для отделки мебели", Image: "/categories/shon.jpg", ProductCount: 12},
		{ID: 2, Name: "Пленки", Slug: "plenki", Description: "ПВХ и акриловые пленки для оклейки", Image: "/categories/plenki.jpg", ProductCount: 25},
		{ID: 3, Name: "ЛДСП", Slug: "ldsp", Description: "Ламинированное ДСП различных марок", Image: "/categories/ldsp.jpg", ProductCount: 18},
		{ID: 4, Name: "МДФ", Slug: "mdf", Description: "МДФ плиты различных плотностей", Image: "/categories/mdf.jpg", ProductCount: 15},
	}
}

func FixtureBrands() []Brand {
	return []Brand{
		{ID: 1, Name: "Egger", Slug: "egger", Description: "Австрийский производитель древесных плит", Logo: "/brands/egger.png", Country: "Австрия"},
		{ID: 2, Name: "Kronospan", Slug: "kronospan", Description: "Мировой лидер в производстве древесных плит", Logo: "/brands/kronospan.png", Country: "Польша"},
		{ID: 3, Name: "Alpi", Slug: "alpi", Description: "Итальянский производитель элитного шпона", Logo: "/brands/alpi.png", Country: "Италия"},
		{ID: 4, Name: "Renolit", Slug: "renolit", Description: "Немецкий производитель ПВХ пленок", Logo: "/brands/renolit.png", Country: "Германия"},
		{ID: 5, Name: "LG Hausys", Slug: "lg-hausys", Description: "Корейский производитель акриловых пленок", Logo: "/brands/lg-hausys.png", Country: "Корея"},
		{ID: 6, Name: "WoodMaster", Slug: "woodmaster", Description: "Российский производитель шпона", Logo: "/brands/woodmaster.png", Country: "Россия"},
	}
}

// ValidateFixtures sanity-checks the dataset on startup. All violations are
// reported at once.
func ValidateFixtures(products []Product, categories []Category, brands []Brand) error {
	var err error

	seen := make(map[int]bool, len(products))
	knownCategories := make(map[string]bool, len(categories))
	for _, category := range categories {
		knownCategories[category.Name] = true
	}
	knownBrands := make(map[string]bool, len(brands))
	for _, brand := range brands {
		knownBrands[brand.Name] = true
	}

	for _, product := range products {
		if product.ID <= 0 {
			err = multierr.Append(err, fmt.Errorf("product %q: non-positive id %d", product.Title, product.ID))
		}
		if seen[product.ID] {
			err = multierr.Append(err, fmt.Errorf("product id %d: duplicate", product.ID))
		}
		seen[product.ID] = true
		if product.Title == "" || product.Article == "" {
			err = multierr.Append(err, fmt.Errorf("product id %d: title and article are required", product.ID))
		}
		if product.Price <= 0 {
			err = multierr.Append(err, fmt.Errorf("product id %d: non-positive price", product.ID))
		}
		if product.Discount < 0 || product.Discount > 100 {
			err = multierr.Append(err, fmt.Errorf("product id %d: discount %d out of range", product.ID, product.Discount))
		}
		if product.Discount > 0 && product.DiscountPrice > product.Price {
			err = multierr.Append(err, fmt.Errorf("product id %d: discount price %.2f above price %.2f", product.ID, product.DiscountPrice, product.Price))
		}
		if !knownCategories[product.Category] {
			err = multierr.Append(err, fmt.Errorf("product id %d: unknown category %q", product.ID, product.Category))
		}
		if !knownBrands[product.Brand] {
			err = multierr.Append(err, fmt.Errorf("product id %d: unknown brand %q", product.ID, product.Brand))
		}
	}

	return err
}
